package addbookcopy

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

const commandType = "AddBookCopy"

// Command represents the intent to add a book copy to circulation.
type Command struct {
	BookID     uuid.UUID
	ISBN       string
	Title      string
	Authors    string
	Category   string
	OccurredAt core.OccurredAtTS
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	bookID uuid.UUID,
	isbn string,
	title string,
	authors string,
	category string,
	occurredAt time.Time,
) Command {

	return Command{
		BookID:     bookID,
		ISBN:       isbn,
		Title:      title,
		Authors:    authors,
		Category:   category,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

// CommandType returns the command type for logging.
func (c Command) CommandType() string {
	return commandType
}
