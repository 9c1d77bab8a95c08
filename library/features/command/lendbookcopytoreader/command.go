package lendbookcopytoreader

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

const commandType = "LendBookCopyToReader"

// Command represents the intent to lend a book copy to a reader.
type Command struct {
	BookID     uuid.UUID
	ReaderID   uuid.UUID
	OccurredAt core.OccurredAtTS
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, readerID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		ReaderID:   readerID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

// CommandType returns the command type for logging.
func (c Command) CommandType() string {
	return commandType
}
