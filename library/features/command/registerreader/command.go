package registerreader

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

const commandType = "RegisterReader"

// Command represents the intent to register a reader.
type Command struct {
	ReaderID   uuid.UUID
	Name       string
	OccurredAt core.OccurredAtTS
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(readerID uuid.UUID, name string, occurredAt time.Time) Command {
	return Command{
		ReaderID:   readerID,
		Name:       name,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

// CommandType returns the command type for logging.
func (c Command) CommandType() string {
	return commandType
}
