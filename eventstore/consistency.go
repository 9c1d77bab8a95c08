package eventstore

import "context"

// ConsistencyLevel tells an engine whether a read may be served by a replica.
type ConsistencyLevel int

const (
	// StrongConsistency reads from the primary. Command handlers need it to see their own writes.
	StrongConsistency ConsistencyLevel = iota

	// EventualConsistency allows reads from a replica. Good enough for queries shown to a reader.
	EventualConsistency
)

type contextKey string

// ConsistencyLevelKey is the context key used to store consistency level preferences.
const ConsistencyLevelKey contextKey = "eventstore.consistency_level"

// WithStrongConsistency returns a context that routes reads to the primary database.
func WithStrongConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, StrongConsistency)
}

// WithEventualConsistency returns a context that allows reads from a replica database.
func WithEventualConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, EventualConsistency)
}

// GetConsistencyLevel defaults to StrongConsistency when the context carries no preference.
func GetConsistencyLevel(ctx context.Context) ConsistencyLevel {
	if level, ok := ctx.Value(ConsistencyLevelKey).(ConsistencyLevel); ok {
		return level
	}

	return StrongConsistency
}

func (c ConsistencyLevel) String() string {
	switch c {
	case StrongConsistency:
		return "strong"
	case EventualConsistency:
		return "eventual"
	default:
		return "unknown"
	}
}
