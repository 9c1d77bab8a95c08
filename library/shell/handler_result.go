package shell

import "time"

// HandlerResult is the outcome of a command handler execution:
// the business outcome (idempotency) plus retry metadata.
type HandlerResult struct {
	// Idempotent is a business outcome, not an error: nothing had to change.
	Idempotent bool

	// RetryAttempts is the total number of attempts made, 1 if there was no retry.
	RetryAttempts int

	// TotalRetryDelay only counts the backoff waits.
	TotalRetryDelay time.Duration

	// LastErrorType is one of the ErrorType* constants.
	LastErrorType string

	// RetriesExhausted is true if the last attempt still failed with a retryable error.
	RetriesExhausted bool
}

func newHandlerResult(idempotent bool, retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		Idempotent:       idempotent,
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}

// NewSuccessResult creates a HandlerResult for operations that appended an event.
func NewSuccessResult(retryMetrics RetryMetrics) HandlerResult {
	return newHandlerResult(false, retryMetrics)
}

// NewIdempotentResult creates a HandlerResult for operations that did not need to change anything.
func NewIdempotentResult(retryMetrics RetryMetrics) HandlerResult {
	return newHandlerResult(true, retryMetrics)
}

// NewErrorResult creates a HandlerResult for failed operations, keeping the retry metadata.
func NewErrorResult(retryMetrics RetryMetrics) HandlerResult {
	return newHandlerResult(false, retryMetrics)
}
