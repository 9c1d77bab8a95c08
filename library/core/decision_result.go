package core

// DecisionOutcome tells the command handler what to do with a DecisionResult.
type DecisionOutcome string

const (
	IdempotentOutcome DecisionOutcome = "idempotent"
	SuccessOutcome    DecisionOutcome = "success"
	ErrorOutcome      DecisionOutcome = "error"
)

// DecisionResult is what a Decide function returns.
//
// Build it only with IdempotentDecision, SuccessDecision or ErrorDecision.
// An error decision still carries an event: rejected commands are recorded, too.
type DecisionResult struct {
	Outcome DecisionOutcome
	Event   DomainEvent // nil for idempotent decisions
	Err     error
}

// IdempotentDecision means the state already is what the command asks for.
func IdempotentDecision() DecisionResult {
	return DecisionResult{Outcome: IdempotentOutcome}
}

// SuccessDecision carries the event that records the state change.
func SuccessDecision(event DomainEvent) DecisionResult {
	return DecisionResult{Outcome: SuccessOutcome, Event: event}
}

// ErrorDecision carries the failure event and the business rule violation.
func ErrorDecision(event DomainEvent, err error) DecisionResult {
	return DecisionResult{Outcome: ErrorOutcome, Event: event, Err: err}
}

// HasEventToAppend returns true if there is an event to append to the event store.
func (r DecisionResult) HasEventToAppend() bool {
	return r.Outcome != IdempotentOutcome && r.Event != nil
}

// IsIdempotent returns true if nothing has to change.
func (r DecisionResult) IsIdempotent() bool {
	return r.Outcome == IdempotentOutcome
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == ErrorOutcome {
		return r.Err
	}

	return nil
}

// RuleViolation is the error of a rejected command. Its message starts with the failure event type.
type RuleViolation struct {
	EventType   string
	FailureInfo string
}

func (e RuleViolation) Error() string {
	return e.EventType + ": " + e.FailureInfo
}
