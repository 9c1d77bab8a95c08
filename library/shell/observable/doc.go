// Package observable decorates command and query handlers with structured logging, metrics and tracing.
//
// The wrappers log start, completion and failure of every handler call with its type,
// status and duration. With a MetricsCollector they also record durations, call counts,
// idempotent calls and retries, with a TracingCollector every call gets a span.
// Business logic stays in the wrapped handlers.
package observable
