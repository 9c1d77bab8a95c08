// Package memengine is an in-memory event store with the same filter and optimistic concurrency
// semantics as the Postgres engine. It is meant for tests and local demos, nothing is persisted.
package memengine
