// Package adapters lets the Postgres event store run on pgxpool.Pool, sql.DB or sqlx.DB
// behind the one DBAdapter interface.
package adapters
