// Package postgresengine provides the PostgreSQL implementation of the event store.
//
// Events live in one table. A "dynamic event stream" is whatever an eventstore.Filter selects,
// and Append only inserts if the highest sequence number of that stream is still the one
// seen by the preceding Query. The check and the insert are one statement.
//
// The store runs on pgxpool.Pool (optionally with a read replica), sql.DB or sqlx.DB:
//
//	db, _ := pgxpool.New(ctx, dsn)
//	store, _ := postgresengine.NewEventStoreFromPGXPool(db, postgresengine.WithLogger(slog.Default()))
//
//	events, maxSeq, _ := store.Query(ctx, filter)
//	err := store.Append(ctx, filter, maxSeq, newEvent)
package postgresengine
