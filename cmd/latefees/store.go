package main

import (
	"context"

	"github.com/AntonStoeckl/library-latefees-go/eventstore/postgresengine"
	"github.com/AntonStoeckl/library-latefees-go/library/shell"
	"github.com/AntonStoeckl/library-latefees-go/library/shell/config"
)

type openedStore struct {
	eventStore *postgresengine.EventStore
	closers    []func()
}

func (s openedStore) ensureSchema(ctx context.Context) error {
	return s.eventStore.EnsureSchema(ctx)
}

func (s openedStore) close() {
	for _, closeFn := range s.closers {
		closeFn()
	}
}

var _ shell.EventStore = (*postgresengine.EventStore)(nil)

// openEventStore connects with the adapter selected by DB_ADAPTER.
func openEventStore(ctx context.Context, a app) (openedStore, error) {
	adapter, err := config.SelectedDBAdapter()
	if err != nil {
		return openedStore{}, err
	}

	dsn := config.PostgresDSN()
	options := []postgresengine.Option{
		postgresengine.WithContextualLogger(a.logger),
		postgresengine.WithMetrics(a.metrics),
		postgresengine.WithTracing(a.tracing),
	}
	opened := openedStore{}

	switch adapter {
	case config.SQLAdapter:
		db, openErr := config.PostgresSQLDB(ctx, dsn)
		if openErr != nil {
			return openedStore{}, openErr
		}

		opened.closers = append(opened.closers, func() { _ = db.Close() })
		opened.eventStore, err = postgresengine.NewEventStoreFromSQLDB(db, options...)

	case config.SQLXAdapter:
		db, openErr := config.PostgresSQLX(ctx, dsn)
		if openErr != nil {
			return openedStore{}, openErr
		}

		opened.closers = append(opened.closers, func() { _ = db.Close() })
		opened.eventStore, err = postgresengine.NewEventStoreFromSQLX(db, options...)

	default:
		pool, openErr := config.PostgresPGXPool(ctx, dsn)
		if openErr != nil {
			return openedStore{}, openErr
		}

		opened.closers = append(opened.closers, pool.Close)

		replicaDSN := config.PostgresReplicaDSN()
		if replicaDSN == "" {
			opened.eventStore, err = postgresengine.NewEventStoreFromPGXPool(pool, options...)
			break
		}

		replica, replicaErr := config.PostgresPGXPool(ctx, replicaDSN)
		if replicaErr != nil {
			opened.close()
			return openedStore{}, replicaErr
		}

		opened.closers = append(opened.closers, replica.Close)
		opened.eventStore, err = postgresengine.NewEventStoreFromPGXPoolAndReplica(pool, replica, options...)
	}

	if err != nil {
		opened.close()
		return openedStore{}, err
	}

	return opened, nil
}
