// Package config builds the database connections, the logger and the OpenTelemetry providers from the environment.
//
// Environment variables:
//
//	LATEFEES_POSTGRES_DSN          primary database, defaults to a local development database
//	LATEFEES_POSTGRES_REPLICA_DSN  optional read replica, only used by the pgx adapter
//	DB_ADAPTER                     pgx (default), sql or sqlx
//	LOG_LEVEL                      debug, info (default), warn or error
//	LATEFEES_OTEL_ENDPOINT         OTLP gRPC endpoint, metrics and tracing are off when unset
package config
