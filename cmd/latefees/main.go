// Command latefees runs the library's late fee commands and queries against the event store.
//
// Usage:
//
//	latefees [global flags] <command> [flags]
//
// Commands: init-schema, add-book, remove-book, register, request, cancel-request, approve-request,
// lend, return, configure, schedule, borrowed, requested, catalog, demo.
// The database and the OTLP export of metrics and traces are configured through the environment,
// see package config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-latefees-go/library/shell"
	"github.com/AntonStoeckl/library-latefees-go/library/shell/config"
)

const (
	serviceVersion          = "0.3.0"
	observabilityFlushLimit = 5 * time.Second
)

var errUsage = errors.New(
	"usage: latefees [-log-level level] <init-schema|add-book|remove-book|register|request|cancel-request|" +
		"approve-request|lend|return|configure|schedule|borrowed|requested|catalog|demo> [flags]",
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// app carries what every command and query needs. Metrics and tracing are nil while switched off.
type app struct {
	es      shell.EventStore
	stdout  io.Writer
	logger  *slog.Logger
	metrics shell.MetricsCollector
	tracing shell.TracingCollector
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) (err error) {
	global := flag.NewFlagSet("latefees", flag.ContinueOnError)
	global.SetOutput(stderr)
	logLevel := global.String("log-level", "", "debug, info, warn or error (default from LOG_LEVEL, else info)")

	if err = global.Parse(args); err != nil {
		return err
	}

	if global.NArg() == 0 {
		return errUsage
	}

	level, err := levelFrom(*logLevel)
	if err != nil {
		return err
	}

	a := app{stdout: stdout, logger: config.NewLogger(stderr, level)}
	command, commandArgs := global.Arg(0), global.Args()[1:]

	if endpoint, enabled := config.ObservabilityEndpoint(); enabled {
		providers, providersErr := config.NewObservabilityProviders(ctx, endpoint, serviceVersion)
		if providersErr != nil {
			return providersErr
		}

		defer func() {
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), observabilityFlushLimit)
			defer cancel()

			err = errors.Join(err, providers.Shutdown(flushCtx))
		}()

		a.metrics = providers.MetricsCollector()
		a.tracing = providers.TracingCollector()
	}

	if command == "demo" {
		return runDemo(ctx, a, commandArgs)
	}

	store, err := openEventStore(ctx, a)
	if err != nil {
		return err
	}
	defer store.close()

	if command == "init-schema" {
		return store.ensureSchema(ctx)
	}

	a.es = store.eventStore

	return dispatch(ctx, a, command, commandArgs)
}

func levelFrom(flagValue string) (slog.Level, error) {
	if flagValue != "" {
		return config.ParseLogLevel(flagValue)
	}

	return config.LogLevelFromEnv()
}

func parseID(name string, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("-%s must be a UUID: %w", name, err)
	}

	return id, nil
}

func parseInstant(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}

	instant, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("-at must be an RFC 3339 timestamp: %w", err)
	}

	return instant, nil
}
