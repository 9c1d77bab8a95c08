package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/addbookcopy"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/approvebookrequest"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/cancelbookrequest"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/configurelatefeeschedule"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/lendbookcopytoreader"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/registerreader"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/removebookcopy"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/requestbookcopy"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/returnbookcopyfromreader"
	"github.com/AntonStoeckl/library-latefees-go/library/features/query/booksincirculation"
	"github.com/AntonStoeckl/library-latefees-go/library/features/query/borrowedbooks"
	"github.com/AntonStoeckl/library-latefees-go/library/features/query/latefeeschedule"
	"github.com/AntonStoeckl/library-latefees-go/library/features/query/requestedbooks"
	"github.com/AntonStoeckl/library-latefees-go/library/shell"
	"github.com/AntonStoeckl/library-latefees-go/library/shell/observable"
)

const defaultCatalogPageSize = 20

type commandFlags struct {
	bookID, readerID, at           *string
	isbn, title, authors, category *string
	name                           *string
	initialFee, followingDateFee   *string
	loanPeriod                     *time.Duration
	onlyUnreturned                 *bool
	filter, cursor                 *string
	limit                          *int
}

func newCommandFlags(command string) (*flag.FlagSet, commandFlags, error) {
	flags := flag.NewFlagSet(command, flag.ContinueOnError)
	f := commandFlags{
		bookID:         flags.String("book", "", "book copy ID (UUID)"),
		readerID:       flags.String("reader", "", "reader ID (UUID)"),
		at:             flags.String("at", "", "when it happens, RFC 3339 (default now)"),
		onlyUnreturned: new(bool),
	}

	switch command {
	case "add-book":
		f.isbn = flags.String("isbn", "", "ISBN")
		f.title = flags.String("title", "", "title")
		f.authors = flags.String("authors", "", "authors")
		f.category = flags.String("category", "", "category")
	case "register":
		f.name = flags.String("name", "", "reader name")
	case "lend":
		f.loanPeriod = flags.Duration("loan-period", lendbookcopytoreader.DefaultLoanPeriod, "time until the book is due")
	case "configure":
		f.initialFee = flags.String("initial-fee", "", "fee once the due date has passed")
		f.followingDateFee = flags.String("following-date-fee", "", "fee per full day late")
	case "borrowed":
		f.onlyUnreturned = flags.Bool("unreturned", false, "list open loans only")
	case "catalog":
		f.filter = flags.String("filter", "", "part of title, authors or ISBN")
		f.category = flags.String("category", "", "category")
		f.cursor = flags.String("cursor", "", "book copy ID the previous page ended with")
		f.limit = flags.Int("limit", defaultCatalogPageSize, "page size, 0 for all")
	case "remove-book", "request", "cancel-request", "approve-request", "return", "schedule", "requested":
	default:
		return nil, commandFlags{}, errUsage
	}

	return flags, f, nil
}

//nolint:funlen
func dispatch(ctx context.Context, a app, command string, args []string) error {
	flags, f, err := newCommandFlags(command)
	if err != nil {
		return err
	}

	if err = flags.Parse(args); err != nil {
		return err
	}

	instant, err := parseInstant(*f.at)
	if err != nil {
		return err
	}

	switch command {
	case "schedule":
		return querySchedule(ctx, a)

	case "catalog":
		query := booksincirculation.BuildQuery(*f.filter, *f.category, *f.cursor, *f.limit)
		return queryCatalog(ctx, a, query)

	case "configure":
		configure, buildErr := buildConfigureCommand(*f.initialFee, *f.followingDateFee, instant)
		if buildErr != nil {
			return buildErr
		}

		handler := configurelatefeeschedule.NewCommandHandler(a.es, configurelatefeeschedule.WithRetryOptions(retryLogging(a, command)...))

		return handleCommand[configurelatefeeschedule.Command](ctx, a, handler, configure)
	}

	var bookID, readerID uuid.UUID

	if needsBook(command) {
		if bookID, err = parseID("book", *f.bookID); err != nil {
			return err
		}
	}

	if needsReader(command) {
		if readerID, err = parseID("reader", *f.readerID); err != nil {
			return err
		}
	}

	switch command {
	case "add-book":
		handler := addbookcopy.NewCommandHandler(a.es, addbookcopy.WithRetryOptions(retryLogging(a, command)...))
		return handleCommand[addbookcopy.Command](ctx, a, handler,
			addbookcopy.BuildCommand(bookID, *f.isbn, *f.title, *f.authors, *f.category, instant))

	case "remove-book":
		handler := removebookcopy.NewCommandHandler(a.es, removebookcopy.WithRetryOptions(retryLogging(a, command)...))
		return handleCommand[removebookcopy.Command](ctx, a, handler, removebookcopy.BuildCommand(bookID, instant))

	case "register":
		handler := registerreader.NewCommandHandler(a.es, registerreader.WithRetryOptions(retryLogging(a, command)...))
		return handleCommand[registerreader.Command](ctx, a, handler, registerreader.BuildCommand(readerID, *f.name, instant))

	case "request":
		handler := requestbookcopy.NewCommandHandler(a.es, requestbookcopy.WithRetryOptions(retryLogging(a, command)...))
		return handleCommand[requestbookcopy.Command](ctx, a, handler, requestbookcopy.BuildCommand(bookID, readerID, instant))

	case "cancel-request":
		handler := cancelbookrequest.NewCommandHandler(a.es, cancelbookrequest.WithRetryOptions(retryLogging(a, command)...))
		return handleCommand[cancelbookrequest.Command](ctx, a, handler, cancelbookrequest.BuildCommand(bookID, readerID, instant))

	case "approve-request":
		handler := approvebookrequest.NewCommandHandler(a.es, approvebookrequest.WithRetryOptions(retryLogging(a, command)...))
		return handleCommand[approvebookrequest.Command](ctx, a, handler, approvebookrequest.BuildCommand(bookID, readerID, instant))

	case "lend":
		handler := lendbookcopytoreader.NewCommandHandler(
			a.es,
			lendbookcopytoreader.WithLoanPeriod(*f.loanPeriod),
			lendbookcopytoreader.WithRetryOptions(retryLogging(a, command)...),
		)
		return handleCommand[lendbookcopytoreader.Command](ctx, a, handler, lendbookcopytoreader.BuildCommand(bookID, readerID, instant))

	case "return":
		handler := returnbookcopyfromreader.NewCommandHandler(a.es, returnbookcopyfromreader.WithRetryOptions(retryLogging(a, command)...))
		return handleCommand[returnbookcopyfromreader.Command](ctx, a, handler, returnbookcopyfromreader.BuildCommand(bookID, readerID, instant))

	case "requested":
		return queryRequestedBooks(ctx, a, requestedbooks.BuildQuery(readerID))

	default:
		return queryBorrowedBooks(ctx, a, borrowedbooks.BuildQuery(readerID, instant), *f.onlyUnreturned)
	}
}

func needsBook(command string) bool {
	switch command {
	case "add-book", "remove-book", "request", "cancel-request", "approve-request", "lend", "return":
		return true
	default:
		return false
	}
}

func needsReader(command string) bool {
	switch command {
	case "add-book", "remove-book":
		return false
	default:
		return true
	}
}

func buildConfigureCommand(initialFee string, followingDateFee string, at time.Time) (configurelatefeeschedule.Command, error) {
	initial, err := core.ParseAmount("initialFee", initialFee)
	if err != nil {
		return configurelatefeeschedule.Command{}, err
	}

	following, err := core.ParseAmount("followingDateFee", followingDateFee)
	if err != nil {
		return configurelatefeeschedule.Command{}, err
	}

	return configurelatefeeschedule.BuildCommand(initial, following, at)
}

func retryLogging(a app, commandType string) []shell.RetryOption {
	return []shell.RetryOption{shell.WithRetryLogging(a.logger, commandType)}
}

func handleCommand[C shell.Command](ctx context.Context, a app, handler shell.CommandHandler[C], command C) error {
	wrapper, err := observable.NewCommandWrapper(
		handler,
		observable.WithCommandContextualLogging[C](a.logger),
		observable.WithCommandMetrics[C](a.metrics),
		observable.WithCommandTracing[C](a.tracing),
	)
	if err != nil {
		return err
	}

	result, err := wrapper.Handle(ctx, command)
	if err != nil {
		return err
	}

	return printHandlerResult(a.stdout, command.CommandType(), result)
}

func handleQuery[Q shell.Query, R any](ctx context.Context, a app, handler shell.QueryHandler[Q, R], query Q) (R, error) {
	wrapper, err := observable.NewQueryWrapper(
		handler,
		observable.WithQueryContextualLogging[Q, R](a.logger),
		observable.WithQueryMetrics[Q, R](a.metrics),
		observable.WithQueryTracing[Q, R](a.tracing),
	)
	if err != nil {
		var zero R
		return zero, err
	}

	return wrapper.Handle(ctx, query)
}

func querySchedule(ctx context.Context, a app) error {
	result, err := handleQuery[latefeeschedule.Query, latefeeschedule.LateFeeSchedule](
		ctx, a, latefeeschedule.NewQueryHandler(a.es), latefeeschedule.BuildQuery(),
	)
	if err != nil {
		return err
	}

	return printSchedule(a.stdout, result)
}

func queryBorrowedBooks(ctx context.Context, a app, query borrowedbooks.Query, onlyUnreturned bool) error {
	result, err := handleQuery[borrowedbooks.Query, borrowedbooks.BorrowedBooks](
		ctx, a, borrowedbooks.NewQueryHandler(a.es, borrowedbooks.WithEventualConsistency()), query,
	)
	if err != nil {
		return err
	}

	if onlyUnreturned {
		result = result.OnlyUnreturned()
	}

	return printBorrowedBooks(a.stdout, result)
}

func queryRequestedBooks(ctx context.Context, a app, query requestedbooks.Query) error {
	result, err := handleQuery[requestedbooks.Query, requestedbooks.RequestedBooks](
		ctx, a, requestedbooks.NewQueryHandler(a.es), query,
	)
	if err != nil {
		return err
	}

	return printRequestedBooks(a.stdout, result)
}

func queryCatalog(ctx context.Context, a app, query booksincirculation.Query) error {
	result, err := handleQuery[booksincirculation.Query, booksincirculation.BooksInCirculation](
		ctx, a, booksincirculation.NewQueryHandler(a.es, booksincirculation.WithEventualConsistency()), query,
	)
	if err != nil {
		return err
	}

	return printCatalog(a.stdout, result)
}
