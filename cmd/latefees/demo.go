package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-latefees-go/eventstore/memengine"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/addbookcopy"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/configurelatefeeschedule"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/lendbookcopytoreader"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/registerreader"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/returnbookcopyfromreader"
	"github.com/AntonStoeckl/library-latefees-go/library/features/query/borrowedbooks"
)

// runDemo plays a short lending history against an in-memory store and prints the reader's loans.
func runDemo(ctx context.Context, a app, args []string) error {
	flags := flag.NewFlagSet("demo", flag.ContinueOnError)
	daysAfterDue := flags.Int("days-after-due", 3, "days between the due date and the query")

	if err := flags.Parse(args); err != nil {
		return err
	}

	es, err := memengine.NewEventStore(memengine.WithLogger(a.logger))
	if err != nil {
		return err
	}

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	readerID := uuid.New()
	books := []struct {
		id    uuid.UUID
		isbn  string
		title string
	}{
		{uuid.New(), "978-0-13-468599-1", "The Go Programming Language"},
		{uuid.New(), "978-1-098-10013-1", "Learning Domain-Driven Design"},
	}

	configure, err := configurelatefeeschedule.BuildCommand(core.AmountFromInt(50), core.AmountFromInt(10), start)
	if err != nil {
		return err
	}

	if _, err = configurelatefeeschedule.NewCommandHandler(es).Handle(ctx, configure); err != nil {
		return err
	}

	if _, err = registerreader.NewCommandHandler(es).Handle(ctx, registerreader.BuildCommand(readerID, "Demo Reader", start)); err != nil {
		return err
	}

	lend := lendbookcopytoreader.NewCommandHandler(es)
	for _, book := range books {
		add := addbookcopy.BuildCommand(book.id, book.isbn, book.title, "", "", start)
		if _, err = addbookcopy.NewCommandHandler(es).Handle(ctx, add); err != nil {
			return err
		}

		if _, err = lend.Handle(ctx, lendbookcopytoreader.BuildCommand(book.id, readerID, start.Add(time.Hour))); err != nil {
			return err
		}
	}

	dueAt := start.Add(time.Hour + lendbookcopytoreader.DefaultLoanPeriod)
	returnFirst := returnbookcopyfromreader.BuildCommand(books[0].id, readerID, dueAt.Add(26*time.Hour))
	if _, err = returnbookcopyfromreader.NewCommandHandler(es).Handle(ctx, returnFirst); err != nil {
		return err
	}

	if _, err = fmt.Fprintf(a.stdout, "reader %s\n", readerID); err != nil {
		return err
	}

	now := dueAt.AddDate(0, 0, *daysAfterDue)

	a.es = es

	return queryBorrowedBooks(ctx, a, borrowedbooks.BuildQuery(readerID, now), false)
}
