package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/AntonStoeckl/library-latefees-go/library/features/query/booksincirculation"
	"github.com/AntonStoeckl/library-latefees-go/library/features/query/borrowedbooks"
	"github.com/AntonStoeckl/library-latefees-go/library/features/query/latefeeschedule"
	"github.com/AntonStoeckl/library-latefees-go/library/features/query/requestedbooks"
	"github.com/AntonStoeckl/library-latefees-go/library/shell"
)

const (
	dateLayout     = "2006-01-02"
	unreturned     = "Unreturned"
	approved       = "approved"
	pending        = "pending"
	lent           = "lent"
	available      = "available"
	feeDecimals    = 2
	tabMinWidth    = 0
	tabWidth       = 4
	tabPadding     = 2
	tabPaddingChar = ' '
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, tabPaddingChar, 0)
}

func printHandlerResult(w io.Writer, commandType string, result shell.HandlerResult) error {
	outcome := shell.StatusSuccess
	if result.Idempotent {
		outcome = shell.StatusIdempotent
	}

	_, err := fmt.Fprintf(w, "%s: %s (attempts: %d)\n", commandType, outcome, result.RetryAttempts)

	return err
}

func printSchedule(w io.Writer, result latefeeschedule.LateFeeSchedule) error {
	if !result.Available {
		_, err := fmt.Fprintln(w, "late fee schedule: not configured")
		return err
	}

	_, err := fmt.Fprintf(
		w,
		"late fee schedule: initial fee %s, following date fee %s (since %s)\n",
		result.Schedule.InitialFee.StringFixed(feeDecimals),
		result.Schedule.FollowingDateFee.StringFixed(feeDecimals),
		result.ConfiguredAt.Format(time.RFC3339),
	)

	return err
}

// printBorrowedBooks renders one row per loan: title, issued date, return date or "Unreturned", fee.
func printBorrowedBooks(w io.Writer, result borrowedbooks.BorrowedBooks) error {
	tw := newTabWriter(w)

	fmt.Fprintln(tw, "BOOK\tTITLE\tISSUED\tDUE\tRETURNED\tFEE")

	for _, book := range result.Books {
		returned := unreturned
		if book.IsReturned {
			returned = book.ReturnedAt.Format(dateLayout)
		}

		fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%s\t%s\t%s\n",
			book.BookID,
			book.Title,
			book.LentAt.Format(dateLayout),
			book.DueAt.Format(dateLayout),
			returned,
			book.Fee.StringFixed(feeDecimals),
		)
	}

	fmt.Fprintf(tw, "\t\t\t\tTOTAL\t%s\n", result.TotalFee.StringFixed(feeDecimals))

	if err := tw.Flush(); err != nil {
		return err
	}

	if !result.ScheduleAvailable {
		_, err := fmt.Fprintln(w, "late fee schedule not configured, open loans owe nothing")
		return err
	}

	return nil
}

func printRequestedBooks(w io.Writer, result requestedbooks.RequestedBooks) error {
	tw := newTabWriter(w)

	fmt.Fprintln(tw, "BOOK\tTITLE\tREQUESTED\tSTATUS\tUPDATED")

	for _, book := range result.Books {
		status := pending
		if book.IsApproved {
			status = approved
		}

		fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%s\t%s\n",
			book.BookID,
			book.Title,
			book.RequestedAt.Format(dateLayout),
			status,
			book.UpdatedAt.Format(dateLayout),
		)
	}

	fmt.Fprintf(tw, "\t\t\tCOUNT\t%d\n", result.Count)

	return tw.Flush()
}

// printCatalog renders one page of the catalog, the cursor of the next page and the active categories.
func printCatalog(w io.Writer, result booksincirculation.BooksInCirculation) error {
	tw := newTabWriter(w)

	fmt.Fprintln(tw, "BOOK\tISBN\tTITLE\tAUTHORS\tCATEGORY\tSTATUS")

	for _, book := range result.Books {
		status := available
		if book.IsCurrentlyLent {
			status = lent
		}

		fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%s\t%s\t%s\n",
			book.BookID,
			book.ISBN,
			book.Title,
			book.Authors,
			book.Category,
			status,
		)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%d of %d matching book copies\n", len(result.Books), result.Count); err != nil {
		return err
	}

	if result.NextCursor != "" {
		if _, err := fmt.Fprintf(w, "next page: -cursor %s\n", result.NextCursor); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "categories: %s\n", strings.Join(result.Categories, ", "))

	return err
}
