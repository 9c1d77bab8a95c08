package borrowedbooks

import (
	"slices"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// ProjectBorrowedBooks builds the loan list of the queried reader and prices every loan at query.Now.
//
//	GIVEN: A reader with ReaderID
//	WHEN: BorrowedBooks query is executed
//	THEN: all loans of the reader, open and returned, are listed with their fee
//	INCLUDES: catalog data of the book copies, if the history contains it
func ProjectBorrowedBooks(
	history core.DomainEvents,
	query Query,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
) (BorrowedBooks, error) {

	queriedReaderID := query.ReaderID.String()

	loans := make([]core.Loan, 0)
	openLoanOfBook := make(map[core.BookIDString]int)
	catalog := make(map[core.BookIDString]core.BookCopyAddedToCirculation)

	var schedule *core.FeeSchedule

	for _, event := range history {
		switch e := event.(type) {
		case core.BookCopyAddedToCirculation:
			catalog[e.BookID] = e

		case core.LateFeeScheduleConfigured:
			configured := e.Schedule()
			schedule = &configured

		case core.BookCopyLentToReader:
			if e.ReaderID != queriedReaderID {
				continue
			}

			openLoanOfBook[e.BookID] = len(loans)
			loans = append(loans, core.Loan{
				BookID:      e.BookID,
				ReaderID:    e.ReaderID,
				LentAt:      e.OccurredAt,
				DueAt:       e.DueAt,
				RecordedFee: core.ZeroAmount,
			})

		case core.BookCopyReturnedByReader:
			if e.ReaderID != queriedReaderID {
				continue
			}

			if i, ok := openLoanOfBook[e.BookID]; ok {
				loans[i].IsReturned = true
				loans[i].ReturnedAt = e.OccurredAt
				loans[i].RecordedFee = e.LateFee
				delete(openLoanOfBook, e.BookID)
			}
		}
	}

	slices.SortStableFunc(loans, func(a, b core.Loan) int {
		return a.LentAt.Compare(b.LentAt)
	})

	result := BorrowedBooks{
		ReaderID:          queriedReaderID,
		Books:             make([]BorrowedBook, 0, len(loans)),
		Count:             len(loans),
		TotalFee:          core.ZeroAmount,
		ScheduleAvailable: schedule != nil,
		SequenceNumber:    maxSequenceNumber,
	}

	for _, loan := range loans {
		fee, err := loan.Fee(schedule, query.Now)
		if err != nil {
			return BorrowedBooks{}, err
		}

		book := catalog[loan.BookID]
		result.Books = append(result.Books, BorrowedBook{
			BookID:     loan.BookID,
			ISBN:       book.ISBN,
			Title:      book.Title,
			Authors:    book.Authors,
			Category:   book.Category,
			LentAt:     loan.LentAt,
			DueAt:      loan.DueAt,
			IsReturned: loan.IsReturned,
			ReturnedAt: loan.ReturnedAt,
			Fee:        fee,
		})
		result.TotalFee = result.TotalFee.Add(fee)
	}

	return result, nil
}

// BuildEventFilter selects the loans of the reader and the fee schedule changes.
func BuildEventFilter(readerID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookCopyLentToReaderEventType,
			core.BookCopyReturnedByReaderEventType,
		).
		AndAnyPredicateOf(eventstore.P("ReaderID", readerID.String())).
		OrMatching().
		AnyEventTypeOf(core.LateFeeScheduleConfiguredEventType).
		Finalize()
}

// BuildCatalogFilter selects the catalog entries of the given book copies.
func BuildCatalogFilter(bookIDs []core.BookIDString) (eventstore.Filter, bool) {
	if len(bookIDs) == 0 {
		return eventstore.Filter{}, false
	}

	predicates := make([]eventstore.FilterPredicate, 0, len(bookIDs))
	for _, bookID := range bookIDs {
		predicates = append(predicates, eventstore.P("BookID", bookID))
	}

	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.BookCopyAddedToCirculationEventType).
		AndAnyPredicateOf(predicates[0], predicates[1:]...).
		Finalize(), true
}

func lentBookIDs(history core.DomainEvents) []core.BookIDString {
	bookIDs := make([]core.BookIDString, 0)

	for _, event := range history {
		if e, ok := event.(core.BookCopyLentToReader); ok && !slices.Contains(bookIDs, e.BookID) {
			bookIDs = append(bookIDs, e.BookID)
		}
	}

	return bookIDs
}
