package requestedbooks

import (
	"slices"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// ProjectRequestedBooks builds the open requests of the queried reader.
//
//	GIVEN: A reader with ReaderID
//	WHEN: RequestedBooks query is executed
//	THEN: every open request of the reader is listed with its approval state
//	EXCLUDES: canceled requests, requests fulfilled by a loan, book copies removed from circulation
//	INCLUDES: catalog data of the book copies, if the history contains it
func ProjectRequestedBooks(
	history core.DomainEvents,
	query Query,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
) RequestedBooks {

	queriedReaderID := query.ReaderID.String()
	open := make(map[core.BookIDString]*RequestedBook)
	catalog := make(map[core.BookIDString]core.BookCopyAddedToCirculation)
	removed := make(map[core.BookIDString]bool)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookCopyAddedToCirculation:
			catalog[e.BookID] = e
			delete(removed, e.BookID)

		case core.BookCopyRemovedFromCirculation:
			removed[e.BookID] = true

		case core.BookCopyRequestedByReader:
			if e.ReaderID == queriedReaderID {
				open[e.BookID] = &RequestedBook{BookID: e.BookID, RequestedAt: e.OccurredAt, UpdatedAt: e.OccurredAt}
			}

		case core.BookCopyRequestApproved:
			if request := open[e.BookID]; request != nil && e.ReaderID == queriedReaderID {
				request.IsApproved = true
				request.UpdatedAt = e.OccurredAt
			}

		case core.BookCopyRequestCanceled:
			if e.ReaderID == queriedReaderID {
				delete(open, e.BookID)
			}

		case core.BookCopyLentToReader:
			if e.ReaderID == queriedReaderID {
				delete(open, e.BookID)
			}
		}
	}

	result := RequestedBooks{
		ReaderID:       queriedReaderID,
		Books:          make([]RequestedBook, 0, len(open)),
		SequenceNumber: maxSequenceNumber,
	}

	for bookID, request := range open {
		if removed[bookID] {
			continue
		}

		book := catalog[bookID]
		request.ISBN = book.ISBN
		request.Title = book.Title
		request.Authors = book.Authors
		request.Category = book.Category
		result.Books = append(result.Books, *request)
	}

	slices.SortFunc(result.Books, func(a, b RequestedBook) int {
		return a.RequestedAt.Compare(b.RequestedAt)
	})

	result.Count = len(result.Books)

	return result
}

// BuildEventFilter selects the requests and loans of the reader.
func BuildEventFilter(readerID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookCopyRequestedByReaderEventType,
			core.BookCopyRequestApprovedEventType,
			core.BookCopyRequestCanceledEventType,
			core.BookCopyLentToReaderEventType,
		).
		AndAnyPredicateOf(eventstore.P("ReaderID", readerID.String())).
		Finalize()
}

// BuildCatalogFilter selects the circulation events of the requested book copies.
// It returns false when there are none.
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
		AnyEventTypeOf(
			core.BookCopyAddedToCirculationEventType,
			core.BookCopyRemovedFromCirculationEventType,
		).
		AndAnyPredicateOf(predicates[0], predicates[1:]...).
		Finalize(), true
}

func requestedBookIDs(history core.DomainEvents) []core.BookIDString {
	bookIDs := make([]core.BookIDString, 0)

	for _, event := range history {
		if e, ok := event.(core.BookCopyRequestedByReader); ok && !slices.Contains(bookIDs, e.BookID) {
			bookIDs = append(bookIDs, e.BookID)
		}
	}

	return bookIDs
}
