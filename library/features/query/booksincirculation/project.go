package booksincirculation

import (
	"cmp"
	"slices"
	"strings"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// ProjectBooksInCirculation builds the catalog page asked for by query.
//
//	GIVEN: All circulation and lending events
//	WHEN: BooksInCirculation query is executed
//	THEN: the matching book copies in circulation are returned, a page at a time
//	INCLUDES: lending status of every book copy, active categories of the whole catalog
//	EXCLUDES: book copies removed from circulation
func ProjectBooksInCirculation(
	history core.DomainEvents,
	query Query,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
) BooksInCirculation {

	bookInfos := make(map[core.BookIDString]*BookInfo)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookCopyAddedToCirculation:
			bookInfos[e.BookID] = &BookInfo{
				BookID:   e.BookID,
				ISBN:     e.ISBN,
				Title:    e.Title,
				Authors:  e.Authors,
				Category: e.Category,
				AddedAt:  e.OccurredAt,
			}

		case core.BookCopyRemovedFromCirculation:
			delete(bookInfos, e.BookID)

		case core.BookCopyLentToReader:
			if bookInfo := bookInfos[e.BookID]; bookInfo != nil {
				bookInfo.IsCurrentlyLent = true
			}

		case core.BookCopyReturnedByReader:
			if bookInfo := bookInfos[e.BookID]; bookInfo != nil {
				bookInfo.IsCurrentlyLent = false
			}
		}
	}

	catalog := make([]BookInfo, 0, len(bookInfos))
	for _, bookInfo := range bookInfos {
		catalog = append(catalog, *bookInfo)
	}

	slices.SortFunc(catalog, func(a, b BookInfo) int {
		return cmp.Or(a.AddedAt.Compare(b.AddedAt), strings.Compare(a.BookID, b.BookID))
	})

	matches := slices.DeleteFunc(slices.Clone(catalog), func(book BookInfo) bool {
		return !query.matches(book)
	})

	result := BooksInCirculation{
		Count:          len(matches),
		Categories:     activeCategories(catalog),
		SequenceNumber: maxSequenceNumber,
	}

	page := afterCursor(matches, query.Cursor)
	if query.Limit > 0 && len(page) > query.Limit {
		page = page[:query.Limit]
		result.NextCursor = page[len(page)-1].BookID
	}

	result.Books = page

	return result
}

// BuildEventFilter selects the circulation and lending history of all book copies.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookCopyAddedToCirculationEventType,
			core.BookCopyRemovedFromCirculationEventType,
			core.BookCopyLentToReaderEventType,
			core.BookCopyReturnedByReaderEventType,
		).
		Finalize()
}

func (q Query) matches(book BookInfo) bool {
	if q.Category != "" && !strings.EqualFold(q.Category, book.Category) {
		return false
	}

	if q.Filter == "" {
		return true
	}

	filter := strings.ToLower(q.Filter)

	return strings.Contains(strings.ToLower(book.Title), filter) ||
		strings.Contains(strings.ToLower(book.Authors), filter) ||
		strings.Contains(strings.ToLower(book.ISBN), filter)
}

// afterCursor returns nothing for a cursor that is not in books.
func afterCursor(books []BookInfo, cursor string) []BookInfo {
	if cursor == "" {
		return books
	}

	i := slices.IndexFunc(books, func(book BookInfo) bool { return book.BookID == cursor })
	if i < 0 {
		return []BookInfo{}
	}

	return books[i+1:]
}

func activeCategories(catalog []BookInfo) []string {
	categories := make([]string, 0)

	for _, book := range catalog {
		if book.Category != "" && !slices.Contains(categories, book.Category) {
			categories = append(categories, book.Category)
		}
	}

	slices.Sort(categories)

	return categories
}
