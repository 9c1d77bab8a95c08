package booksincirculation

import (
	"time"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// BookInfo is one book copy in circulation.
type BookInfo struct {
	BookID          core.BookIDString
	ISBN            core.ISBNString
	Title           string
	Authors         string
	Category        string
	AddedAt         time.Time
	IsCurrentlyLent bool
}

// BooksInCirculation is one page of the catalog, ordered by AddedAt.
// Count is the number of matches before paging, NextCursor is empty on the last page.
type BooksInCirculation struct {
	Books          []BookInfo
	Count          int
	NextCursor     string
	Categories     []string
	SequenceNumber eventstore.MaxSequenceNumberUint
}
