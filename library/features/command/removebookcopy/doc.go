// Package removebookcopy takes a book copy out of circulation.
//
// A removed copy can neither be lent nor requested, and drops out of the catalog.
// A copy that is lent has to be returned first, so no open loan loses its book.
package removebookcopy
