// Package booksincirculation is the library catalog: the book copies in circulation,
// narrowed by a text filter and a category, and the categories that have copies in circulation.
//
// Results are paged with a cursor, the BookID of the last copy of the previous page.
package booksincirculation
