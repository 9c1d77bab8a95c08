// Package requestbookcopy lets a registered reader ask for a book copy in circulation.
//
// A request stays open until the reader cancels it or the book copy is lent to the reader.
// The library approves open requests, see package approvebookrequest.
package requestbookcopy
