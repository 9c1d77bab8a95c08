// Package approvebookrequest approves the open request of a reader for a book copy.
//
// An approved request reserves the book copy: until the reader borrows it or cancels the
// request, the copy can not be lent to anybody else.
package approvebookrequest
