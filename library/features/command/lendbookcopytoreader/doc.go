// Package lendbookcopytoreader lends a book copy in circulation to a registered reader.
//
// The loan period fixes the due date at lending time, default 14 days. The due date is
// what the late fee of the loan is computed from later.
package lendbookcopytoreader
