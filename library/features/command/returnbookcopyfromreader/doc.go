// Package returnbookcopyfromreader ends a loan and records its final late fee.
//
// The fee is computed at return time from the loan's due date and the latest configured
// late fee schedule. From then on the loan owes exactly the recorded fee, a later change of
// the schedule does not affect it.
package returnbookcopyfromreader
