// Package cancelbookrequest withdraws the open request of a reader for a book copy.
//
// Pending and approved requests can both be canceled, an approved one frees its reservation.
package cancelbookrequest
