// Package core is the functional core of the library late-fee system:
// domain events, business decisions and the late fee calculator.
//
// Nothing in here does I/O or reads a clock. Every point in time is passed in by the caller.
package core
