// Package registerreader registers a person as a reader of the library.
package registerreader
