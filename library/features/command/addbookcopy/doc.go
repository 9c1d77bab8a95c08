// Package addbookcopy puts a copy of a book into circulation, so it can be lent to readers.
package addbookcopy
