// Package requestedbooks lists the open book requests of one reader and whether the library approved them.
package requestedbooks
