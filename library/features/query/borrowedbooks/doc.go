// Package borrowedbooks lists every loan of one reader with the late fee owed for it at a given instant.
//
// Returned loans show the fee recorded at return time. Open loans are priced with the latest
// late fee schedule, or owe nothing while no schedule is configured.
package borrowedbooks
