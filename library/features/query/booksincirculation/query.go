package booksincirculation

const queryType = "BooksInCirculation"

// Query asks for a page of the catalog.
//
// Filter matches title, authors or ISBN, case-insensitive. Category matches exactly,
// case-insensitive. Empty values match every book copy. Limit 0 returns all matches after Cursor.
type Query struct {
	Filter   string
	Category string
	Cursor   string
	Limit    int
}

// BuildQuery creates a new Query with the provided parameters. A negative limit counts as 0.
func BuildQuery(filter string, category string, cursor string, limit int) Query {
	return Query{
		Filter:   filter,
		Category: category,
		Cursor:   cursor,
		Limit:    max(limit, 0),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
