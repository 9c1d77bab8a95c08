package latefeeschedule

const queryType = "LateFeeSchedule"

// Query asks for the current late fee schedule.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
