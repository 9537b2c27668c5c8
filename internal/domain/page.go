package domain

// SearchLimit is the hard cap on rows returned by any catalog search.
const SearchLimit = 50

// NewSearchLimit resolves an optional client-supplied limit.
// Nil or non-positive values fall back to SearchLimit, and anything
// larger is capped at SearchLimit.
func NewSearchLimit(limit *int) int {
	if limit == nil || *limit < 1 || *limit > SearchLimit {
		return SearchLimit
	}
	return *limit
}
