package tsea

import "context"

// EmitFunc receives match records as they are produced.
// Returning an error stops the search and the error is returned to the caller.
type EmitFunc func(MatchRecord) error

// Searcher runs a complete search: enumerate candidates, scan each one,
// and emit records in discovery order, then line order.
type Searcher interface {
	Search(ctx context.Context, req SearchRequest, emit EmitFunc) (SearchSummary, error)
}
