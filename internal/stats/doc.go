// Package stats holds the domain model for extracted league statistics: the
// records assembled from page tables, the per-run accumulator keyed by
// (year, league), the standings schema normalizer, and the aggregation that
// flattens everything into the five output tables.
//
// Records keep cell text as strings throughout. Historical tables mix numeric
// and textual cells, so numeric coercion is deferred to whoever consumes the
// CSV output.
package stats
