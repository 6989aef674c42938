// Package scrape orchestrates a full run: year-menu link collection, the
// per-page fetch/parse loop, and accumulation of results. Failure handling is
// per-page: a page that cannot be fetched or whose context cannot be resolved
// is skipped without recording partial data, and the run continues.
package scrape
