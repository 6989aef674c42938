// Package cli implements the diamond-stats command line interface: flag
// parsing, wiring of the fetch/scrape/export layers, and the end-of-run
// summary.
package cli
