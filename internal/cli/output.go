package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/mhollis/diamond-stats/internal/export"
	"github.com/mhollis/diamond-stats/internal/stats"
)

// writeSummary prints the end-of-run report: one line per written table and
// the run counters.
func writeSummary(w io.Writer, tables []stats.FlatTable, writer *export.Writer, counters map[string]int64) {
	fmt.Fprintln(w, "Scrape finished.")

	for _, t := range tables {
		fmt.Fprintf(w, "  %s: %d rows, %d cols\n", writer.Path(t), len(t.Rows), len(t.Columns))
	}

	if len(counters) == 0 {
		return
	}

	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Run counters:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %d\n", name, counters[name])
	}
}
