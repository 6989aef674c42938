package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mhollis/diamond-stats/internal/stats"
)

// Writer serializes flat tables as CSV files in one output directory.
type Writer struct {
	outDir string
}

// New creates a Writer, expanding a leading ~ and creating the output
// directory if needed.
func New(outDir string) (*Writer, error) {
	if strings.HasPrefix(outDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		outDir = filepath.Join(home, outDir[2:])
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{outDir: outDir}, nil
}

// Path returns the file path a table is written to.
func (w *Writer) Path(t stats.FlatTable) string {
	return filepath.Join(w.outDir, t.Name+".csv")
}

// WriteTable writes one table as <name>.csv. The header is the table's column
// order plus any stray record keys (sorted, appended last); cells a record
// lacks are left empty.
func (w *Writer) WriteTable(t stats.FlatTable) error {
	path := w.Path(t)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close() // nolint:errcheck

	cw := csv.NewWriter(f)
	header := unionColumns(t)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}

	row := make([]string, len(header))
	for _, rec := range t.Rows {
		for i, col := range header {
			row[i] = rec[col]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row to %s: %w", path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// WriteAll writes every table, stopping at the first failure.
func (w *Writer) WriteAll(tables []stats.FlatTable) error {
	for _, t := range tables {
		if err := w.WriteTable(t); err != nil {
			return err
		}
	}
	return nil
}

// unionColumns extends a table's declared column order with any keys that
// appear only inside records. Extras are sorted so output is stable run to
// run; in practice they should not occur.
func unionColumns(t stats.FlatTable) []string {
	seen := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		seen[col] = true
	}

	var extras []string
	for _, rec := range t.Rows {
		for col := range rec {
			if !seen[col] {
				seen[col] = true
				extras = append(extras, col)
			}
		}
	}
	sort.Strings(extras)

	return append(append([]string(nil), t.Columns...), extras...)
}
