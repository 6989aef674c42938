package table

import (
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhollis/diamond-stats/internal/logger"
	"github.com/mhollis/diamond-stats/internal/page"
	"github.com/mhollis/diamond-stats/internal/stats"
)

// rosterSuffix is decoration appended to team-name headers in some decades.
const rosterSuffix = " [Click for roster]"

// regions are banner labels that occupy the position otherwise used for a
// team name in divisional standings tables.
var regions = map[string]bool{"East": true, "Central": true, "West": true}

// carryCell is one pending rowspan value: reinsert at its column index for
// the next remaining data rows.
type carryCell struct {
	value     string
	remaining int
}

// scan is the per-table state threaded through the row loop.
type scan struct {
	identity []string
	colCount int // expected data-cell count, 0 until a header colspan declares it
	columns  []string
	carry    map[int]*carryCell
	records  []stats.Record
	dropped  int
}

// ParseTables extracts every classifiable statistics table from one page.
// Unclassifiable tables are dropped without affecting their siblings.
func ParseTables(d *page.Document) []stats.Table {
	var tables []stats.Table

	d.Query().Find("table.boxed").Each(func(_ int, sel *goquery.Selection) {
		s := &scan{carry: make(map[int]*carryCell)}
		sel.Find("tr").Each(func(_ int, row *goquery.Selection) {
			s.row(row)
		})

		if s.dropped > 0 {
			logger.AddCounter("rows.dropped", int64(s.dropped))
		}

		t, ok := s.table()
		if !ok {
			return
		}
		logger.Debug("Captured table", logger.Fields{
			"category": string(t.Category),
			"kind":     t.Kind,
			"rows":     len(t.Records),
			"cols":     len(t.Columns),
		})
		tables = append(tables, t)
	})

	return tables
}

// row advances the scan by one table row.
func (s *scan) row(row *goquery.Selection) {
	s.classify(row)

	if cols, carries := bannerColumns(row); cols != nil {
		s.columns = cols
		if len(carries) > 0 {
			s.carry = carries
		}
	}

	s.data(row)
}

// classify reads heading fragments from a header row, accumulating identity
// tokens and the expected column count. The first colspan declaration wins;
// later header rows never override it.
func (s *scan) classify(row *goquery.Selection) {
	var headings []string
	row.Find("h2, p").Each(func(_ int, h *goquery.Selection) {
		headings = append(headings, strings.TrimSpace(h.Text()))
	})
	if len(headings) == 0 {
		return
	}

	h0 := headings[0]
	h1 := ""
	if len(headings) > 1 {
		h1 = headings[1]
	}

	s.identity = append(s.identity, identityTokens(h0, h1)...)

	if s.colCount == 0 {
		if attr, ok := row.Find("td").First().Attr("colspan"); ok {
			if n, err := strconv.Atoi(attr); err == nil && n > 0 {
				s.colCount = n
			}
		}
	}
}

// bannerColumns resolves column names from a header row's banner cells and
// records any header-declared rowspans. Returns (nil, nil) when the row
// carries no banner cells.
func bannerColumns(row *goquery.Selection) ([]string, map[int]*carryCell) {
	cells := row.Find(`td[class*="banner"]`)
	if cells.Length() == 0 {
		return nil, nil
	}

	names := make([]string, 0, cells.Length())
	carries := make(map[int]*carryCell)

	cells.Each(func(idx int, cell *goquery.Selection) {
		text := strings.TrimSpace(cell.Text())

		if attr, ok := cell.Attr("rowspan"); ok {
			// A cell spanning N rows is reinserted into the next N-1.
			if n, err := strconv.Atoi(attr); err == nil && n > 1 {
				carries[idx] = &carryCell{value: text, remaining: n - 1}
			}
		}

		if regions[text] {
			names = append(names, "Region")
		} else {
			names = append(names, strings.TrimSpace(strings.ReplaceAll(text, rosterSuffix, "")))
		}
	})

	return names, carries
}

// data consumes one data row: collect cell text, expand pending rowspan
// carries, and assemble a record when the resolved cell count matches the
// column set.
func (s *scan) data(row *goquery.Selection) {
	cells := row.Find(`td[class*="datacolBox"], td[class*="datacolBlue"]`)
	if cells.Length() == 0 {
		return
	}

	values := make([]string, 0, cells.Length())
	cells.Each(func(idx int, cell *goquery.Selection) {
		if attr, ok := cell.Attr("rowspan"); ok {
			if n, err := strconv.Atoi(attr); err == nil && n > 1 {
				s.carry[idx] = &carryCell{value: strings.TrimSpace(cell.Text()), remaining: n - 1}
			}
		}
		values = append(values, strings.TrimSpace(cell.Text()))
	})

	// A short row with pending carries is what a vertical cell merge looks
	// like once the browser's rendering is stripped away: reinsert each
	// carried value at its original index, lowest first. The reinsertion is
	// tentative until the row is known to assemble, so a malformed row
	// cannot eat a carry meant for its successor.
	resolved := values
	carried := false
	if s.colCount != 0 && len(values) != s.colCount && len(s.carry) > 0 {
		resolved = append([]string(nil), values...)
		for _, idx := range sortedCarryIndexes(s.carry) {
			resolved = insertAt(resolved, idx, s.carry[idx].value)
		}
		carried = true
	}

	if len(s.columns) == 0 || len(resolved) != len(s.columns) {
		s.dropped++
		return
	}

	if carried {
		for idx, c := range s.carry {
			c.remaining--
			if c.remaining <= 0 {
				delete(s.carry, idx)
			}
		}
	}

	rec := make(stats.Record, len(resolved))
	for i, name := range s.columns {
		rec[name] = resolved[i]
	}
	s.records = append(s.records, rec)
}

// table finalizes the scan. A table is emitted only with a resolved identity,
// a non-empty column set, and at least one assembled record.
func (s *scan) table() (stats.Table, bool) {
	if len(s.identity) == 0 || len(s.columns) == 0 || len(s.records) == 0 {
		return stats.Table{}, false
	}

	var category stats.Category
	switch s.identity[0] {
	case "Player":
		category = stats.CategoryPlayer
	case "Team":
		category = stats.CategoryTeam
	default:
		return stats.Table{}, false
	}

	return stats.Table{
		Category: category,
		Kind:     s.identity[len(s.identity)-1],
		Columns:  s.columns,
		Records:  s.records,
	}, true
}

func sortedCarryIndexes(carry map[int]*carryCell) []int {
	idxs := make([]int, 0, len(carry))
	for idx := range carry {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	return idxs
}

func insertAt(values []string, idx int, value string) []string {
	if idx >= len(values) {
		return append(values, value)
	}
	values = append(values, "")
	copy(values[idx+1:], values[idx:])
	values[idx] = value
	return values
}
