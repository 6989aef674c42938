package stats

import (
	"sort"
	"strconv"
	"strings"
)

// FlatTable is one output table ready for serialization. Columns carries the
// export column order; rows may still hold stray extra keys, which the export
// layer appends after these.
type FlatTable struct {
	Name    string
	Columns []string
	Rows    []Record
}

// Output table names, matching the CSV files written per run.
const (
	TablePlayerHitting  = "player_hit"
	TablePlayerPitching = "player_pitch"
	TableTeamHitting    = "team_hit"
	TableTeamPitching   = "team_pitch"
	TableStandings      = "standing"
	TableEvents         = "events"
)

// Flatten walks every (year, league) page in deterministic order and produces
// the five flat output tables. Every emitted row carries Year and League
// matching the page it was extracted under, stamped exactly once here.
// Standings rows additionally pass through the schema normalizer and get the
// canonical column order.
func (a *Accumulator) Flatten() []FlatTable {
	return []FlatTable{
		a.flatten(a.player, KindHitting, TablePlayerHitting, false),
		a.flatten(a.player, KindPitching, TablePlayerPitching, false),
		a.flatten(a.team, KindHitting, TableTeamHitting, false),
		a.flatten(a.team, KindPitching, TableTeamPitching, false),
		a.flatten(a.team, KindStandings, TableStandings, true),
	}
}

func (a *Accumulator) flatten(src map[Key]map[string]Table, kind, name string, standings bool) FlatTable {
	flat := FlatTable{Name: name}
	seen := make(map[string]bool)

	for _, key := range sortedKeys(src) {
		t, ok := src[key][kind]
		if !ok {
			continue
		}

		cols := t.Columns
		if standings {
			cols = normalizeStandingsColumns(cols)
		}
		for _, col := range append(append([]string{}, cols...), "Year", "League") {
			if !seen[col] {
				seen[col] = true
				flat.Columns = append(flat.Columns, col)
			}
		}

		for _, rec := range t.Records {
			row := rec.Clone()
			if standings {
				row = NormalizeStandings(row)
			}
			row["Year"] = strconv.Itoa(key.Year)
			row["League"] = key.League
			flat.Rows = append(flat.Rows, row)
		}
	}

	if standings {
		flat.Columns = orderStandingsColumns(flat.Columns)
	}

	return flat
}

// EventsTable flattens the per-year event blocks into one table of
// {Year, Title, Items} rows, with list items joined by " | ".
func (a *Accumulator) EventsTable() FlatTable {
	flat := FlatTable{
		Name:    TableEvents,
		Columns: []string{"Year", "Title", "Items"},
	}

	years := make([]int, 0, len(a.events))
	for year := range a.events {
		years = append(years, year)
	}
	sort.Ints(years)

	for _, year := range years {
		block := a.events[year]
		titles := make([]string, 0, len(block))
		for title := range block {
			titles = append(titles, title)
		}
		sort.Strings(titles)

		for _, title := range titles {
			flat.Rows = append(flat.Rows, Record{
				"Year":  strconv.Itoa(year),
				"Title": title,
				"Items": strings.Join(block[title], " | "),
			})
		}
	}

	return flat
}

func sortedKeys(m map[Key]map[string]Table) []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].League < keys[j].League
	})
	return keys
}
