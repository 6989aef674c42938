package stats

// Category separates player tables from team tables.
type Category string

const (
	CategoryPlayer Category = "Player"
	CategoryTeam   Category = "Team"
)

// Kinds of statistics tables found on yearly pages.
const (
	KindHitting   = "Hitting Statistics"
	KindPitching  = "Pitching Statistics"
	KindStandings = "Standings"
)

// Record is one table row: column name → cell text.
type Record map[string]string

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is one classified statistics table extracted from a page.
type Table struct {
	Category Category
	Kind     string
	Columns  []string
	Records  []Record
}

// Key identifies which season's page a table came from.
type Key struct {
	Year   int
	League string
}
