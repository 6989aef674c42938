package stats

import (
	"reflect"
	"testing"
)

func hittingTable(cat Category, names ...string) Table {
	t := Table{
		Category: cat,
		Kind:     KindHitting,
		Columns:  []string{"Name", "AVG"},
	}
	for _, n := range names {
		t.Records = append(t.Records, Record{"Name": n, "AVG": ".300"})
	}
	return t
}

func TestAccumulator_FirstWriterWins(t *testing.T) {
	acc := NewAccumulator()
	key := Key{Year: 1905, League: "American League"}

	acc.AddPage(key, []Table{hittingTable(CategoryPlayer, "First")})
	acc.AddPage(key, []Table{hittingTable(CategoryPlayer, "Second")})

	flat := acc.Flatten()[0] // player_hit
	if len(flat.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(flat.Rows))
	}
	if flat.Rows[0]["Name"] != "First" {
		t.Errorf("expected first writer to win, got %q", flat.Rows[0]["Name"])
	}
}

func TestAccumulator_EventsFirstYearWins(t *testing.T) {
	acc := NewAccumulator()

	acc.AddEvents(1905, map[string][]string{"Special Events": {"first"}})
	acc.AddEvents(1905, map[string][]string{"Special Events": {"second"}})

	flat := acc.EventsTable()
	if len(flat.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(flat.Rows))
	}
	if flat.Rows[0]["Items"] != "first" {
		t.Errorf("expected first block to win, got %q", flat.Rows[0]["Items"])
	}
}

func TestFlatten_StampsYearAndLeague(t *testing.T) {
	acc := NewAccumulator()
	acc.AddPage(Key{Year: 1905, League: "National League"}, []Table{hittingTable(CategoryPlayer, "NL Guy")})
	acc.AddPage(Key{Year: 1905, League: "American League"}, []Table{hittingTable(CategoryPlayer, "AL Guy")})
	acc.AddPage(Key{Year: 1903, League: "American League"}, []Table{hittingTable(CategoryPlayer, "Early Guy")})

	flat := acc.Flatten()[0] // player_hit
	if len(flat.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(flat.Rows))
	}

	// Deterministic order: year ascending, then league.
	wantOrder := []struct{ name, year, league string }{
		{"Early Guy", "1903", "American League"},
		{"AL Guy", "1905", "American League"},
		{"NL Guy", "1905", "National League"},
	}
	for i, want := range wantOrder {
		row := flat.Rows[i]
		if row["Name"] != want.name || row["Year"] != want.year || row["League"] != want.league {
			t.Errorf("row %d = %v, want %+v", i, row, want)
		}
	}

	wantCols := []string{"Name", "AVG", "Year", "League"}
	if !reflect.DeepEqual(flat.Columns, wantCols) {
		t.Errorf("columns = %v, want %v", flat.Columns, wantCols)
	}
}

func TestFlatten_FiveTables(t *testing.T) {
	flat := NewAccumulator().Flatten()

	wantNames := []string{TablePlayerHitting, TablePlayerPitching, TableTeamHitting, TableTeamPitching, TableStandings}
	if len(flat) != len(wantNames) {
		t.Fatalf("expected %d tables, got %d", len(wantNames), len(flat))
	}
	for i, name := range wantNames {
		if flat[i].Name != name {
			t.Errorf("table %d name = %q, want %q", i, flat[i].Name, name)
		}
	}
}

func TestFlatten_StandingsNormalized(t *testing.T) {
	acc := NewAccumulator()
	acc.AddPage(Key{Year: 1905, League: "American League"}, []Table{{
		Category: CategoryTeam,
		Kind:     KindStandings,
		Columns:  []string{"Team [Click for roster]", "Wins", "Losses", "GB"},
		Records: []Record{
			{"Team [Click for roster]": "Philadelphia Athletics", "Wins": "92", "Losses": "56", "GB": "--"},
		},
	}})

	flat := acc.Flatten()[4] // standing
	wantCols := []string{"Team", "W", "L", "GB", "Year", "League"}
	if !reflect.DeepEqual(flat.Columns, wantCols) {
		t.Errorf("columns = %v, want %v", flat.Columns, wantCols)
	}

	if len(flat.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(flat.Rows))
	}
	row := flat.Rows[0]
	want := Record{
		"Team": "Philadelphia Athletics", "W": "92", "L": "56", "GB": "--",
		"Year": "1905", "League": "American League",
	}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("row = %v, want %v", row, want)
	}
}

func TestFlatten_PlayerTablesNotNormalized(t *testing.T) {
	// Header drift outside Standings is preserved as-is.
	acc := NewAccumulator()
	acc.AddPage(Key{Year: 1905, League: "American League"}, []Table{{
		Category: CategoryPlayer,
		Kind:     KindHitting,
		Columns:  []string{"Name", "Wins"},
		Records:  []Record{{"Name": "Someone", "Wins": "20"}},
	}})

	flat := acc.Flatten()[0]
	if _, ok := flat.Rows[0]["Wins"]; !ok {
		t.Error("player tables must not go through standings normalization")
	}
}

func TestEventsTable(t *testing.T) {
	acc := NewAccumulator()
	acc.AddEvents(1996, map[string][]string{
		"Salary Information":   {"Average Salary $1,119,981"},
		"1996 Baseball Events": {"All-Star Game", "World Series"},
	})
	acc.AddEvents(1905, map[string][]string{
		"1905 Baseball Events": {"World Series"},
	})

	flat := acc.EventsTable()
	if len(flat.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(flat.Rows))
	}

	// Years ascending, titles sorted within a year.
	if flat.Rows[0]["Year"] != "1905" {
		t.Errorf("expected 1905 first, got %v", flat.Rows[0])
	}
	if flat.Rows[1]["Title"] != "1996 Baseball Events" || flat.Rows[1]["Items"] != "All-Star Game | World Series" {
		t.Errorf("unexpected row: %v", flat.Rows[1])
	}
	if flat.Rows[2]["Title"] != "Salary Information" {
		t.Errorf("unexpected row: %v", flat.Rows[2])
	}
}
