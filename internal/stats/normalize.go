package stats

// standingsOrder is the canonical column order for the standings output.
// Columns not listed here keep their first-seen order after these.
var standingsOrder = []string{"Team", "W", "L", "WP", "GB", "T", "Year", "League"}

// NormalizeStandings maps historical standings header variants onto the
// canonical schema. Some decades use "Team [Click for roster]" or a combined
// "Team | Roster" header instead of "Team", and "Wins"/"Losses" instead of
// "W"/"L". Each alias is resolved only when the target key is not already
// present, so applying the normalizer to an already-canonical record is a
// no-op. The "Roster" key exists only as a normalization artifact and is
// removed before the record leaves this function.
func NormalizeStandings(rec Record) Record {
	if len(rec) == 0 {
		return rec
	}

	out := rec.Clone()

	if v, ok := out["Team [Click for roster]"]; ok {
		if _, exists := out["Team"]; !exists {
			out["Team"] = v
			delete(out, "Team [Click for roster]")
		}
	}

	if v, ok := out["Team | Roster"]; ok {
		delete(out, "Team | Roster")
		if _, exists := out["Team"]; !exists {
			out["Team"] = v
		}
		if _, exists := out["Roster"]; !exists {
			out["Roster"] = ""
		}
	}

	if v, ok := out["Wins"]; ok {
		if _, exists := out["W"]; !exists {
			out["W"] = v
			delete(out, "Wins")
		}
	}

	if v, ok := out["Losses"]; ok {
		if _, exists := out["L"]; !exists {
			out["L"] = v
			delete(out, "Losses")
		}
	}

	delete(out, "Roster")

	return out
}

// normalizeStandingsColumns applies the same alias resolution to a column
// list, deduplicating while preserving first-seen order.
func normalizeStandingsColumns(cols []string) []string {
	aliases := map[string]string{
		"Team [Click for roster]": "Team",
		"Team | Roster":           "Team",
		"Wins":                    "W",
		"Losses":                  "L",
	}

	out := make([]string, 0, len(cols))
	seen := make(map[string]bool, len(cols))
	for _, col := range cols {
		if canonical, ok := aliases[col]; ok {
			col = canonical
		}
		if col == "Roster" || seen[col] {
			continue
		}
		seen[col] = true
		out = append(out, col)
	}
	return out
}

// orderStandingsColumns forces the canonical column order, appending any
// remaining columns in their existing order.
func orderStandingsColumns(cols []string) []string {
	present := make(map[string]bool, len(cols))
	for _, col := range cols {
		present[col] = true
	}

	ordered := make([]string, 0, len(cols))
	picked := make(map[string]bool, len(standingsOrder))
	for _, col := range standingsOrder {
		if present[col] {
			ordered = append(ordered, col)
			picked[col] = true
		}
	}
	for _, col := range cols {
		if !picked[col] {
			ordered = append(ordered, col)
		}
	}
	return ordered
}
