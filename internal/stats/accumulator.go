package stats

// Accumulator collects tables and event blocks across a run. Pages append to
// it while links are visited; it is read only once the link list is
// exhausted. First writer wins everywhere: a (year, league) page already
// recorded is never overwritten, and neither is a year's event block.
type Accumulator struct {
	player map[Key]map[string]Table
	team   map[Key]map[string]Table
	events map[int]map[string][]string
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		player: make(map[Key]map[string]Table),
		team:   make(map[Key]map[string]Table),
		events: make(map[int]map[string][]string),
	}
}

// AddPage records all tables extracted from one page under its season key.
// The caller only invokes this once a page's context resolved, so a skipped
// page never leaves partial data here.
func (a *Accumulator) AddPage(key Key, tables []Table) {
	for _, t := range tables {
		var byKind map[string]Table
		switch t.Category {
		case CategoryPlayer:
			byKind = a.categoryKinds(a.player, key)
		case CategoryTeam:
			byKind = a.categoryKinds(a.team, key)
		default:
			continue
		}
		if _, exists := byKind[t.Kind]; exists {
			continue
		}
		byKind[t.Kind] = t
	}
}

func (a *Accumulator) categoryKinds(m map[Key]map[string]Table, key Key) map[string]Table {
	if m[key] == nil {
		m[key] = make(map[string]Table)
	}
	return m[key]
}

// HasEvents reports whether a year's event block was already recorded.
func (a *Accumulator) HasEvents(year int) bool {
	_, ok := a.events[year]
	return ok
}

// AddEvents records a year's event block. The first league visited for a year
// wins; later leagues' blurbs for the same year are ignored.
func (a *Accumulator) AddEvents(year int, block map[string][]string) {
	if _, exists := a.events[year]; exists {
		return
	}
	a.events[year] = block
}

// PageCount returns how many (year, league) pages contributed tables.
func (a *Accumulator) PageCount() int {
	keys := make(map[Key]struct{}, len(a.player)+len(a.team))
	for k := range a.player {
		keys[k] = struct{}{}
	}
	for k := range a.team {
		keys[k] = struct{}{}
	}
	return len(keys)
}
