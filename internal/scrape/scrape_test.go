package scrape

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mhollis/diamond-stats/internal/links"
	"github.com/mhollis/diamond-stats/internal/page"
	"github.com/mhollis/diamond-stats/internal/stats"
)

const (
	menuURL = "https://www.baseball-almanac.com/yearmenu.shtml"
	alURL   = "https://www.baseball-almanac.com/yearly/yr1905a.shtml"
	nlURL   = "https://www.baseball-almanac.com/yearly/yr1996n.shtml"
)

// fakeFetcher serves fixture HTML keyed by URL, never touching the network.
type fakeFetcher struct {
	pages map[string]string // url → raw HTML
	fail  map[string]bool
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*page.Document, error) {
	f.calls = append(f.calls, url)
	if f.fail[url] {
		return nil, errors.New("transient fetch failure")
	}
	raw, ok := f.pages[url]
	if !ok {
		return nil, fmt.Errorf("no fixture registered for %s", url)
	}
	return page.NewDocument(strings.NewReader(raw))
}

func newFakeFetcher(t *testing.T) *fakeFetcher {
	t.Helper()

	f := &fakeFetcher{
		pages: make(map[string]string),
		fail:  make(map[string]bool),
	}
	fixtures := map[string]string{
		menuURL: "yearmenu.html",
		alURL:   "yr1905a.html",
		nlURL:   "yr1996n.html",
	}
	for url, name := range fixtures {
		data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "fixtures", name))
		if err != nil {
			t.Fatalf("failed to load fixture %s: %v", name, err)
		}
		f.pages[url] = string(data)
	}
	return f
}

func TestRun_EndToEnd(t *testing.T) {
	fetcher := newFakeFetcher(t)
	acc, err := New(fetcher).Run(context.Background(), Params{
		MenuURL: menuURL,
		League:  links.LeagueBoth,
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// The 1890 "a" link and the teams link must not have been visited.
	for _, call := range fetcher.calls {
		if strings.Contains(call, "yr1890a") || strings.Contains(call, "teammenu") {
			t.Errorf("unexpected fetch of %s", call)
		}
	}

	if got := acc.PageCount(); got != 2 {
		t.Fatalf("expected 2 pages recorded, got %d", got)
	}

	flat := acc.Flatten()
	byName := make(map[string]stats.FlatTable, len(flat))
	for _, ft := range flat {
		byName[ft.Name] = ft
	}

	standing := byName[stats.TableStandings]
	if len(standing.Rows) != 7 { // 2 from 1905 AL + 5 from 1996 NL
		t.Fatalf("expected 7 standings rows, got %d", len(standing.Rows))
	}
	for i, row := range standing.Rows {
		if row["Year"] == "" || row["League"] == "" {
			t.Errorf("standings row %d missing Year/League stamp: %v", i, row)
		}
		if row["Team"] == "" {
			t.Errorf("standings row %d missing normalized Team: %v", i, row)
		}
	}
	// 1905 comes before 1996 in the flattened output regardless of link order.
	if standing.Rows[0]["Year"] != "1905" || standing.Rows[2]["Year"] != "1996" {
		t.Errorf("unexpected row ordering: %v", standing.Rows)
	}

	if len(byName[stats.TablePlayerHitting].Rows) != 3 { // 2 AL + 1 NL
		t.Errorf("expected 3 player hitting rows, got %d", len(byName[stats.TablePlayerHitting].Rows))
	}

	events := acc.EventsTable()
	if len(events.Rows) != 4 { // two titles per fixture year
		t.Errorf("expected 4 event rows, got %d: %v", len(events.Rows), events.Rows)
	}
}

func TestRun_SkipsFailedPage(t *testing.T) {
	fetcher := newFakeFetcher(t)
	fetcher.fail[alURL] = true

	acc, err := New(fetcher).Run(context.Background(), Params{
		MenuURL: menuURL,
		League:  links.LeagueBoth,
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// The failed page contributes nothing; the run continues to the NL page.
	if got := acc.PageCount(); got != 1 {
		t.Errorf("expected 1 page recorded, got %d", got)
	}
}

func TestRun_SkipsPageWithoutContext(t *testing.T) {
	fetcher := newFakeFetcher(t)
	fetcher.pages[alURL] = `<html><body><p>league page without an intro heading</p></body></html>`

	acc, err := New(fetcher).Run(context.Background(), Params{
		MenuURL: menuURL,
		League:  links.LeagueBoth,
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := acc.PageCount(); got != 1 {
		t.Errorf("expected only the NL page, got %d pages", got)
	}
}

func TestRun_LeagueFilter(t *testing.T) {
	fetcher := newFakeFetcher(t)

	acc, err := New(fetcher).Run(context.Background(), Params{
		MenuURL: menuURL,
		League:  links.LeagueNL,
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	for _, call := range fetcher.calls {
		if strings.Contains(call, "yr1905a") {
			t.Errorf("AL page fetched under NL filter: %s", call)
		}
	}
	if got := acc.PageCount(); got != 1 {
		t.Errorf("expected 1 page, got %d", got)
	}
}

func TestRun_Limit(t *testing.T) {
	fetcher := newFakeFetcher(t)

	acc, err := New(fetcher).Run(context.Background(), Params{
		MenuURL:  menuURL,
		League:   links.LeagueBoth,
		Limit:    1,
		HasLimit: true,
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := acc.PageCount(); got != 1 {
		t.Errorf("expected 1 page under limit, got %d", got)
	}
}

func TestRun_NonPositiveLimit(t *testing.T) {
	fetcher := newFakeFetcher(t)

	acc, err := New(fetcher).Run(context.Background(), Params{
		MenuURL:  menuURL,
		League:   links.LeagueBoth,
		Limit:    0,
		HasLimit: true,
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := acc.PageCount(); got != 0 {
		t.Errorf("expected empty run, got %d pages", got)
	}
	if len(fetcher.calls) != 0 {
		t.Errorf("expected no fetches, got %v", fetcher.calls)
	}
}

func TestRun_MenuFailure(t *testing.T) {
	fetcher := newFakeFetcher(t)
	fetcher.fail[menuURL] = true

	if _, err := New(fetcher).Run(context.Background(), Params{MenuURL: menuURL, League: links.LeagueBoth}); err == nil {
		t.Error("expected menu fetch failure to propagate")
	}
}
