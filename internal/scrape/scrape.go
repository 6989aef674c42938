package scrape

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhollis/diamond-stats/internal/fetch"
	"github.com/mhollis/diamond-stats/internal/links"
	"github.com/mhollis/diamond-stats/internal/logger"
	"github.com/mhollis/diamond-stats/internal/page"
	"github.com/mhollis/diamond-stats/internal/stats"
	"github.com/mhollis/diamond-stats/internal/table"
)

// DefaultMenuURL is the year-menu page the run starts from.
const DefaultMenuURL = "https://www.baseball-almanac.com/yearmenu.shtml"

// menuLinkSelector matches the yearly anchors on the year-menu page.
const menuLinkSelector = "table.ba-sub td.datacolBox a"

// Params are the run parameters owned by the CLI layer.
type Params struct {
	MenuURL string
	League  links.League

	// Limit truncates the link list to its first N entries when HasLimit is
	// set. A non-positive Limit with HasLimit yields an empty run.
	Limit    int
	HasLimit bool
}

// Runner drives one scrape: collect links, visit each yearly page, and
// accumulate extracted tables and events.
type Runner struct {
	fetcher fetch.Fetcher
}

// New creates a Runner using the given fetch collaborator.
func New(fetcher fetch.Fetcher) *Runner {
	return &Runner{fetcher: fetcher}
}

// Run executes the scrape and returns the filled accumulator. Pages are
// visited strictly sequentially; a fetch failure or an unresolvable page
// context skips that single page and the run continues. Only collaborator
// failures on the menu page itself abort the run.
func (r *Runner) Run(ctx context.Context, p Params) (*stats.Accumulator, error) {
	acc := stats.NewAccumulator()

	if p.HasLimit && p.Limit <= 0 {
		logger.Warn("Non-positive year limit; nothing to scrape", logger.Fields{"limit": p.Limit})
		return acc, nil
	}

	menuURL := p.MenuURL
	if menuURL == "" {
		menuURL = DefaultMenuURL
	}

	logger.Info("Loading year menu", logger.Fields{"url": menuURL})
	menu, err := r.fetcher.Fetch(ctx, menuURL)
	if err != nil {
		return nil, fmt.Errorf("loading year menu: %w", err)
	}

	yearLinks := links.Collect(menuHrefs(menu), p.League)
	logger.Info("Collected yearly links", logger.Fields{"count": len(yearLinks), "league": string(p.League)})

	if p.HasLimit {
		yearLinks = links.Truncate(yearLinks, p.Limit)
		logger.Info("Limiting scrape to first links", logger.Fields{"limit": p.Limit})
	}
	if len(yearLinks) == 0 {
		logger.Warn("No yearly links matched the filter", logger.Fields{"league": string(p.League)})
		return acc, nil
	}

	total := len(yearLinks)
	for i, link := range yearLinks {
		progress := fmt.Sprintf("%d/%d", i+1, total)

		doc, err := r.fetcher.Fetch(ctx, link.URL)
		if err != nil {
			if ctx.Err() != nil {
				return acc, ctx.Err()
			}
			logger.Warn("Failed to load page, skipping", logger.Fields{"progress": progress, "url": link.URL})
			logger.IncrCounter("pages.skipped")
			continue
		}

		pageCtx, ok := page.ParseContext(doc)
		if !ok {
			logger.Warn("Could not resolve page context, skipping", logger.Fields{"progress": progress, "url": link.URL})
			logger.IncrCounter("pages.skipped")
			continue
		}

		tables := table.ParseTables(doc)
		acc.AddPage(stats.Key{Year: pageCtx.Year, League: pageCtx.League}, tables)
		logger.IncrCounter("pages.scraped")
		logger.AddCounter("tables.captured", int64(len(tables)))
		logger.Info("Parsed page", logger.Fields{
			"progress": progress,
			"year":     pageCtx.Year,
			"league":   pageCtx.League,
			"tables":   len(tables),
		})

		if !acc.HasEvents(pageCtx.Year) {
			acc.AddEvents(pageCtx.Year, page.ExtractEvents(doc))
		}
	}

	return acc, nil
}

func menuHrefs(menu *page.Document) []string {
	var hrefs []string
	menu.Query().Find(menuLinkSelector).Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs
}
