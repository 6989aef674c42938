package page

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// eventsXPath locates the cell carrying the yearly events/salary blurb. The
// page marks it with nothing more stable than its own text.
const eventsXPath = `//td[contains(., 'Events') or contains(., 'Salary')]`

// ExtractEvents pulls the small "Events" / "Salary" text block from a yearly
// page. Each line of the blurb looks like
//
//	Special Events: All-Star Game | World Series
//
// and becomes one title → list entry. Absence of the block is not an error;
// the result is simply empty.
func ExtractEvents(d *Document) map[string][]string {
	events := make(map[string][]string)

	cell := htmlquery.FindOne(d.Root(), eventsXPath)
	if cell == nil {
		return events
	}

	for _, line := range strings.Split(renderText(cell), "\n") {
		title, rest, found := strings.Cut(line, ": ")
		if !found {
			continue
		}
		title = strings.TrimSpace(title)
		if !strings.Contains(title, "Events") && !strings.Contains(title, "Salary") {
			continue
		}
		events[title] = strings.Split(strings.TrimSpace(rest), " | ")
	}

	return events
}

// renderText flattens a node's text the way a browser would render it: <br>
// and block-element boundaries become newlines, so line-oriented parsing of
// the blurb works on the raw tree.
func renderText(n *html.Node) string {
	var b strings.Builder
	writeText(n, &b)
	return b.String()
}

func writeText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(strings.TrimSpace(n.Data))
	case html.ElementNode:
		if n.Data == "br" {
			b.WriteString("\n")
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, b)
	}

	if n.Type == html.ElementNode && isBlock(n.Data) {
		b.WriteString("\n")
	}
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "tr", "li", "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}
