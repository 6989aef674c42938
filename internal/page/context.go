package page

import (
	"regexp"
	"strconv"
	"strings"
)

// Context identifies the season a page's tables belong to.
type Context struct {
	Year   int
	League string // "American League" or "National League"
}

// alFoundingYear mirrors the link-collection rule: AL pages before 1901 are
// bad data (the "American Association" shares the link suffix).
const alFoundingYear = 1901

// headerRe matches intro headings like "1905 American League ..." in any case.
var headerRe = regexp.MustCompile(`(?i)(\d{4})\s+(AMERICAN|NATIONAL)\s+LEAGUE`)

// ParseContext extracts (year, league) from the page's intro heading.
//
// It fails closed: a missing heading or an unmatched pattern yields ok=false
// and the caller must skip the page entirely. The pre-1901 American League
// exclusion is applied here as a final guard even though link collection
// already filters those pages.
func ParseContext(d *Document) (Context, bool) {
	heading := d.Query().Find("div.intro > h1").First()
	if heading.Length() == 0 {
		return Context{}, false
	}

	m := headerRe.FindStringSubmatch(heading.Text())
	if m == nil {
		return Context{}, false
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return Context{}, false
	}

	league := titleCase(m[2]) + " League"
	if league == "American League" && year < alFoundingYear {
		return Context{}, false
	}

	return Context{Year: year, League: league}, true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
