package links

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// League selects which league's yearly pages to collect.
type League string

const (
	LeagueAL   League = "AL"
	LeagueNL   League = "NL"
	LeagueBoth League = "BOTH"
)

// alFoundingYear is the first season the American League existed.
const alFoundingYear = 1901

// yearlyLinkRe matches yearly page paths like "yr1905a.shtml".
var yearlyLinkRe = regexp.MustCompile(`yr(\d{4})([an])\.shtml$`)

// YearLink is one validated yearly-page link.
type YearLink struct {
	URL        string
	Year       int
	LeagueCode string // "a" or "n"
}

// ParseLeague validates a league filter string (case-insensitive).
func ParseLeague(s string) (League, error) {
	switch League(strings.ToUpper(strings.TrimSpace(s))) {
	case LeagueAL:
		return LeagueAL, nil
	case LeagueNL:
		return LeagueNL, nil
	case LeagueBoth, "":
		return LeagueBoth, nil
	}
	return "", fmt.Errorf("invalid league %q (must be AL, NL, or BOTH)", s)
}

// Collect filters raw hrefs down to validated yearly links, preserving the
// order they appeared on the menu page.
//
// Hrefs that do not match the yearly-page pattern are rejected. The league
// filter keeps code "a" for AL, "n" for NL, both for BOTH. Independently of
// the filter, "a"-coded links before 1901 are always dropped.
func Collect(hrefs []string, league League) []YearLink {
	var want string
	switch league {
	case LeagueAL:
		want = "a"
	case LeagueNL:
		want = "n"
	}

	links := make([]YearLink, 0, len(hrefs))
	for _, href := range hrefs {
		m := yearlyLinkRe.FindStringSubmatch(href)
		if m == nil {
			continue
		}

		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		code := m[2]

		if want != "" && code != want {
			continue
		}
		if code == "a" && year < alFoundingYear {
			continue
		}

		links = append(links, YearLink{URL: href, Year: year, LeagueCode: code})
	}

	return links
}

// Truncate keeps the first limit links. A negative or zero limit yields an
// empty list; callers treat that as "nothing to scrape", not an error.
func Truncate(links []YearLink, limit int) []YearLink {
	if limit <= 0 {
		return nil
	}
	if limit >= len(links) {
		return links
	}
	return links[:limit]
}
