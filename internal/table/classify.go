package table

import "regexp"

var (
	playerRe = regexp.MustCompile(`Player|Pitcher`)
	teamRe   = regexp.MustCompile(`Team Review|Team Standings`)
	kindRe   = regexp.MustCompile(`\w+ Statistics`)
)

// identityTokens returns the identity contribution of one header row, given
// its first two heading fragments. It is a pure function over the fragment
// text so it can be checked directly against historical header strings.
//
// Signals, in the order the tokens accumulate:
//   - h0 naming a Player or Pitcher review marks the table "Player"
//   - h0 or h1 naming "Team Review" contributes "Team"; "Team Standings"
//     contributes both tokens (the trailing qualifier becomes the kind)
//   - h1 ending in a "...Statistics" phrase contributes that phrase
func identityTokens(h0, h1 string) []string {
	var tokens []string

	if playerRe.MatchString(h0) {
		tokens = append(tokens, "Player")
	}

	team := teamRe.FindString(h0)
	if team == "" {
		team = teamRe.FindString(h1)
	}
	switch team {
	case "Team Review":
		tokens = append(tokens, "Team")
	case "Team Standings":
		tokens = append(tokens, "Team", "Standings")
	}

	if kind := kindRe.FindString(h1); kind != "" {
		tokens = append(tokens, kind)
	}

	return tokens
}
