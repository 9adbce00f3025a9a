// Package player holds batter identity, biography and season totals, plus
// the accent-insensitive name search used to pick a batter.
package player

import (
	"fmt"
	"strings"
)

// Identity is a resolved batter.
type Identity struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

// NotAvailable fills optional bio fields the source omits.
const NotAvailable = "N/A"

// Bio is the display biography of a batter.
type Bio struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Height   string `json:"height"`
	Weight   int    `json:"weight"`
	Bats     string `json:"bats"`
	Throws   string `json:"throws"`
	Position string `json:"position"`
	Team     string `json:"team"`
	TeamAbbr string `json:"team_abbreviation,omitempty"`
	Number   string `json:"number"`
	Headshot string `json:"headshot_url"`
	Logo     string `json:"logo_url,omitempty"`
}

// SeasonTotals are the official batting totals over a date range. They are
// display-only and never fed back into the aggregation engine.
type SeasonTotals struct {
	G   int     `json:"G"`
	PA  int     `json:"PA"`
	AB  int     `json:"AB"`
	R   int     `json:"R"`
	H   int     `json:"H"`
	B2  int     `json:"2B"`
	B3  int     `json:"3B"`
	HR  int     `json:"HR"`
	RBI int     `json:"RBI"`
	BB  int     `json:"BB"`
	IBB int     `json:"IBB"`
	HBP int     `json:"HBP"`
	SO  int     `json:"SO"`
	SB  int     `json:"SB"`
	CS  int     `json:"CS"`
	BA  float64 `json:"BA"`
	OBP float64 `json:"OBP"`
	SLG float64 `json:"SLG"`
	OPS float64 `json:"OPS"`
}

// WalksDisplay is the combined BB + IBB figure shown next to the totals.
func (s SeasonTotals) WalksDisplay() int { return s.BB + s.IBB }

// SplitName splits a free-text name at the first space into first and last.
func SplitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	first, last, _ = strings.Cut(name, " ")
	return first, strings.TrimSpace(last)
}

// HeadshotURL is the image URL of the batter's current headshot.
func HeadshotURL(id int64) string {
	return fmt.Sprintf("https://img.mlbstatic.com/mlb-photos/image/upload/"+
		"d_people:generic:headshot:67:current.png/w_640,q_auto:best/v1/people/%d/headshot/silo/current.png", id)
}

// logoCodes maps team abbreviations to the logo CDN code where they differ.
var logoCodes = map[string]string{
	"AZ":  "ari",
	"CWS": "chw",
}

var teams = map[string]struct{}{
	"AZ": {}, "ATL": {}, "BAL": {}, "BOS": {}, "CHC": {}, "CWS": {}, "CIN": {}, "CLE": {},
	"COL": {}, "DET": {}, "HOU": {}, "KC": {}, "LAA": {}, "LAD": {}, "MIA": {}, "MIL": {},
	"MIN": {}, "NYM": {}, "NYY": {}, "OAK": {}, "PHI": {}, "PIT": {}, "SD": {}, "SF": {},
	"SEA": {}, "STL": {}, "TB": {}, "TEX": {}, "TOR": {}, "WSH": {},
}

// LogoURL returns the team logo for an abbreviation, false for unknown teams.
func LogoURL(abbr string) (string, bool) {
	if _, ok := teams[abbr]; !ok {
		return "", false
	}
	code, ok := logoCodes[abbr]
	if !ok {
		code = strings.ToLower(abbr)
	}
	return fmt.Sprintf("https://a.espncdn.com/combiner/i?img=/i/teamlogos/mlb/500/scoreboard/%s.png&h=500&w=500", code), true
}
