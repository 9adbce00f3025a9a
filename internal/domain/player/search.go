package player

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Search limits.
const (
	DefaultSearchLimit = 20

	// StatcastEra is the first season with pitch tracking data.
	StatcastEra = 2015
)

// Entry is one searchable player.
type Entry struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	FirstSeason int    `json:"first_season"`
	LastSeason  int    `json:"last_season"`
}

// DisplayName disambiguates players sharing a name, e.g. "Will Smith (2016-2024)".
func (e Entry) DisplayName() string {
	return fmt.Sprintf("%s (%d-%d)", e.FullName, e.FirstSeason, e.LastSeason)
}

// NormalizeName strips accents so "José Ramírez" matches "jose ramirez".
func NormalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Search returns up to limit roster entries whose accent-folded name contains
// term, case-insensitively. Only players active in the tracking era are
// considered; results are most recent first, then by name.
func Search(roster []Entry, term string, limit int) []Entry {
	term = strings.ToLower(NormalizeName(strings.TrimSpace(term)))
	if term == "" {
		return []Entry{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	eligible := make([]Entry, 0, len(roster))
	for _, e := range roster {
		if e.LastSeason >= StatcastEra {
			eligible = append(eligible, e)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].LastSeason != eligible[j].LastSeason {
			return eligible[i].LastSeason > eligible[j].LastSeason
		}
		return eligible[i].FullName < eligible[j].FullName
	})

	out := make([]Entry, 0, limit)
	for _, e := range eligible {
		if !strings.Contains(strings.ToLower(NormalizeName(e.FullName)), term) {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}

// FullNameFor maps a display name back to the player's full name.
func FullNameFor(roster []Entry, display string) (string, bool) {
	for _, e := range roster {
		if e.DisplayName() == display {
			return e.FullName, true
		}
	}
	return "", false
}
