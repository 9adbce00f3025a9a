package mlbstats

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/okian/batterlab/internal/domain/player"
)

const dateLayout = "2006-01-02"

// Search returns the players whose name matches q.
func (c *Client) Search(ctx context.Context, q string) ([]player.Entry, error) {
	people, err := c.search(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]player.Entry, 0, len(people))
	for _, p := range people {
		out = append(out, player.Entry{
			ID:          p.ID,
			FullName:    p.FullName,
			FirstSeason: year(p.MLBDebutDate),
			LastSeason:  year(p.LastPlayedDate),
		})
	}
	return out, nil
}

// Lookup resolves a free-text name to one batter, preferring active players.
func (c *Client) Lookup(ctx context.Context, name string) (player.Identity, error) {
	people, err := c.search(ctx, name)
	if err != nil {
		return player.Identity{}, err
	}
	if len(people) == 0 {
		return player.Identity{}, fmt.Errorf("%w: %q", player.ErrNotFound, name)
	}
	chosen := people[0]
	for _, p := range people {
		if p.Active {
			chosen = p
			break
		}
	}
	return identity(chosen), nil
}

// ByID resolves a batter id.
func (c *Client) ByID(ctx context.Context, id int64) (player.Identity, error) {
	p, err := c.person(ctx, id)
	if err != nil {
		return player.Identity{}, err
	}
	return identity(p), nil
}

// Bio returns the display biography of a batter.
func (c *Client) Bio(ctx context.Context, id int64) (player.Bio, error) {
	p, err := c.person(ctx, id)
	if err != nil {
		return player.Bio{}, err
	}
	bio := player.Bio{
		Name:     p.FullName,
		Age:      p.CurrentAge,
		Height:   p.Height,
		Weight:   p.Weight,
		Bats:     p.BatSide.Code,
		Throws:   p.PitchHand.Code,
		Position: p.Position.Abbreviation,
		Team:     player.NotAvailable,
		Number:   orNA(p.PrimaryNumber),
		Headshot: player.HeadshotURL(p.ID),
	}
	if p.CurrentTeam != nil {
		bio.Team = orNA(p.CurrentTeam.Name)
		bio.TeamAbbr = p.CurrentTeam.Abbreviation
		if logo, ok := player.LogoURL(p.CurrentTeam.Abbreviation); ok {
			bio.Logo = logo
		}
	}
	return bio, nil
}

// SeasonTotals returns the official hitting totals between start and end.
// A range without games yields zero totals.
func (c *Client) SeasonTotals(ctx context.Context, id int64, start, end time.Time) (player.SeasonTotals, error) {
	q := url.Values{}
	q.Set("stats", "byDateRange")
	q.Set("group", "hitting")
	q.Set("startDate", start.Format(dateLayout))
	q.Set("endDate", end.Format(dateLayout))

	var resp statsResponse
	if err := c.getJSON(ctx, "/api/v1/people/"+strconv.FormatInt(id, 10)+"/stats", q, &resp); err != nil {
		return player.SeasonTotals{}, err
	}
	if len(resp.Stats) == 0 || len(resp.Stats[0].Splits) == 0 {
		return player.SeasonTotals{}, nil
	}
	s := resp.Stats[0].Splits[0].Stat
	return player.SeasonTotals{
		G:   s.GamesPlayed,
		PA:  s.PlateAppearances,
		AB:  s.AtBats,
		R:   s.Runs,
		H:   s.Hits,
		B2:  s.Doubles,
		B3:  s.Triples,
		HR:  s.HomeRuns,
		RBI: s.RBI,
		BB:  s.BaseOnBalls,
		IBB: s.IntentionalWalks,
		HBP: s.HitByPitch,
		SO:  s.StrikeOuts,
		SB:  s.StolenBases,
		CS:  s.CaughtStealing,
		BA:  rate(s.Avg),
		OBP: rate(s.OBP),
		SLG: rate(s.SLG),
		OPS: rate(s.OPS),
	}, nil
}

func (c *Client) search(ctx context.Context, name string) ([]person, error) {
	q := url.Values{}
	q.Set("names", strings.TrimSpace(name))
	var resp peopleResponse
	if err := c.getJSON(ctx, "/api/v1/people/search", q, &resp); err != nil {
		return nil, err
	}
	return resp.People, nil
}

func (c *Client) person(ctx context.Context, id int64) (person, error) {
	q := url.Values{}
	q.Set("personIds", strconv.FormatInt(id, 10))
	q.Set("hydrate", "currentTeam")
	var resp peopleResponse
	if err := c.getJSON(ctx, "/api/v1/people", q, &resp); err != nil {
		return person{}, err
	}
	if len(resp.People) == 0 {
		return person{}, fmt.Errorf("%w: id %d", player.ErrNotFound, id)
	}
	return resp.People[0], nil
}

func identity(p person) player.Identity {
	first, last := p.FirstName, p.LastName
	if p.UseName != "" {
		first = p.UseName
	}
	if first == "" && last == "" {
		first, last = player.SplitName(p.FullName)
	}
	return player.Identity{ID: p.ID, FirstName: first, LastName: last, FullName: p.FullName}
}

// year extracts the year of a YYYY-MM-DD date, zero when absent.
func year(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}

// rate parses StatsAPI rate strings such as ".312"; placeholders like ".---" are zero.
func rate(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return player.NotAvailable
	}
	return s
}
