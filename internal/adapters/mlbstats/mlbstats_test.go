package mlbstats_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/batterlab/internal/adapters/mlbstats"
	"github.com/okian/batterlab/internal/adapters/upstream"
	"github.com/okian/batterlab/internal/domain/player"
	"github.com/smartystreets/goconvey/convey"
)

const searchBody = `{"people":[
 {"id":111,"fullName":"Juan Soto","firstName":"Juan","lastName":"Soto","active":false,"mlbDebutDate":"2001-05-01","lastPlayedDate":"2004-09-30"},
 {"id":665742,"fullName":"Juan Soto","firstName":"Juan","lastName":"Soto","active":true,"mlbDebutDate":"2018-05-20","lastPlayedDate":"2024-09-29"}
]}`

const personBody = `{"people":[{"id":665742,"fullName":"Juan Soto","firstName":"Juan","lastName":"Soto",
 "currentAge":26,"height":"6' 2\"","weight":224,"primaryNumber":"22",
 "batSide":{"code":"L"},"pitchHand":{"code":"L"},"primaryPosition":{"abbreviation":"RF"},
 "currentTeam":{"name":"New York Mets","abbreviation":"NYM"}}]}`

const statsBody = `{"stats":[{"splits":[{"stat":{"gamesPlayed":157,"plateAppearances":713,"atBats":576,
 "runs":128,"hits":166,"doubles":31,"triples":4,"homeRuns":41,"rbi":109,"baseOnBalls":129,
 "intentionalWalks":4,"hitByPitch":4,"strikeOuts":119,"stolenBases":7,"caughtStealing":4,
 "avg":".288","obp":".419","slg":".569","ops":".989"}}]}]}`

func newServer(failures *int) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/people/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("names") == "nobody" {
			_, _ = w.Write([]byte(`{"people":[]}`))
			return
		}
		_, _ = w.Write([]byte(searchBody))
	})
	mux.HandleFunc("/api/v1/people", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("hydrate") != "currentTeam" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("personIds") != "665742" {
			_, _ = w.Write([]byte(`{"people":[]}`))
			return
		}
		_, _ = w.Write([]byte(personBody))
	})
	mux.HandleFunc("/api/v1/people/665742/stats", func(w http.ResponseWriter, r *http.Request) {
		if *failures > 0 {
			*failures--
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		q := r.URL.Query()
		if q.Get("stats") != "byDateRange" || q.Get("startDate") != "2024-04-01" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if q.Get("endDate") == "2024-04-02" {
			_, _ = w.Write([]byte(`{"stats":[{"splits":[]}]}`))
			return
		}
		_, _ = w.Write([]byte(statsBody))
	})
	return httptest.NewServer(mux)
}

func TestClient(t *testing.T) {
	convey.Convey("Given a StatsAPI client against a test server", t, func() {
		failures := 0
		srv := newServer(&failures)
		defer srv.Close()

		client := mlbstats.NewClient(
			mlbstats.WithBaseURL(srv.URL),
			mlbstats.WithHTTPClient(srv.Client()),
			mlbstats.WithRetrier(upstream.NewRetrier(mlbstats.Name, 3, time.Millisecond)),
			mlbstats.WithBreaker(upstream.NewBreaker("mlbstats-test", upstream.BreakerSettings{
				MaxRequests: 1, Timeout: time.Minute, MinRequests: 10, FailureRatio: 0.9,
			})),
		)
		ctx := context.Background()
		start, _ := time.Parse("2006-01-02", "2024-04-01")
		end, _ := time.Parse("2006-01-02", "2024-09-30")

		convey.Convey("When looking up a name shared by several players", func() {
			id, err := client.Lookup(ctx, "Juan Soto")

			convey.Convey("Then the active player is chosen", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(id, convey.ShouldResemble, player.Identity{
					ID: 665742, FirstName: "Juan", LastName: "Soto", FullName: "Juan Soto",
				})
			})
		})

		convey.Convey("When looking up an unknown name", func() {
			_, err := client.Lookup(ctx, "nobody")

			convey.Convey("Then ErrNotFound is returned", func() {
				convey.So(errors.Is(err, player.ErrNotFound), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When searching", func() {
			entries, err := client.Search(ctx, "soto")

			convey.Convey("Then seasons come from debut and last played dates", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(entries, convey.ShouldHaveLength, 2)
				convey.So(entries[1].DisplayName(), convey.ShouldEqual, "Juan Soto (2018-2024)")
			})
		})

		convey.Convey("When resolving by id", func() {
			id, err := client.ByID(ctx, 665742)
			convey.So(err, convey.ShouldBeNil)
			convey.So(id.FullName, convey.ShouldEqual, "Juan Soto")

			_, err = client.ByID(ctx, 1)
			convey.So(errors.Is(err, player.ErrNotFound), convey.ShouldBeTrue)
		})

		convey.Convey("When fetching the bio", func() {
			bio, err := client.Bio(ctx, 665742)

			convey.Convey("Then display fields and image URLs are filled", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(bio.Team, convey.ShouldEqual, "New York Mets")
				convey.So(bio.Number, convey.ShouldEqual, "22")
				convey.So(bio.Bats, convey.ShouldEqual, "L")
				convey.So(bio.Position, convey.ShouldEqual, "RF")
				convey.So(bio.Logo, convey.ShouldContainSubstring, "/nym.png")
				convey.So(bio.Headshot, convey.ShouldContainSubstring, "/people/665742/")
			})
		})

		convey.Convey("When fetching season totals after transient failures", func() {
			failures = 2
			totals, err := client.SeasonTotals(ctx, 665742, start, end)

			convey.Convey("Then the retried call decodes the totals", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(totals.G, convey.ShouldEqual, 157)
				convey.So(totals.HR, convey.ShouldEqual, 41)
				convey.So(totals.WalksDisplay(), convey.ShouldEqual, 133)
				convey.So(totals.OPS, convey.ShouldEqual, 0.989)
			})
		})

		convey.Convey("When the range has no games", func() {
			totals, err := client.SeasonTotals(ctx, 665742, start, start.AddDate(0, 0, 1))

			convey.Convey("Then zero totals are returned", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(totals, convey.ShouldResemble, player.SeasonTotals{})
			})
		})
	})
}
