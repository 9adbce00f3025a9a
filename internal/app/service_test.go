package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/okian/batterlab/internal/adapters/repository"
	service "github.com/okian/batterlab/internal/app"
	"github.com/okian/batterlab/internal/domain/outcome"
	"github.com/okian/batterlab/internal/domain/pitch"
	"github.com/okian/batterlab/internal/domain/player"
	"github.com/okian/batterlab/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

const (
	sotoID = 665742
	nolaID = 605400
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func terminal(game int64, ab int, e outcome.Event, d outcome.Description, c pitch.Count) pitch.Pitch {
	return pitch.Pitch{
		GamePK: game, AtBatNumber: ab, PitchNumber: 1,
		Batter: sotoID, Pitcher: nolaID, PitcherName: "Nola, Aaron", PThrows: pitch.Right,
		Inning: 1, InningTopBot: pitch.Bottom, Balls: c.Balls, Strikes: c.Strikes,
		BatScoreDiff: pitch.SomeInt(0), BatScore: pitch.SomeInt(0), PostBatScore: pitch.SomeInt(0),
		Event: e, Description: d, Zone: pitch.SomeInt(5),
		PlateX: pitch.SomeFloat(0), PlateZ: pitch.SomeFloat(2.5),
		WOBAValue: pitch.SomeFloat(0.9), WOBADenom: pitch.SomeFloat(1),
		HomeTeam: "NYY", GameDate: day("2024-04-02"),
	}
}

func sampleTable() *pitch.Table {
	return pitch.NewTable([]pitch.Pitch{
		terminal(1, 1, outcome.Single, outcome.HitIntoPlay, pitch.Count{}),
		terminal(1, 2, outcome.Walk, outcome.Ball, pitch.Count{Balls: 3}),
		terminal(1, 3, outcome.Strikeout, outcome.SwingingStrike, pitch.Count{Balls: 3, Strikes: 2}),
		terminal(1, 4, outcome.HomeRun, outcome.HitIntoPlay, pitch.Count{Balls: 1}),
	}, nil)
}

type fakeSource struct {
	table *pitch.Table
	err   error
	calls int
	last  [2]time.Time
}

func (f *fakeSource) Fetch(_ context.Context, _ int64, start, end time.Time) (*pitch.Table, error) {
	f.calls++
	f.last = [2]time.Time{start, end}
	return f.table, f.err
}

type fakeDirectory struct {
	bioErr error
}

func (fakeDirectory) Lookup(_ context.Context, name string) (player.Identity, error) {
	if name == "Juan Soto" {
		return player.Identity{ID: sotoID, FirstName: "Juan", LastName: "Soto", FullName: "Juan Soto"}, nil
	}
	return player.Identity{}, player.ErrNotFound
}

func (fakeDirectory) ByID(_ context.Context, id int64) (player.Identity, error) {
	return player.Identity{ID: id, FullName: "Player"}, nil
}

func (fakeDirectory) Search(context.Context, string) ([]player.Entry, error) {
	return []player.Entry{
		{ID: 1, FullName: "José Ramírez", FirstSeason: 2013, LastSeason: 2024},
		{ID: 2, FullName: "Jose Canseco", FirstSeason: 1985, LastSeason: 2001},
	}, nil
}

func (d fakeDirectory) Bio(context.Context, int64) (player.Bio, error) {
	return player.Bio{Name: "Juan Soto", Team: "New York Mets"}, d.bioErr
}

func (fakeDirectory) SeasonTotals(context.Context, int64, time.Time, time.Time) (player.SeasonTotals, error) {
	return player.SeasonTotals{G: 1, PA: 4}, nil
}

func newService(src *fakeSource, dir service.Directory) *service.Service {
	opts := []service.Option{service.WithStore(repository.NewMemoryStore(repository.WithMaxSessions(4)))}
	if dir != nil {
		opts = append(opts, service.WithDirectory(dir))
	}
	return service.New(src, opts...)
}

func TestService_Load(t *testing.T) {
	Convey("Given a service with a directory", t, func() {
		ctx := context.Background()
		src := &fakeSource{table: sampleTable()}
		svc := newService(src, fakeDirectory{})
		req := service.LoadRequest{PlayerName: "Juan Soto", Start: day("2024-04-01"), End: day("2024-09-30")}

		Convey("When loading a known player", func() {
			sess, err := svc.Load(ctx, req)

			Convey("Then a session with display data is stored", func() {
				So(err, ShouldBeNil)
				So(sess.ID, ShouldNotEqual, uuid.Nil)
				So(sess.Player.ID, ShouldEqual, int64(sotoID))
				So(sess.Pitches(), ShouldEqual, 4)
				So(sess.Totals.PA, ShouldEqual, 4)
				So(sess.Bio.Team, ShouldEqual, "New York Mets")

				got, err := svc.Session(ctx, sess.ID)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, sess)
			})
		})

		Convey("When the bio is unavailable", func() {
			svc = newService(src, fakeDirectory{bioErr: errors.New("down")})
			sess, err := svc.Load(ctx, req)

			Convey("Then the session still loads", func() {
				So(err, ShouldBeNil)
				So(sess.Bio, ShouldResemble, player.Bio{})
			})
		})

		Convey("When the player is unknown", func() {
			req.PlayerName = "Nobody"
			_, err := svc.Load(ctx, req)

			Convey("Then the source is never called", func() {
				So(errors.Is(err, service.ErrPlayerNotFound), ShouldBeTrue)
				So(src.calls, ShouldEqual, 0)
			})
		})

		Convey("When no player is given", func() {
			req.PlayerName = ""
			_, err := svc.Load(ctx, req)
			So(errors.Is(err, service.ErrInvalidPlayer), ShouldBeTrue)
		})

		Convey("When the range is inverted", func() {
			req.Start, req.End = req.End, req.Start
			_, err := svc.Load(ctx, req)
			So(errors.Is(err, service.ErrInvalidDateRange), ShouldBeTrue)
		})

		Convey("When the range leaves coverage", func() {
			req.Start = day("2014-04-01")
			_, err := svc.Load(ctx, req)
			So(errors.Is(err, service.ErrDateOutOfCoverage), ShouldBeTrue)
		})

		Convey("When the source returns no pitches", func() {
			src.table = pitch.NewTable(nil, nil)
			_, err := svc.Load(ctx, req)
			So(errors.Is(err, service.ErrNoPitchData), ShouldBeTrue)
		})

		Convey("When the source fails", func() {
			src.err = errors.New("boom")
			_, err := svc.Load(ctx, req)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "boom")
		})
	})

	Convey("Given a service without a directory", t, func() {
		ctx := context.Background()
		svc := newService(&fakeSource{table: sampleTable()}, nil)

		Convey("Then loads by id work and loads by name are refused", func() {
			sess, err := svc.Load(ctx, service.LoadRequest{PlayerID: sotoID, Start: day("2024-04-01"), End: day("2024-04-30")})
			So(err, ShouldBeNil)
			So(sess.Player.ID, ShouldEqual, int64(sotoID))

			_, err = svc.Load(ctx, service.LoadRequest{PlayerName: "Juan Soto", Start: day("2024-04-01"), End: day("2024-04-30")})
			So(errors.Is(err, service.ErrNoDirectory), ShouldBeTrue)

			_, err = svc.SearchPlayers(ctx, "soto", 0)
			So(errors.Is(err, service.ErrNoDirectory), ShouldBeTrue)
		})
	})
}

func TestService_Reload(t *testing.T) {
	Convey("Given a loaded session", t, func() {
		ctx := context.Background()
		src := &fakeSource{table: sampleTable()}
		svc := newService(src, fakeDirectory{})
		sess, err := svc.Load(ctx, service.LoadRequest{PlayerName: "Juan Soto", Start: day("2024-04-01"), End: day("2024-09-30")})
		So(err, ShouldBeNil)

		Convey("When reloading with a new range only", func() {
			reloaded, err := svc.Reload(ctx, sess.ID, service.LoadRequest{Start: day("2024-05-01")})

			Convey("Then the session is replaced under the same id", func() {
				So(err, ShouldBeNil)
				So(reloaded.ID, ShouldEqual, sess.ID)
				So(reloaded, ShouldNotEqual, sess)
				So(reloaded.Start, ShouldEqual, day("2024-05-01"))
				So(reloaded.End, ShouldEqual, day("2024-09-30"))
				So(src.last[0], ShouldEqual, day("2024-05-01"))

				got, _ := svc.Session(ctx, sess.ID)
				So(got, ShouldEqual, reloaded)
			})
		})

		Convey("When reloading an unknown session", func() {
			_, err := svc.Reload(ctx, uuid.New(), service.LoadRequest{})
			So(errors.Is(err, service.ErrSessionNotFound), ShouldBeTrue)
		})
	})
}

func TestService_Queries(t *testing.T) {
	Convey("Given a loaded session", t, func() {
		ctx := context.Background()
		svc := newService(&fakeSource{table: sampleTable()}, fakeDirectory{})
		sess, err := svc.Load(ctx, service.LoadRequest{PlayerID: sotoID, Start: day("2024-04-01"), End: day("2024-09-30")})
		So(err, ShouldBeNil)

		Convey("Then the overall line is aggregated", func() {
			line, err := svc.Line(ctx, sess.ID)
			So(err, ShouldBeNil)
			So(line.PA, ShouldEqual, 4)
			So(line.AB, ShouldEqual, 3)
			So(line.OPS, ShouldEqual, 2.417)
		})

		Convey("Then splits are served in classifier order", func() {
			all, err := svc.Splits(ctx, sess.ID)
			So(err, ShouldBeNil)
			So(len(all), ShouldBeGreaterThan, 0)
			So(string(all[0].Kind), ShouldEqual, "clutch")

			platoon, err := svc.Split(ctx, sess.ID, "platoon")
			So(err, ShouldBeNil)
			So(platoon.Labels(), ShouldResemble, []string{"vs RHP"})

			_, err = svc.Split(ctx, sess.ID, "weather")
			So(errors.Is(err, service.ErrUnknownSplit), ShouldBeTrue)
		})

		Convey("Then the count grid is complete", func() {
			grid, err := svc.CountGrid(ctx, sess.ID)
			So(err, ShouldBeNil)
			So(grid, ShouldHaveLength, 12)
		})

		Convey("Then the best ballpark is found", func() {
			row, ok, err := svc.BestSplit(ctx, sess.ID, "ballpark", "OPS")
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(row.Split, ShouldEqual, "NYY")
		})

		Convey("Then zones and discipline are computed", func() {
			cells, err := svc.Zones(ctx, sess.ID, true)
			So(err, ShouldBeNil)
			So(cells, ShouldHaveLength, 9)

			d, err := svc.Discipline(ctx, sess.ID)
			So(err, ShouldBeNil)
			So(d.Pitches, ShouldEqual, 4)
		})

		Convey("Then matchups resolve faced pitchers only", func() {
			pitchers, err := svc.Pitchers(ctx, sess.ID)
			So(err, ShouldBeNil)
			So(pitchers, ShouldHaveLength, 1)

			m, err := svc.Matchup(ctx, sess.ID, nolaID)
			So(err, ShouldBeNil)
			So(m.Line.PA, ShouldEqual, 4)

			_, err = svc.Matchup(ctx, sess.ID, 1)
			So(errors.Is(err, service.ErrPitcherNotFound), ShouldBeTrue)
		})

		Convey("Then trend and spray are derived", func() {
			tr, err := svc.Trend(ctx, sess.ID)
			So(err, ShouldBeNil)
			So(tr.Points, ShouldHaveLength, 4)
			So(tr.LastPA, ShouldEqual, "Apr 2nd")

			hits, err := svc.Spray(ctx, sess.ID)
			So(err, ShouldBeNil)
			So(hits, ShouldHaveLength, 2)
			So(hits[0].X, ShouldBeNil)
		})

		Convey("Then unknown sessions are reported", func() {
			_, err := svc.Line(ctx, uuid.New())
			So(errors.Is(err, service.ErrSessionNotFound), ShouldBeTrue)
		})

		Convey("Then search filters to the tracking era", func() {
			found, err := svc.SearchPlayers(ctx, "jose", 0)
			So(err, ShouldBeNil)
			So(found, ShouldHaveLength, 1)
			So(found[0].FullName, ShouldEqual, "José Ramírez")
		})

		Convey("Then stats report the session count", func() {
			So(svc.Stats(ctx)["sessions"], ShouldEqual, 1)
		})
	})
}
