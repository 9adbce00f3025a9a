package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/batterlab/internal/domain/splits"
	"github.com/okian/batterlab/internal/report"
	"github.com/okian/batterlab/pkg/logger"
)

const (
	sample = "../adapters/statcast/testdata/sample.csv"
	nolaID = 605400
)

func init() {
	if err := logger.Init(logger.WithLevel("error")); err != nil {
		panic(err)
	}
}

func TestConfigValidate(t *testing.T) {
	convey.Convey("Given report configs", t, func() {
		convey.Convey("A complete config is valid", func() {
			cfg := &report.Config{CSVPath: sample, Format: report.FormatText}
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Every problem is reported", func() {
			cfg := &report.Config{Format: "xml", Split: "weather", PitcherID: -1}
			err := cfg.Validate()
			convey.So(errors.Is(err, report.ErrMissingCSV), convey.ShouldBeTrue)
			convey.So(errors.Is(err, report.ErrUnknownFormat), convey.ShouldBeTrue)
			convey.So(errors.Is(err, splits.ErrUnknownKind), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "pitcher id")
		})
	})
}

func TestRun(t *testing.T) {
	convey.Convey("Given the sample export", t, func() {
		ctx := context.Background()
		var out bytes.Buffer

		convey.Convey("When rendering JSON", func() {
			err := report.Run(ctx, &report.Config{CSVPath: sample, Format: report.FormatJSON, PitcherID: nolaID, Out: &out})
			convey.So(err, convey.ShouldBeNil)

			var r report.Report
			convey.So(json.Unmarshal(out.Bytes(), &r), convey.ShouldBeNil)

			convey.Convey("Then the overall line matches the plate appearances", func() {
				convey.So(r.Pitches, convey.ShouldEqual, 11)
				convey.So(r.Line.PA, convey.ShouldEqual, 4)
				convey.So(r.Line.AB, convey.ShouldEqual, 3)
				convey.So(r.Line.H, convey.ShouldEqual, 2)
				convey.So(r.Line.HR, convey.ShouldEqual, 1)
			})

			convey.Convey("Then every non-empty split is included", func() {
				convey.So(r.Splits, convey.ShouldNotBeEmpty)
				kinds := make([]splits.Kind, 0, len(r.Splits))
				for _, st := range r.Splits {
					kinds = append(kinds, st.Kind)
				}
				convey.So(kinds, convey.ShouldContain, splits.KindPlatoon)
				convey.So(kinds, convey.ShouldContain, splits.KindMonth)
			})

			convey.Convey("Then the zone grid is complete", func() {
				convey.So(len(r.Zones), convey.ShouldEqual, 9)
			})

			convey.Convey("Then the matchup is attached", func() {
				convey.So(r.Matchup, convey.ShouldNotBeNil)
				convey.So(r.Matchup.Pitcher.ID, convey.ShouldEqual, int64(nolaID))
				convey.So(len(r.Pitchers), convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When limiting to one split", func() {
			err := report.Run(ctx, &report.Config{CSVPath: sample, Format: report.FormatJSON, Split: "platoon", Out: &out})
			convey.So(err, convey.ShouldBeNil)

			var r report.Report
			convey.So(json.Unmarshal(out.Bytes(), &r), convey.ShouldBeNil)
			convey.So(len(r.Splits), convey.ShouldEqual, 1)
			convey.So(r.Splits[0].Kind, convey.ShouldEqual, splits.KindPlatoon)
			convey.So(r.Splits[0].Labels(), convey.ShouldContain, splits.VsLeft)
			convey.So(r.Splits[0].Labels(), convey.ShouldContain, splits.VsRight)
			convey.So(r.Matchup, convey.ShouldBeNil)
		})

		convey.Convey("When rendering text", func() {
			err := report.Run(ctx, &report.Config{CSVPath: sample, Format: report.FormatText, Out: &out})
			convey.So(err, convey.ShouldBeNil)

			text := out.String()
			convey.So(text, convey.ShouldContainSubstring, "pitches: 11")
			convey.So(text, convey.ShouldContainSubstring, "Overall")
			convey.So(text, convey.ShouldContainSubstring, "platoon")
			convey.So(text, convey.ShouldContainSubstring, "discipline")
			convey.So(text, convey.ShouldContainSubstring, "vs LHP")
		})

		convey.Convey("When the pitcher was never faced", func() {
			err := report.Run(ctx, &report.Config{CSVPath: sample, Format: report.FormatText, PitcherID: 1, Out: &out})
			convey.So(errors.Is(err, report.ErrPitcherNotFound), convey.ShouldBeTrue)
		})

		convey.Convey("When the file does not exist", func() {
			err := report.Run(ctx, &report.Config{CSVPath: "missing.csv", Format: report.FormatText, Out: &out})
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestRenderUnknownFormat(t *testing.T) {
	convey.Convey("Rendering an unknown format fails", t, func() {
		err := report.Render(&bytes.Buffer{}, report.Report{}, "xml")
		convey.So(errors.Is(err, report.ErrUnknownFormat), convey.ShouldBeTrue)
	})
}
