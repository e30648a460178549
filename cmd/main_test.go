package main

import (
	"bytes"
	"context"
	"testing"

	app "github.com/okian/suisen/internal/app"
	"github.com/okian/suisen/internal/config"
	"github.com/okian/suisen/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfiguration(t *testing.T) {
	convey.Convey("Given environment overrides", t, func() {
		t.Setenv("SUISEN_CONFIG", "")
		t.Setenv("SUISEN_TOP_N", "8")
		t.Setenv("SUISEN_DATASET_PATH", "data/ratings.csv")

		convey.Convey("Then configuration should be loadable", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.TopN, convey.ShouldEqual, 8)
			convey.So(cfg.DatasetPath, convey.ShouldEqual, "data/ratings.csv")
		})
	})

	convey.Convey("Given service construction", t, func() {
		convey.Convey("Then a service should be creatable with default options", func() {
			convey.So(app.New(), convey.ShouldNotBeNil)
		})

		convey.Convey("And with custom options", func() {
			svc := app.New(
				app.WithTopN(3),
				app.WithMinSupport(2),
				app.WithRatingBounds(0.5, 5),
			)
			convey.So(svc, convey.ShouldNotBeNil)
		})
	})
}

func TestRender(t *testing.T) {
	result := &app.Result{
		RunID: "run-1",
		Recommendations: []model.Recommendation{
			{Rank: 1, ItemID: 20, MeanRating: 4.0, Ratings: 2},
			{Rank: 2, ItemID: 21, MeanRating: 4.0, Ratings: 1},
		},
	}

	convey.Convey("Given a recommendation result", t, func() {
		convey.Convey("When rendering as text", func() {
			var buf bytes.Buffer
			err := render(&buf, "text", result)

			convey.Convey("Then the table lists every item with its mean", func() {
				convey.So(err, convey.ShouldBeNil)
				out := buf.String()
				convey.So(out, convey.ShouldContainSubstring, "Top-N baseline (by mean rating):")
				convey.So(out, convey.ShouldContainSubstring, "20")
				convey.So(out, convey.ShouldContainSubstring, "4.00")
				convey.So(out, convey.ShouldContainSubstring, "21")
			})
		})

		convey.Convey("When rendering as json", func() {
			var buf bytes.Buffer
			err := render(&buf, "json", result)

			convey.Convey("Then the envelope carries the run id and entries", func() {
				convey.So(err, convey.ShouldBeNil)
				out := buf.String()
				convey.So(out, convey.ShouldContainSubstring, `"run_id": "run-1"`)
				convey.So(out, convey.ShouldContainSubstring, `"item_id": 20`)
				convey.So(out, convey.ShouldContainSubstring, `"mean_rating": 4`)
			})
		})

		convey.Convey("When rendering an empty list as text", func() {
			var buf bytes.Buffer
			err := render(&buf, "text", &app.Result{RunID: "run-2"})

			convey.Convey("Then a notice is printed instead of a table", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(buf.String(), convey.ShouldContainSubstring, "No items to recommend")
			})
		})
	})
}
