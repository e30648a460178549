package cleaning_test

import (
	"context"
	"testing"

	"github.com/okian/suisen/internal/domain/cleaning"
	"github.com/okian/suisen/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func raw(user, item, rating string) model.RawRating {
	return model.RawRating{UserID: user, ItemID: item, Rating: rating}
}

func TestCleaner_Clean(t *testing.T) {
	Convey("Given a cleaner with default bounds", t, func() {
		cleaner := cleaning.New()
		ctx := context.Background()

		Convey("When cleaning well-formed rows", func() {
			rows := []model.RawRating{
				raw("1", "20", "8"),
				raw("2", "20", "6.5"),
				raw("1", "21", "9"),
			}
			ratings, report := cleaner.Clean(ctx, rows)

			Convey("Then every row survives with typed fields", func() {
				So(ratings, ShouldHaveLength, 3)
				So(ratings[0], ShouldResemble, model.Rating{UserID: 1, ItemID: 20, Value: 8})
				So(ratings[1].Value, ShouldEqual, 6.5)
				So(report.Input, ShouldEqual, 3)
				So(report.Kept, ShouldEqual, 3)
				So(report.DroppedTotal(), ShouldEqual, 0)
			})
		})

		Convey("When rows have missing or non-numeric fields", func() {
			rows := []model.RawRating{
				raw("", "20", "8"),       // missing user
				raw("1", "x", "8"),       // bad item
				raw("1", "20", ""),       // missing rating
				raw("1", "21", "great"),  // non-numeric rating
				raw("2", "20", "NaN"),    // not a usable number
				raw("2", "21", "7"),      // valid
			}
			ratings, report := cleaner.Clean(ctx, rows)

			Convey("Then only the valid row is kept and drops are classified", func() {
				So(ratings, ShouldHaveLength, 1)
				So(ratings[0], ShouldResemble, model.Rating{UserID: 2, ItemID: 21, Value: 7})
				So(report.Dropped[cleaning.DropBadUserID], ShouldEqual, 1)
				So(report.Dropped[cleaning.DropBadItemID], ShouldEqual, 1)
				So(report.Dropped[cleaning.DropBadRating], ShouldEqual, 3)
				So(report.Kept, ShouldEqual, 1)
			})
		})

		Convey("When identifiers arrive as integer-valued floats", func() {
			ratings, report := cleaner.Clean(ctx, []model.RawRating{raw("1.0", "20.0", "8")})

			Convey("Then they are coerced to integers", func() {
				So(report.Kept, ShouldEqual, 1)
				So(ratings[0].UserID, ShouldEqual, 1)
				So(ratings[0].ItemID, ShouldEqual, 20)
			})
		})

		Convey("When identifiers are fractional floats", func() {
			_, report := cleaner.Clean(ctx, []model.RawRating{raw("1.5", "20", "8")})

			Convey("Then the row is dropped", func() {
				So(report.Dropped[cleaning.DropBadUserID], ShouldEqual, 1)
			})
		})

		Convey("When ratings fall outside the bounds", func() {
			ratings, report := cleaner.Clean(ctx, []model.RawRating{
				raw("1", "20", "12"),
				raw("2", "20", "-3"),
			})

			Convey("Then values are clipped into range and counted", func() {
				So(ratings[0].Value, ShouldEqual, 10)
				So(ratings[1].Value, ShouldEqual, 0)
				So(report.Clipped, ShouldEqual, 2)
				So(report.Kept, ShouldEqual, 2)
			})
		})

		Convey("When the input table is empty", func() {
			ratings, report := cleaner.Clean(ctx, nil)

			Convey("Then the output is empty and nothing is reported dropped", func() {
				So(ratings, ShouldBeEmpty)
				So(report.Input, ShouldEqual, 0)
				So(report.Kept, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a cleaner with duplicate dropping enabled", t, func() {
		cleaner := cleaning.New(cleaning.WithDropDuplicates(true))

		Convey("When the same (user, item) pair appears twice", func() {
			ratings, report := cleaner.Clean(context.Background(), []model.RawRating{
				raw("1", "20", "8"),
				raw("1", "20", "3"),
				raw("2", "20", "6"),
			})

			Convey("Then the first occurrence wins", func() {
				So(ratings, ShouldHaveLength, 2)
				So(ratings[0].Value, ShouldEqual, 8)
				So(report.Dropped[cleaning.DropDuplicate], ShouldEqual, 1)
			})
		})
	})

	Convey("Given a cleaner with custom bounds", t, func() {
		cleaner := cleaning.New(cleaning.WithRatingBounds(0.5, 5))

		Convey("When a rating exceeds the custom maximum", func() {
			ratings, _ := cleaner.Clean(context.Background(), []model.RawRating{raw("1", "20", "9")})

			Convey("Then it is clipped to the custom bound", func() {
				So(ratings[0].Value, ShouldEqual, 5)
			})
		})
	})
}
