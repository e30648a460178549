package dedupe_test

import (
	"context"
	"testing"

	"github.com/okian/suisen/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given an unbounded deduper", t, func() {
		d := dedupe.NewInMemoryDeduper()
		ctx := context.Background()

		Convey("When recording a new key", func() {
			seen := d.SeenAndRecord(ctx, "1:20")

			Convey("Then it is reported as unseen and tracked", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})

			Convey("And recording it again reports it as seen", func() {
				So(d.SeenAndRecord(ctx, "1:20"), ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When recording distinct keys", func() {
			So(d.SeenAndRecord(ctx, "1:20"), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, "1:21"), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, "2:20"), ShouldBeFalse)

			Convey("Then each is tracked separately", func() {
				So(d.Size(), ShouldEqual, 3)
			})
		})
	})

	Convey("Given a bounded deduper at capacity", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(2))
		ctx := context.Background()
		So(d.SeenAndRecord(ctx, "a"), ShouldBeFalse)
		So(d.SeenAndRecord(ctx, "b"), ShouldBeFalse)

		Convey("When recording a new key past the cap", func() {
			seen := d.SeenAndRecord(ctx, "c")

			Convey("Then it is treated as unseen but not tracked", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 2)
			})
		})

		Convey("When re-recording a tracked key", func() {
			Convey("Then it is still reported as seen", func() {
				So(d.SeenAndRecord(ctx, "a"), ShouldBeTrue)
			})
		})
	})
}
