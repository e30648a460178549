package dataprep_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/suisen/internal/dataprep"
	. "github.com/smartystreets/goconvey/convey"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFindRatingsCSV(t *testing.T) {
	Convey("Given a raw directory with several CSV files", t, func() {
		dir := t.TempDir()
		writeCSV(t, dir, "anime.csv", "anime_id,name,genre\n20,Naruto,action\n")
		ratings := writeCSV(t, dir, "rating.csv", "user_id,anime_id,rating\n1,20,8\n2,20,6\n3,21,9\n")
		ctx := context.Background()

		Convey("When discovering the ratings candidate", func() {
			cand, err := dataprep.FindRatingsCSV(ctx, dir)

			Convey("Then the file mapping all three columns wins", func() {
				So(err, ShouldBeNil)
				So(cand.Path, ShouldEqual, ratings)
				So(cand.Score, ShouldEqual, 3)
				So(cand.Mapping[dataprep.ColUser], ShouldEqual, "user_id")
				So(cand.Mapping[dataprep.ColItem], ShouldEqual, "anime_id")
				So(cand.Mapping[dataprep.ColRating], ShouldEqual, "rating")
			})
		})

		Convey("And two full matches of different sizes", func() {
			big := writeCSV(t, dir, "nested/full_dump.csv",
				"userid,item_id,score\n1,20,8\n2,20,6\n3,21,9\n4,21,7\n5,22,5\n6,22,4\n")

			Convey("When discovering the ratings candidate", func() {
				cand, err := dataprep.FindRatingsCSV(ctx, dir)

				Convey("Then the larger file wins the tie and aliases are honored", func() {
					So(err, ShouldBeNil)
					So(cand.Path, ShouldEqual, big)
					So(cand.Mapping[dataprep.ColUser], ShouldEqual, "userid")
					So(cand.Mapping[dataprep.ColRating], ShouldEqual, "score")
				})
			})
		})
	})

	Convey("Given a directory with no CSV files", t, func() {
		Convey("When discovering", func() {
			_, err := dataprep.FindRatingsCSV(context.Background(), t.TempDir())

			Convey("Then ErrNoCandidates is returned", func() {
				So(err, ShouldWrap, dataprep.ErrNoCandidates)
			})
		})
	})

	Convey("Given only partial matches", t, func() {
		dir := t.TempDir()
		writeCSV(t, dir, "items.csv", "anime_id,title\n20,Naruto\n")

		Convey("When discovering", func() {
			_, err := dataprep.FindRatingsCSV(context.Background(), dir)

			Convey("Then the missing-columns error is returned", func() {
				So(err, ShouldWrap, dataprep.ErrMissingColumns)
			})
		})
	})
}

func TestInspect(t *testing.T) {
	Convey("Given an explicit ratings file", t, func() {
		dir := t.TempDir()

		Convey("When it has the required columns under aliases", func() {
			path := writeCSV(t, dir, "r.csv", "Profile,MAL_ID,Score\n1,20,8\n")
			// header matching is case-insensitive
			cand, err := dataprep.Inspect(path)

			Convey("Then the mapping resolves", func() {
				So(err, ShouldBeNil)
				So(cand.Mapping[dataprep.ColUser], ShouldEqual, "profile")
				So(cand.Mapping[dataprep.ColItem], ShouldEqual, "mal_id")
				So(cand.Mapping[dataprep.ColRating], ShouldEqual, "score")
			})
		})

		Convey("When required columns are absent", func() {
			path := writeCSV(t, dir, "bad.csv", "a,b,c\n1,2,3\n")
			_, err := dataprep.Inspect(path)

			Convey("Then the missing-columns error is returned", func() {
				So(err, ShouldWrap, dataprep.ErrMissingColumns)
			})
		})
	})
}
