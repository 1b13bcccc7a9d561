package history

import (
	"testing"

	"github.com/hueseek/hueseek/catalog"
	"github.com/hueseek/hueseek/filesystem"
	"github.com/hueseek/hueseek/match"
	"github.com/hueseek/hueseek/rgba"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a matched sample", t, func() {
		So(Clear(), ShouldBeNil)

		sample := rgba.Opaque(225, 25, 55)
		best := match.Ranked{
			Entry: catalog.Entry{Name: "reds.crimson", Color: rgba.Opaque(220, 20, 60)},
			Score: 8.66,
		}

		Convey("When saving it", func() {
			err := Save(sample, match.EuclideanRGBA, best)
			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the sample should be saved", func() {
					samples, err := Get()
					So(err, ShouldBeNil)
					So(samples, ShouldHaveLength, 1)

					saved := samples["#e11937|rgba"]
					So(saved, ShouldNotBeNil)
					So(saved.Best, ShouldEqual, "reds.crimson")
					So(saved.Sample, ShouldEqual, "rgba(225, 25, 55, 1)")
					So(saved.Count, ShouldEqual, 1)
				})

				Convey("And saving it again should bump the count", func() {
					So(Save(sample, match.EuclideanRGBA, best), ShouldBeNil)

					samples, err := Get()
					So(err, ShouldBeNil)
					So(samples["#e11937|rgba"].Count, ShouldEqual, 2)
				})

				Convey("And another metric should be a separate record", func() {
					So(Save(sample, match.LabCIE76, best), ShouldBeNil)

					recent, err := Recent()
					So(err, ShouldBeNil)
					So(recent, ShouldHaveLength, 2)
					So(recent[0].Metric, ShouldEqual, "cie76")
				})

				Convey("And removing it should forget it", func() {
					samples, err := Get()
					So(err, ShouldBeNil)
					So(Remove(samples["#e11937|rgba"]), ShouldBeNil)

					samples, err = Get()
					So(err, ShouldBeNil)
					So(samples, ShouldBeEmpty)
				})
			})
		})
	})
}
