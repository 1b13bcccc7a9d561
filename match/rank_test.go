package match

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/hueseek/hueseek/catalog"
	"github.com/hueseek/hueseek/rgba"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

var sampleCatalog = []catalog.Entry{
	{Name: "reds.crimson", Color: rgba.Opaque(220, 20, 60)},
	{Name: "blues.navy", Color: rgba.Opaque(0, 0, 128)},
	{Name: "greens.lime", Color: rgba.Opaque(0, 255, 0)},
	{Name: "glass.blue", Color: rgba.Color{B: 255, A: 0.25}},
	{Name: "neutrals.white", Color: rgba.Opaque(255, 255, 255)},
	{Name: "neutrals.black", Color: rgba.Opaque(0, 0, 0)},
}

func TestRank(t *testing.T) {
	Convey("Rank", t, func() {
		Convey("Given the crimson and navy catalog", func() {
			entries := []catalog.Entry{
				{Name: "reds.crimson", Color: rgba.Opaque(220, 20, 60)},
				{Name: "blues.navy", Color: rgba.Opaque(0, 0, 128)},
			}

			ranked, err := Rank(Sample{R: 225, G: 25, B: 55, A: 1}, entries, EuclideanRGBA)
			So(err, ShouldBeNil)
			So(ranked, ShouldHaveLength, 2)
			So(ranked[0].Entry.Name, ShouldEqual, "reds.crimson")
			So(ranked[0].Score, ShouldAlmostEqual, math.Sqrt(75), 1e-9)
			So(ranked[1].Entry.Name, ShouldEqual, "blues.navy")
			So(ranked[1].Score, ShouldBeGreaterThan, 100)
		})

		Convey("A sample equal to an entry should rank it first at score 0", func() {
			for _, metric := range Metrics() {
				for _, entry := range sampleCatalog {
					ranked, err := Rank(entry.Color, sampleCatalog, metric)
					So(err, ShouldBeNil)
					So(ranked[0].Entry, ShouldResemble, entry)
					So(ranked[0].Score, ShouldEqual, 0)
				}
			}
		})

		Convey("Equal scores should keep catalog order", func() {
			entries := []catalog.Entry{
				{Name: "first", Color: rgba.Opaque(10, 20, 30)},
				{Name: "other", Color: rgba.Opaque(200, 200, 200)},
				{Name: "second", Color: rgba.Opaque(10, 20, 30)},
			}

			for _, metric := range Metrics() {
				ranked, err := Rank(rgba.Opaque(10, 20, 30), entries, metric)
				So(err, ShouldBeNil)
				So(ranked[0].Entry.Name, ShouldEqual, "first")
				So(ranked[1].Entry.Name, ShouldEqual, "second")
				So(ranked[0].Score, ShouldEqual, 0)
				So(ranked[1].Score, ShouldEqual, 0)
			}
		})

		Convey("Every entry should be returned exactly once", func() {
			for _, metric := range Metrics() {
				ranked, err := Rank(rgba.Opaque(90, 120, 30), sampleCatalog, metric)
				So(err, ShouldBeNil)
				So(ranked, ShouldHaveLength, len(sampleCatalog))

				names := lo.Map(ranked, func(r Ranked, _ int) string { return r.Entry.Name })
				So(lo.Uniq(names), ShouldHaveLength, len(sampleCatalog))

				for i := 1; i < len(ranked); i++ {
					So(ranked[i-1].Score, ShouldBeLessThanOrEqualTo, ranked[i].Score)
				}
			}
		})

		Convey("An empty catalog should yield an empty result", func() {
			ranked, err := Rank(rgba.Opaque(1, 2, 3), nil, LabCIEDE2000)
			So(err, ShouldBeNil)
			So(ranked, ShouldNotBeNil)
			So(ranked, ShouldBeEmpty)
		})

		Convey("Should not modify the catalog", func() {
			entries := append([]catalog.Entry(nil), sampleCatalog...)
			_, err := Rank(rgba.Opaque(255, 255, 255), entries, EuclideanRGBA)
			So(err, ShouldBeNil)
			So(entries, ShouldResemble, sampleCatalog)
		})

		Convey("Should reject invalid samples", func() {
			for _, a := range []float64{math.NaN(), -0.1, 1.01, math.Inf(1)} {
				_, err := Rank(Sample{A: a}, sampleCatalog, EuclideanRGBA)

				var sampleErr *InvalidSampleError
				So(errors.As(err, &sampleErr), ShouldBeTrue)
			}
		})

		Convey("Should reject unknown metrics", func() {
			_, err := Rank(rgba.Opaque(0, 0, 0), sampleCatalog, Metric(42))
			So(errors.Is(err, ErrUnknownMetric), ShouldBeTrue)
		})

		Convey("Should be safe for concurrent callers", func() {
			c := catalog.New("test", sampleCatalog)
			want := lo.Must(RankCatalog(rgba.Opaque(40, 40, 200), c, LabCIE76))

			var wg sync.WaitGroup
			results := make([][]Ranked, 16)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					results[i] = lo.Must(RankCatalog(rgba.Opaque(40, 40, 200), c, LabCIE76))
				}(i)
			}
			wg.Wait()

			for _, got := range results {
				So(got, ShouldResemble, want)
			}
		})
	})
}

func TestTop(t *testing.T) {
	Convey("Top", t, func() {
		ranked := lo.Must(Rank(rgba.Opaque(0, 0, 0), sampleCatalog, EuclideanRGBA))

		So(Top(ranked, 2), ShouldHaveLength, 2)
		So(Top(ranked, 0), ShouldHaveLength, len(sampleCatalog))
		So(Top(ranked, -1), ShouldHaveLength, len(sampleCatalog))
		So(Top(ranked, 100), ShouldHaveLength, len(sampleCatalog))
		So(Top(ranked, 1)[0].Entry.Name, ShouldEqual, "neutrals.black")
	})
}
