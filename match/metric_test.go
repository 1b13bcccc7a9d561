package match

import (
	"errors"
	"math"
	"testing"

	"github.com/hueseek/hueseek/rgba"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDistance(t *testing.T) {
	Convey("Distance", t, func() {
		colors := []rgba.Color{
			rgba.Opaque(0, 0, 0),
			rgba.Opaque(255, 255, 255),
			rgba.Opaque(220, 20, 60),
			rgba.Opaque(1, 1, 1),
			{R: 0, G: 128, B: 255, A: 0.3},
			{R: 255, G: 255, B: 0, A: 0},
		}

		Convey("Should be symmetric for every metric", func() {
			for _, metric := range Metrics() {
				for _, x := range colors {
					for _, y := range colors {
						So(Distance(x, y, metric), ShouldAlmostEqual, Distance(y, x, metric), 1e-9)
					}
				}
			}
		})

		Convey("Should be finite and non-negative for extreme inputs", func() {
			extremes := append(colors, rgba.Color{A: math.NaN()}, rgba.Color{R: 255, A: math.Inf(-1)})
			for _, metric := range Metrics() {
				for _, x := range extremes {
					for _, y := range extremes {
						d := Distance(x, y, metric)
						So(math.IsNaN(d), ShouldBeFalse)
						So(math.IsInf(d, 0), ShouldBeFalse)
						So(d, ShouldBeGreaterThanOrEqualTo, 0)
					}
				}
			}
		})

		Convey("Euclidean should grow strictly with the red difference", func() {
			entry := rgba.Color{R: 0, G: 50, B: 100, A: 0.5}
			previous := -1.0
			for r := 0; r <= 255; r++ {
				d := Distance(rgba.Color{R: uint8(r), G: 50, B: 100, A: 0.5}, entry, EuclideanRGBA)
				So(d, ShouldBeGreaterThan, previous)
				previous = d
			}
		})

		Convey("Euclidean should weigh alpha on the 0-255 scale", func() {
			So(Distance(rgba.Color{A: 1}, rgba.Color{A: 0}, EuclideanRGBA), ShouldEqual, 255)
		})

		Convey("Lab metrics should ignore alpha", func() {
			x := rgba.Color{R: 10, G: 20, B: 30, A: 1}
			y := rgba.Color{R: 10, G: 20, B: 30, A: 0}
			So(Distance(x, y, LabCIE76), ShouldEqual, 0)
			So(Distance(x, y, LabCIEDE2000), ShouldEqual, 0)
		})

		Convey("CIE76 between black and white should be about 100", func() {
			So(Distance(rgba.Opaque(0, 0, 0), rgba.Opaque(255, 255, 255), LabCIE76), ShouldAlmostEqual, 100, 0.1)
		})
	})
}

func TestParseMetric(t *testing.T) {
	Convey("ParseMetric", t, func() {
		So(lo.Must(ParseMetric("rgba")), ShouldEqual, EuclideanRGBA)
		So(lo.Must(ParseMetric("LAB")), ShouldEqual, LabCIE76)
		So(lo.Must(ParseMetric("cie76")), ShouldEqual, LabCIE76)
		So(lo.Must(ParseMetric(" ciede2000 ")), ShouldEqual, LabCIEDE2000)

		_, err := ParseMetric("cie94")
		So(errors.Is(err, ErrUnknownMetric), ShouldBeTrue)

		Convey("String round-trips", func() {
			for _, m := range Metrics() {
				So(lo.Must(ParseMetric(m.String())), ShouldEqual, m)
			}
			So(Metric(9).Valid(), ShouldBeFalse)
		})

		Convey("Text marshaling uses the canonical name", func() {
			text, err := LabCIEDE2000.MarshalText()
			So(err, ShouldBeNil)
			So(string(text), ShouldEqual, "ciede2000")

			var m Metric
			So(m.UnmarshalText([]byte("lab")), ShouldBeNil)
			So(m, ShouldEqual, LabCIE76)
		})
	})
}
