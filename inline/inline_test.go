package inline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/hueseek/hueseek/catalog"
	"github.com/hueseek/hueseek/match"
	"github.com/hueseek/hueseek/rgba"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func testCatalog() *catalog.Catalog {
	return catalog.New("test", []catalog.Entry{
		{Name: "reds.crimson", Color: rgba.Opaque(220, 20, 60)},
		{Name: "blues.navy", Color: rgba.Opaque(0, 0, 128)},
		{Name: "reds.darkred", Color: rgba.Opaque(139, 0, 0)},
	})
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		var buf bytes.Buffer
		options := &Options{
			Out:    &buf,
			Sample: rgba.Opaque(225, 25, 55),
			Metric: match.EuclideanRGBA,
			Width:  200,
		}

		Convey("Should produce valid JSON", func() {
			options.Json = true
			options.Limit = 2

			ranked, err := Run(testCatalog(), options)
			So(err, ShouldBeNil)
			So(ranked, ShouldHaveLength, 3)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Catalog, ShouldEqual, "test")
			So(output.Metric, ShouldEqual, "rgba")
			So(output.Sample, ShouldResemble, rgba.Opaque(225, 25, 55))
			So(output.Result, ShouldHaveLength, 2)
			So(output.Result[0].Name, ShouldEqual, "reds.crimson")
			So(output.Result[0].Hex, ShouldEqual, "#dc143c")
			So(output.Result[0].Score, ShouldAlmostEqual, 8.660254, 1e-6)
		})

		Convey("Should produce an empty result for an empty catalog", func() {
			options.Json = true

			_, err := Run(catalog.New("empty", nil), options)
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 0)
			So(buf.String(), ShouldContainSubstring, `"result":[]`)
		})

		Convey("Should keep full-ranking positions after filtering", func() {
			options.Json = true
			options.Filter = mo.Some(lo.Must(ParseFilter("@navy@")))

			_, err := Run(testCatalog(), options)
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].Rank, ShouldEqual, 2)
		})

		Convey("Should write one text line per match", func() {
			_, err := Run(testCatalog(), options)
			So(err, ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 3)
			So(lines[0], ShouldStartWith, "reds.crimson")
			So(lines[0], ShouldContainSubstring, "rgba(220, 20, 60, 1)")
			So(lines[0], ShouldEndWith, "8.66")
		})

		Convey("Should align columns for non-ASCII names", func() {
			c := catalog.New("accents", []catalog.Entry{
				{Name: "brun.café", Color: rgba.Opaque(111, 78, 55)},
				{Name: "brun.cafe-au-lait", Color: rgba.Opaque(166, 123, 91)},
				{Name: "rouge.écarlate", Color: rgba.Opaque(255, 36, 0)},
			})

			_, err := Run(c, options)
			So(err, ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 3)

			column := func(line string) int {
				return lipgloss.Width(line[:strings.Index(line, "rgba(")])
			}
			So(column(lines[1]), ShouldEqual, column(lines[0]))
			So(column(lines[2]), ShouldEqual, column(lines[0]))
		})

		Convey("Should truncate text lines to the width", func() {
			options.Width = 10

			_, err := Run(testCatalog(), options)
			So(err, ShouldBeNil)

			for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
				So(len([]rune(line)), ShouldBeLessThanOrEqualTo, 10)
			}
		})

		Convey("Should reject an invalid sample", func() {
			options.Sample = rgba.Color{A: 2}

			_, err := Run(testCatalog(), options)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseFilter(t *testing.T) {
	Convey("ParseFilter", t, func() {
		ranked := lo.Must(match.RankCatalog(rgba.Opaque(0, 0, 0), testCatalog(), match.EuclideanRGBA))
		apply := func(description string) []string {
			filter := lo.Must(ParseFilter(description))
			return lo.Map(lo.Must(filter(ranked)), func(r match.Ranked, _ int) string {
				return r.Entry.Name
			})
		}

		So(apply("first"), ShouldResemble, []string{"blues.navy"})
		So(apply("last"), ShouldResemble, []string{"reds.crimson"})
		So(apply("all"), ShouldHaveLength, 3)
		So(apply("1"), ShouldResemble, []string{"reds.darkred"})
		So(apply("9"), ShouldBeEmpty)
		So(apply("1-5"), ShouldResemble, []string{"reds.darkred", "reds.crimson"})
		So(apply("@RED@"), ShouldResemble, []string{"reds.darkred", "reds.crimson"})

		_, err := ParseFilter("sideways")
		So(err, ShouldNotBeNil)
	})
}

func TestSchema(t *testing.T) {
	Convey("Schema", t, func() {
		data, err := json.Marshal(Schema())
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, `"result"`)
		So(string(data), ShouldContainSubstring, `"ciede2000"`)
	})
}
