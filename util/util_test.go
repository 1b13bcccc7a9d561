package util

import (
	"regexp"
	"testing"

	"github.com/hueseek/hueseek/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "color", "colors"), ShouldEqual, "1 color")
		So(Quantify(2, "color", "colors"), ShouldEqual, "2 colors")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history"), ShouldEqual, "History")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`^(?P<name>[a-z]+)\((?P<args>.*)\)$`)

		Convey("Should map named groups on a match", func() {
			groups := ReGroups(re, "rgb(1,2,3)")
			So(groups["name"], ShouldEqual, "rgb")
			So(groups["args"], ShouldEqual, "1,2,3")
		})

		Convey("Should return an empty map without a match", func() {
			So(ReGroups(re, "crimson"), ShouldBeEmpty)
		})
	})
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		So(SanitizeFilename("My Colors"), ShouldEqual, "My_Colors")
		So(SanitizeFilename("  warm / cool?  "), ShouldEqual, "warm_cool")
		So(SanitizeFilename("..brand#1.."), ShouldEqual, "brand_1")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("catalogs/warm.yml"), ShouldEqual, "warm")
		So(FileStem("warm"), ShouldEqual, "warm")
	})
}

func TestMaxMinClamp(t *testing.T) {
	Convey("Max/Min/Clamp", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Clamp(1.5, 0.0, 1.0), ShouldEqual, 1.0)
		So(Clamp(-3, 0, 10), ShouldEqual, 0)
		So(Clamp(4, 0, 10), ShouldEqual, 4)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/tmp/hueseek/dir", 0o755))
		lo.Must0(fs.WriteFile("/tmp/hueseek/dir/a.json", []byte("{}"), 0o644))

		So(Delete("/tmp/hueseek/dir"), ShouldBeNil)
		So(lo.Must(fs.Exists("/tmp/hueseek/dir")), ShouldBeFalse)
		So(Delete("/tmp/hueseek/missing"), ShouldNotBeNil)
	})
}
