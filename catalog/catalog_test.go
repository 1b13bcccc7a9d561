package catalog

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/hueseek/hueseek/filesystem"
	"github.com/hueseek/hueseek/rgba"
	"github.com/hueseek/hueseek/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCatalog(t *testing.T) {
	Convey("Given a catalog", t, func() {
		c := New("test", []Entry{
			{Name: "reds.Crimson", Color: rgba.Opaque(220, 20, 60)},
			{Name: "blues.navy", Color: rgba.Opaque(0, 0, 128)},
		})

		Convey("Get should match exact names only", func() {
			So(c.Get("blues.navy").MustGet().Color, ShouldResemble, rgba.Opaque(0, 0, 128))
			So(c.Get("reds.crimson").IsAbsent(), ShouldBeTrue)
		})

		Convey("Find should fall back to case folding", func() {
			So(c.Find("REDS.CRIMSON").MustGet().Name, ShouldEqual, "reds.Crimson")
			So(c.Find("greens.lime").IsAbsent(), ShouldBeTrue)
		})

		Convey("Entries should return a copy", func() {
			entries := c.Entries()
			entries[0].Name = "changed"
			So(c.Entries()[0].Name, ShouldEqual, "reds.Crimson")
		})

		Convey("Names and Len should follow document order", func() {
			So(c.Names(), ShouldResemble, []string{"reds.Crimson", "blues.navy"})
			So(c.Len(), ShouldEqual, 2)
			So(c.Source(), ShouldEqual, "test")
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		lo.Must0(filesystem.API().MkdirAll("/catalogs", 0o755))

		Convey("Should load the built-in catalog for an empty path", func() {
			c, err := Load("")
			So(err, ShouldBeNil)
			So(c.Source(), ShouldEqual, DefaultSource)
			So(c.Get("reds.crimson").MustGet().Color, ShouldResemble, rgba.Opaque(220, 20, 60))
			So(c.Get("blues.navy").MustGet().Color, ShouldResemble, rgba.Opaque(0, 0, 128))
		})

		Convey("Should pick the decoder by extension", func() {
			lo.Must0(filesystem.API().WriteFile("/catalogs/warm.yaml", []byte("warm:\n  red: \"#f00\"\n"), 0o644))
			lo.Must0(filesystem.API().WriteFile("/catalogs/cool.json", []byte(`{"cool": {"blue": "#00f"}}`), 0o644))
			lo.Must0(filesystem.API().WriteFile("/catalogs/gray.LUA", []byte(`return { gray = "gray" }`), 0o644))

			So(lo.Must(Load("/catalogs/warm.yaml")).Names(), ShouldResemble, []string{"warm.red"})
			So(lo.Must(Load("/catalogs/cool.json")).Names(), ShouldResemble, []string{"cool.blue"})
			So(lo.Must(Load("/catalogs/gray.LUA")).Names(), ShouldResemble, []string{"gray"})
		})

		Convey("Should look bare names up in the catalogs directory", func() {
			lo.Must0(filesystem.API().WriteFile(filepath.Join(where.Catalogs(), "mine.yml"), []byte("mine: teal\n"), 0o644))

			c, err := Load("mine.yml")
			So(err, ShouldBeNil)
			So(c.Names(), ShouldResemble, []string{"mine"})
		})

		Convey("Should reject unknown extensions", func() {
			lo.Must0(filesystem.API().WriteFile("/catalogs/colors.toml", []byte("a = 'red'"), 0o644))

			_, err := Load("/catalogs/colors.toml")
			So(errors.Is(err, ErrUnsupportedFormat), ShouldBeTrue)
		})

		Convey("Should fail on a missing file", func() {
			_, err := Load("/catalogs/missing.yml")
			So(errors.Is(err, fs.ErrNotExist), ShouldBeTrue)
		})

		Convey("Should fail on an invalid catalog", func() {
			lo.Must0(filesystem.API().WriteFile("/catalogs/broken.yml", []byte("a: nope\n"), 0o644))

			_, err := Load("/catalogs/broken.yml")
			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
		})

		Convey("Should honor the duplicate policy", func() {
			lo.Must0(filesystem.API().WriteFile("/catalogs/dup.yml", []byte("a:\n  b: red\na.b: blue\n"), 0o644))

			_, err := Load("/catalogs/dup.yml")
			var dupErr *DuplicateNameError
			So(errors.As(err, &dupErr), ShouldBeTrue)

			c, err := Load("/catalogs/dup.yml", WithDuplicates(LastWins))
			So(err, ShouldBeNil)
			So(c.Get("a.b").MustGet().Color, ShouldResemble, rgba.Opaque(0, 0, 255))
		})

		Convey("Should reuse snapshots when caching is on", func() {
			first, err := Load("", WithCache(true))
			So(err, ShouldBeNil)

			snapshots := lo.Must(filesystem.API().ReadDir(where.Snapshots()))
			So(snapshots, ShouldNotBeEmpty)

			second, err := Load("", WithCache(true))
			So(err, ShouldBeNil)
			So(second.Entries(), ShouldResemble, first.Entries())
		})
	})
}
