package where

import (
	"path/filepath"
	"testing"

	"github.com/hueseek/hueseek/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Catalogs() and Snapshots()", func() {
			So(lo.Must(filesystem.API().IsDir(Catalogs())), ShouldBeTrue)
			So(filepath.Dir(Snapshots()), ShouldEqual, Cache())
		})

		Convey("History() lives in the config directory", func() {
			So(filepath.Dir(History()), ShouldEqual, Config())
		})

		Convey("Config() honors the override variable", func() {
			custom := filepath.Join("tmp", "hueseek-custom")
			t.Setenv(EnvConfigPath, custom)
			So(Config(), ShouldEqual, custom)
			So(lo.Must(filesystem.API().IsDir(custom)), ShouldBeTrue)
		})
	})
}
