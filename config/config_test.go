package config

import (
	"testing"

	"github.com/hueseek/hueseek/filesystem"
	"github.com/hueseek/hueseek/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name, field := range Default {
				So(viper.Get(name), ShouldResemble, field.Value)
			}
		})

		Convey("Should register every defined key", func() {
			So(Default, ShouldHaveLength, key.DefinedFieldsCount)
			So(EnvExposed, ShouldHaveLength, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("match.metric")
			So(result, ShouldEqual, "match_metric")
		})

		Convey("Environment variables should override defaults", func() {
			t.Setenv("HUESEEK_MATCH_LIMIT", "3")
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.MatchLimit), ShouldEqual, 3)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.MatchMetric]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "HUESEEK_MATCH_METRIC")
		})

		Convey("typeName should follow the default value", func() {
			So(field.typeName(), ShouldEqual, "string")
			limit := Default[key.MatchLimit]
			cache := Default[key.CatalogCache]
			So(limit.typeName(), ShouldEqual, "int")
			So(cache.typeName(), ShouldEqual, "bool")
		})

		Convey("MarshalJSON should include the default", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"default":"ciede2000"`)
		})
	})
}
