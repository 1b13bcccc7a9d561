package log

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hueseek/hueseek/filesystem"
	"github.com/hueseek/hueseek/key"
	"github.com/hueseek/hueseek/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging configuration", t, func() {
		Convey("When logs are disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)

			Convey("Then emissions are discarded without panicking", func() {
				So(func() { Infof("ignored %d", 1) }, ShouldNotPanic)
				So(func() { WithFields(Fields{"k": "v"}).Info("ignored") }, ShouldNotPanic)
			})
		})

		Convey("When logs are enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			viper.Set(key.LogsJson, false)
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			Info("catalog ready")

			Convey("Then the daily log file receives the message", func() {
				path := filepath.Join(where.Logs(), fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
				data := lo.Must(filesystem.API().ReadFile(path))
				So(strings.Contains(string(data), "catalog ready"), ShouldBeTrue)
			})

			Reset(func() {
				viper.Set(key.LogsWrite, false)
				_ = Setup()
			})
		})
	})
}
