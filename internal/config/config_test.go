package config_test

import (
	"testing"
	"time"

	"github.com/okian/worddee/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8000")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.ScorerWebhook, convey.ShouldBeEmpty)
			convey.So(cfg.SummaryWebhook, convey.ShouldBeEmpty)
			convey.So(cfg.ScorerTimeout(), convey.ShouldEqual, 30*time.Second)
			convey.So(cfg.SummaryTimeout(), convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.Words, convey.ShouldBeEmpty)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
