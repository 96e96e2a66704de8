package logger_test

import (
	"context"
	"testing"

	"github.com/etlab/etlab/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When fetching the global logger", func() {
			log := logger.Get()

			Convey("Then it logs without panicking", func() {
				So(func() {
					log.Info(context.Background(), "message",
						logger.String("key", "value"),
						logger.Int("n", 1),
						logger.Float64("f", 0.5),
						logger.Bool("b", true),
					)
				}, ShouldNotPanic)
			})

			Convey("Then named sub-loggers work", func() {
				So(func() {
					logger.Named("sub").Debug(context.Background(), "scoped message")
				}, ShouldNotPanic)
			})
		})

		Convey("When setting levels by string", func() {
			Convey("Then known levels are accepted", func() {
				for _, lvl := range []string{"debug", "info", "warn", "warning", "error", ""} {
					So(logger.SetLevelString(lvl), ShouldBeNil)
				}
			})

			Convey("Then unknown levels are rejected", func() {
				So(logger.SetLevelString("verbose"), ShouldNotBeNil)
			})
		})
	})
}
