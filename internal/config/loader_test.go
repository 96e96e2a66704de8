package config_test

import (
	"context"
	"testing"

	"github.com/etlab/etlab/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	t.Setenv("ETLAB_CONFIG", "")

	Convey("Given no file or environment overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then defaults are returned", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.BaselineMode, ShouldEqual, "relative")
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ETLAB_CONFIG", "")
	t.Setenv("ETLAB_ADDR", ":7070")
	t.Setenv("ETLAB_BASELINE_MODE", "absolute")
	t.Setenv("ETLAB_VO2MAX", "55")
	t.Setenv("ETLAB_HRV_REST", "90")
	t.Setenv("ETLAB_LOG_LEVEL", "debug")

	Convey("Given environment overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then env values take precedence over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.BaselineMode, ShouldEqual, "absolute")
			So(cfg.VO2Max, ShouldEqual, 55.0)
			So(cfg.HRVRest, ShouldEqual, 90.0)
			So(cfg.LogLevel, ShouldEqual, "debug")
		})
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given an unknown baseline mode", t, func() {
		t.Setenv("ETLAB_CONFIG", "")
		t.Setenv("ETLAB_BASELINE_MODE", "adaptive")

		_, err := config.Load(context.Background())

		Convey("Then loading fails with ErrInvalidConfig", func() {
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})
}

func TestLoadValidationAbsoluteRefs(t *testing.T) {
	Convey("Given absolute mode with a non-positive reference", t, func() {
		t.Setenv("ETLAB_CONFIG", "")
		t.Setenv("ETLAB_BASELINE_MODE", "absolute")
		t.Setenv("ETLAB_VO2MAX", "0")

		_, err := config.Load(context.Background())

		Convey("Then loading fails with ErrInvalidConfig", func() {
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})
}
