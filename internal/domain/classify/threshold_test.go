package classify_test

import (
	"testing"

	classify "github.com/etlab/etlab/internal/domain/classify"
	"github.com/etlab/etlab/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFindThreshold(t *testing.T) {
	Convey("Given a scored sequence crossing both cutoffs", t, func() {
		steps := scoredWith(
			[2]float64{0.84, 1.00},
			[2]float64{0.64, 0.99},
			[2]float64{0.48, 0.69},
			[2]float64{0.29, 0.55},
			[2]float64{0.00, 0.40},
		)

		Convey("When locating the metabolic threshold at 0.50", func() {
			step, ok := classify.FindThreshold(steps, model.LayerVO2, classify.DefaultMetabolicCutoff)

			Convey("Then the first crossing step is returned", func() {
				So(ok, ShouldBeTrue)
				So(step, ShouldEqual, 3)
			})
		})

		Convey("When locating the autonomic threshold at 0.70", func() {
			step, ok := classify.FindThreshold(steps, model.LayerHRV, classify.DefaultAutonomicCutoff)

			Convey("Then the first crossing step is returned", func() {
				So(ok, ShouldBeTrue)
				So(step, ShouldEqual, 3)
			})
		})

		Convey("When an ET value equals the cutoff exactly", func() {
			step, ok := classify.FindThreshold(steps, model.LayerHRV, 0.40)

			Convey("Then the inclusive comparison counts it as a crossing", func() {
				So(ok, ShouldBeTrue)
				So(step, ShouldEqual, 5)
			})
		})

		Convey("When the steps are supplied in a different order", func() {
			reversed := []model.ScoredStep{steps[4], steps[3], steps[2], steps[1], steps[0]}
			step, ok := classify.FindThreshold(reversed, model.LayerVO2, 0.50)

			Convey("Then the scan follows input order, not index order", func() {
				So(ok, ShouldBeTrue)
				So(step, ShouldEqual, 5)
			})
		})
	})

	Convey("Given a sub-threshold test", t, func() {
		steps := scoredWith(
			[2]float64{0.90, 0.98},
			[2]float64{0.80, 0.95},
			[2]float64{0.72, 0.91},
		)

		Convey("When locating the metabolic threshold at 0.50", func() {
			step, ok := classify.FindThreshold(steps, model.LayerVO2, 0.50)

			Convey("Then absence is reported, not an error", func() {
				So(ok, ShouldBeFalse)
				So(step, ShouldEqual, 0)
			})
		})
	})

	Convey("Given an unknown layer selector", t, func() {
		steps := scoredWith([2]float64{0.10, 0.10})

		Convey("When locating a threshold", func() {
			step, ok := classify.FindThreshold(steps, model.Layer("vo2max"), 0.50)

			Convey("Then no crossing is reported", func() {
				So(ok, ShouldBeFalse)
				So(step, ShouldEqual, 0)
			})
		})
	})
}
