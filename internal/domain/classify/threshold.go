package classify

import (
	"github.com/etlab/etlab/internal/domain/model"
)

// Default display cutoffs suggested to presentation layers. These mark
// threshold steps in rendered output and are distinct from the GREEN/YELLOW
// status thresholds used by Classify.
const (
	DefaultMetabolicCutoff = 0.50
	DefaultAutonomicCutoff = 0.70
)

// FindThreshold scans the scored sequence in the order given and returns the
// step index of the first step whose selected-layer ET is at or below the
// cutoff. The second return is false when no step crosses; that is a normal
// sub-threshold outcome, not an error.
//
// The scan assumes steps arrive in ascending intensity order; it neither
// re-sorts nor validates monotonicity. That is the caller's contract.
func FindThreshold(scored []model.ScoredStep, layer model.Layer, cutoff float64) (int, bool) {
	for _, s := range scored {
		var et float64
		switch layer {
		case model.LayerVO2:
			et = s.EVO2
		case model.LayerHRV:
			et = s.EHRV
		default:
			return 0, false
		}
		if et <= cutoff {
			return s.StepIndex, true
		}
	}
	return 0, false
}
