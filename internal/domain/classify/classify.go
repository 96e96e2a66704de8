// Package classify derives the overall test classification and locates
// threshold-crossing steps in a scored sequence.
package classify

import (
	"fmt"
	"math"

	"github.com/etlab/etlab/internal/domain/model"
)

// Status thresholds and the limiter dead-band. Lower bounds are inclusive.
const (
	// GreenMin is the minimum overall ET for GREEN status.
	GreenMin = 0.70
	// YellowMin is the minimum overall ET for YELLOW status; below is RED.
	YellowMin = 0.40
	// LimiterDeadBand keeps near-equal layer minima from reading as an
	// asymmetry; differences within the band resolve to balanced.
	LimiterDeadBand = 0.05
)

// Classify computes the TestClassification for a non-empty scored sequence.
// Overall status follows the single worst point of the whole test (a
// weakest-link policy, not an average): threshold crossing is a localized
// event, so one bad step governs. The result depends only on the layer
// minima, never on which step attains them.
func Classify(scored []model.ScoredStep) (model.TestClassification, error) {
	if len(scored) == 0 {
		return model.TestClassification{}, fmt.Errorf("classify: %w", ErrNoScoredSteps)
	}

	minVO2 := math.Inf(1)
	minHRV := math.Inf(1)
	for _, s := range scored {
		minVO2 = math.Min(minVO2, s.EVO2)
		minHRV = math.Min(minHRV, s.EHRV)
	}
	overall := math.Min(minVO2, minHRV)

	return model.TestClassification{
		MinEVO2:     minVO2,
		MinEHRV:     minHRV,
		MinEOverall: overall,
		Status:      statusFor(overall),
		Limiter:     limiterFor(minVO2, minHRV),
	}, nil
}

func statusFor(overall float64) model.Status {
	switch {
	case overall >= GreenMin:
		return model.StatusGreen
	case overall >= YellowMin:
		return model.StatusYellow
	default:
		return model.StatusRed
	}
}

// limiterFor names the layer whose minimum is markedly lower. Ties within
// the dead-band always resolve to balanced.
func limiterFor(minVO2, minHRV float64) model.Limiter {
	switch {
	case minHRV < minVO2-LimiterDeadBand:
		return model.LimiterAutonomic
	case minVO2 < minHRV-LimiterDeadBand:
		return model.LimiterMetabolic
	default:
		return model.LimiterBalanced
	}
}
