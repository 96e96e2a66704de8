// Package scoring computes per-step ET values from raw VO2/HRV measurements.
//
// ET (Exertion Time) is a dimensionless reserve score: 1 means no stress,
// 0 means the reference boundary is reached, negative means the step went
// beyond the reference (possible on the VO2 layer only).
package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/etlab/etlab/internal/domain/model"
)

// BaselineMode selects how raw measurements are normalized.
type BaselineMode string

const (
	// BaselineRelative normalizes against the maxima observed in the test
	// itself: max VO2 stands in for VO2max, max HRV stands in for rest.
	BaselineRelative BaselineMode = "relative"
	// BaselineAbsolute normalizes against user-supplied VO2max and
	// resting-HRV reference values.
	BaselineAbsolute BaselineMode = "absolute"
)

// Baseline holds the reference values used for normalization.
// In absolute mode both references must be strictly positive.
type Baseline struct {
	VO2Reference float64 // VO2max, ml/kg/min
	HRVReference float64 // resting HRV, ms
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithAbsoluteBaseline switches the scorer to absolute mode with the given
// VO2max and resting-HRV references.
func WithAbsoluteBaseline(vo2max, hrvRest float64) Option {
	return func(s *Scorer) {
		s.mode = BaselineAbsolute
		s.baseline = Baseline{VO2Reference: vo2max, HRVReference: hrvRest}
	}
}

// WithMode sets the baseline mode explicitly. Absolute mode still needs
// references via WithBaseline or WithAbsoluteBaseline.
func WithMode(mode BaselineMode) Option {
	return func(s *Scorer) {
		s.mode = mode
	}
}

// WithBaseline sets the reference values without changing the mode.
func WithBaseline(b Baseline) Option {
	return func(s *Scorer) {
		s.baseline = b
	}
}

// Scorer maps a sequence of StepRecords to ScoredSteps. It is stateless
// apart from its configuration and safe for concurrent use.
type Scorer struct {
	mode     BaselineMode
	baseline Baseline
}

// NewScorer creates a Scorer. The default mode is relative.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		mode: BaselineRelative,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode reports the configured baseline mode.
func (s *Scorer) Mode() BaselineMode {
	return s.mode
}

// ET is the transfer function mapping a relative-intensity ratio to an
// Exertion Time value. ET(0) == 1 (no stress), ET(1) == 0 (reference
// boundary), strictly decreasing, quadratic penalty at high intensity.
func ET(x float64) float64 {
	return 1.0 - x*x
}

// Score validates and normalizes the step sequence, then applies the ET
// transfer function to both layers of every step. The returned sequence
// preserves input order, with invalid steps dropped.
//
// Errors wrap ErrInvalidInput when no usable steps remain after filtering,
// or when an absolute-mode reference is not strictly positive.
func (s *Scorer) Score(ctx context.Context, steps []model.StepRecord) ([]model.ScoredStep, error) {
	const op = "scoring.score"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	valid := filterValid(steps)
	if len(valid) == 0 {
		return nil, fmt.Errorf("%s: no valid steps: %w", op, ErrInvalidInput)
	}

	base, err := s.resolveBaseline(valid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	scored := make([]model.ScoredStep, 0, len(valid))
	for _, rec := range valid {
		scored = append(scored, model.ScoredStep{
			StepRecord: rec,
			EVO2:       ET(vo2Ratio(rec.VO2, base.VO2Reference)),
			EHRV:       ET(hrvRatio(rec.HRV, base.HRVReference)),
		})
	}
	return scored, nil
}

// ResolveBaseline reports the references a Score call would use for the
// given steps, so callers can display them. Same error contract as Score.
func (s *Scorer) ResolveBaseline(steps []model.StepRecord) (Baseline, error) {
	valid := filterValid(steps)
	if len(valid) == 0 {
		return Baseline{}, fmt.Errorf("scoring.baseline: no valid steps: %w", ErrInvalidInput)
	}
	return s.resolveBaseline(valid)
}

// resolveBaseline returns the references for the (already filtered) steps.
// In relative mode a non-positive layer maximum is carried through as-is;
// the ratio helpers treat it as unusable and yield 0 for that layer.
func (s *Scorer) resolveBaseline(valid []model.StepRecord) (Baseline, error) {
	if s.mode == BaselineAbsolute {
		if s.baseline.VO2Reference <= 0 {
			return Baseline{}, fmt.Errorf("vo2 reference must be positive, got %g: %w", s.baseline.VO2Reference, ErrInvalidInput)
		}
		if s.baseline.HRVReference <= 0 {
			return Baseline{}, fmt.Errorf("hrv reference must be positive, got %g: %w", s.baseline.HRVReference, ErrInvalidInput)
		}
		return s.baseline, nil
	}

	var b Baseline
	for _, rec := range valid {
		b.VO2Reference = math.Max(b.VO2Reference, rec.VO2)
		b.HRVReference = math.Max(b.HRVReference, rec.HRV)
	}
	return b, nil
}

// filterValid drops steps whose measurements are not finite, sign-correct
// numbers. Step indices are preserved from the input, not reassigned.
func filterValid(steps []model.StepRecord) []model.StepRecord {
	valid := make([]model.StepRecord, 0, len(steps))
	for _, rec := range steps {
		if !isFiniteNonNegative(rec.VO2) || !isFiniteNonNegative(rec.HRV) {
			continue
		}
		valid = append(valid, rec)
	}
	return valid
}

func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// vo2Ratio is the relative metabolic intensity: clamped below at zero but
// deliberately not above, so supra-maximal effort drives ET negative.
// A non-positive reference means the ratio is undefined and reads as 0.
func vo2Ratio(vo2, ref float64) float64 {
	if ref <= 0 {
		return 0
	}
	return math.Max(0, vo2/ref)
}

// hrvRatio is the relative HRV depression from the reference, clamped to
// [0, 1]: depression cannot exceed the rest-to-zero range, and HRV above
// the reference counts as no depression.
func hrvRatio(hrv, ref float64) float64 {
	if ref <= 0 {
		return 0
	}
	x := (ref - hrv) / ref
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
