// Package model contains domain models passed between layers.
package model

// StepRecord is one measurement at an incremental test protocol step.
// StepIndex is order-significant: ascending index means increasing intensity.
type StepRecord struct {
	StepIndex       int     // positive, unique within a test
	VO2             float64 // oxygen uptake, ml/kg/min
	HRV             float64 // heart-rate variability, ms
	Label           string  // descriptive only
	DurationMinutes float64 // descriptive only
}

// ScoredStep is a StepRecord augmented with per-layer ET values.
// Each ET value lies in (-inf, 1]; only the VO2 layer can go negative.
type ScoredStep struct {
	StepRecord
	EVO2 float64 // metabolic layer ET
	EHRV float64 // autonomic layer ET
}

// Status is the three-tier overall strain classification.
type Status string

const (
	StatusGreen  Status = "GREEN"
	StatusYellow Status = "YELLOW"
	StatusRed    Status = "RED"
)

// Limiter names the physiological layer constraining the overall status.
type Limiter string

const (
	LimiterAutonomic Limiter = "autonomic"
	LimiterMetabolic Limiter = "metabolic"
	LimiterBalanced  Limiter = "balanced"
)

// Layer selects one of the two ET layers.
type Layer string

const (
	LayerVO2 Layer = "vo2"
	LayerHRV Layer = "hrv"
)

// TestClassification summarizes a scored sequence. It is a derived,
// immutable value recomputed on every analysis.
type TestClassification struct {
	MinEVO2     float64 `json:"min_e_vo2"`
	MinEHRV     float64 `json:"min_e_hrv"`
	MinEOverall float64 `json:"min_e_overall"`
	Status      Status  `json:"status"`
	Limiter     Limiter `json:"limiter"`
}
