// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load() layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// BaselineMode selects normalization: "relative" (test maxima) or
	// "absolute" (configured VO2Max/HRVRest).
	BaselineMode string `koanf:"baseline_mode"`

	// VO2Max is the absolute-mode VO2 reference, ml/kg/min.
	VO2Max float64 `koanf:"vo2max"`

	// HRVRest is the absolute-mode resting-HRV reference, ms.
	HRVRest float64 `koanf:"hrv_rest"`

	// MetabolicCutoff marks the VO2-layer threshold step in output.
	MetabolicCutoff float64 `koanf:"metabolic_cutoff"`

	// AutonomicCutoff marks the HRV-layer threshold step in output.
	AutonomicCutoff float64 `koanf:"autonomic_cutoff"`
}

// New creates a Config with service defaults. Relative mode needs no
// references; the VO2Max/HRVRest defaults only matter in absolute mode.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		BaselineMode:    "relative",
		VO2Max:          60,
		HRVRest:         80,
		MetabolicCutoff: 0.50,
		AutonomicCutoff: 0.70,
	}
}
