package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if ETLAB_CONFIG is set
//  3. env (prefix ETLAB_)
func Load(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	base := New()

	k := koanf.New(".")

	if path := os.Getenv("ETLAB_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ETLAB_ADDR, ETLAB_BASELINE_MODE, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("ETLAB_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "etlab_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.BaselineMode {
	case "relative":
	case "absolute":
		if c.VO2Max <= 0 {
			return fmt.Errorf("%w: vo2max must be positive in absolute mode, got %g", ErrInvalidConfig, c.VO2Max)
		}
		if c.HRVRest <= 0 {
			return fmt.Errorf("%w: hrv_rest must be positive in absolute mode, got %g", ErrInvalidConfig, c.HRVRest)
		}
	default:
		return fmt.Errorf("%w: baseline_mode must be relative or absolute, got %q", ErrInvalidConfig, c.BaselineMode)
	}
	if c.MetabolicCutoff > 1 || c.AutonomicCutoff > 1 {
		return fmt.Errorf("%w: cutoffs cannot exceed 1 (ET is bounded above by 1)", ErrInvalidConfig)
	}
	return nil
}
