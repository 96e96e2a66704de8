// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/etlab/etlab/internal/domain/classify"
	"github.com/etlab/etlab/internal/domain/model"
	"github.com/etlab/etlab/internal/domain/scoring"
	"github.com/etlab/etlab/internal/parse"
	"github.com/etlab/etlab/pkg/logger"
	"github.com/etlab/etlab/pkg/metrics"
)

// Request describes one analysis. Steps takes precedence over Text; when
// Steps is empty, Text is parsed as pasted free-text step data. Zero-value
// mode, references, and cutoffs fall back to the service defaults.
type Request struct {
	Steps []model.StepRecord
	Text  string

	Mode    scoring.BaselineMode
	VO2Max  float64 // absolute-mode VO2 reference; 0 = service default
	HRVRest float64 // absolute-mode HRV reference; 0 = service default

	MetabolicCutoff *float64 // nil = service default
	AutonomicCutoff *float64 // nil = service default
}

// ThresholdMark is a located threshold step for one layer. Step is nil when
// no step crossed the cutoff, a normal sub-threshold outcome.
type ThresholdMark struct {
	Cutoff float64 `json:"cutoff"`
	Step   *int    `json:"step"`
}

// Report is the full result of one analysis.
type Report struct {
	Steps          []model.ScoredStep
	Classification model.TestClassification
	Mode           scoring.BaselineMode
	Baseline       scoring.Baseline
	Metabolic      ThresholdMark
	Autonomic      ThresholdMark
	Interpretation []string
	SkippedLines   int
}

// Service runs analyses. Each call is an independent pure computation; the
// Service carries only configuration and is safe for concurrent use.
type Service struct {
	mode            scoring.BaselineMode
	vo2Max          float64
	hrvRest         float64
	metabolicCutoff float64
	autonomicCutoff float64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBaselineMode sets the default normalization mode.
func WithBaselineMode(mode scoring.BaselineMode) Option {
	return func(s *Service) {
		if mode == scoring.BaselineRelative || mode == scoring.BaselineAbsolute {
			s.mode = mode
		}
	}
}

// WithAbsoluteBaseline sets the default absolute-mode references.
func WithAbsoluteBaseline(vo2Max, hrvRest float64) Option {
	return func(s *Service) {
		if vo2Max > 0 {
			s.vo2Max = vo2Max
		}
		if hrvRest > 0 {
			s.hrvRest = hrvRest
		}
	}
}

// WithCutoffs sets the default display cutoffs for threshold marks.
func WithCutoffs(metabolic, autonomic float64) Option {
	return func(s *Service) {
		if metabolic <= 1 {
			s.metabolicCutoff = metabolic
		}
		if autonomic <= 1 {
			s.autonomicCutoff = autonomic
		}
	}
}

// New creates a Service with defaults: relative mode, standard display
// cutoffs, and a no-op-safe named logger.
func New(opts ...Option) *Service {
	s := &Service{
		mode:            scoring.BaselineRelative,
		metabolicCutoff: classify.DefaultMetabolicCutoff,
		autonomicCutoff: classify.DefaultAutonomicCutoff,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	return s
}

// Analyze scores, classifies, and locates threshold steps for one request.
// Errors wrap scoring.ErrInvalidInput when the input is unusable; callers
// surface those as user-correctable failures, never as process faults.
func (s *Service) Analyze(ctx context.Context, req Request) (*Report, error) {
	const op = "service.analyze"
	start := time.Now()

	steps := req.Steps
	skipped := 0
	if len(steps) == 0 && req.Text != "" {
		parsed := parse.Steps(req.Text)
		steps = parsed.Steps
		skipped = parsed.SkippedLines
		if skipped > 0 {
			metrics.RecordParseSkippedLines(skipped)
		}
	}

	scorer := s.scorerFor(req)
	scored, err := scorer.Score(ctx, steps)
	if err != nil {
		metrics.RecordInvalidInput()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	classification, err := classify.Classify(scored)
	if err != nil {
		// Unreachable after a successful Score, which never returns an
		// empty sequence.
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	baseline, err := scorer.ResolveBaseline(steps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	report := &Report{
		Steps:          scored,
		Classification: classification,
		Mode:           scorer.Mode(),
		Baseline:       baseline,
		Metabolic:      s.locate(scored, model.LayerVO2, req.MetabolicCutoff, s.metabolicCutoff),
		Autonomic:      s.locate(scored, model.LayerHRV, req.AutonomicCutoff, s.autonomicCutoff),
		Interpretation: Interpret(classification),
		SkippedLines:   skipped,
	}

	durationMs := float64(time.Since(start).Microseconds()) / 1e3
	metrics.RecordAnalysis(string(classification.Status), len(scored), durationMs)
	s.logger.Debug(ctx, "analysis complete",
		logger.Int("steps", len(scored)),
		logger.String("status", string(classification.Status)),
		logger.String("limiter", string(classification.Limiter)),
		logger.Float64("min_e_overall", classification.MinEOverall),
	)
	return report, nil
}

// scorerFor builds the per-request scorer, overlaying request overrides on
// the service defaults.
func (s *Service) scorerFor(req Request) *scoring.Scorer {
	mode := s.mode
	if req.Mode != "" {
		mode = req.Mode
	}
	if mode != scoring.BaselineAbsolute {
		return scoring.NewScorer()
	}
	vo2Max := s.vo2Max
	if req.VO2Max > 0 {
		vo2Max = req.VO2Max
	}
	hrvRest := s.hrvRest
	if req.HRVRest > 0 {
		hrvRest = req.HRVRest
	}
	return scoring.NewScorer(scoring.WithAbsoluteBaseline(vo2Max, hrvRest))
}

func (s *Service) locate(scored []model.ScoredStep, layer model.Layer, override *float64, fallback float64) ThresholdMark {
	cutoff := fallback
	if override != nil {
		cutoff = *override
	}
	mark := ThresholdMark{Cutoff: cutoff}
	if step, ok := classify.FindThreshold(scored, layer, cutoff); ok {
		mark.Step = &step
	}
	return mark
}
