// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	service "github.com/etlab/etlab/internal/app"
	"github.com/etlab/etlab/internal/domain/model"
	"github.com/etlab/etlab/internal/domain/scoring"
)

// AnalyzeHandler handles analysis requests.
type AnalyzeHandler struct {
	deps Dependencies
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Dependencies) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps}
}

// analyzeRequest mirrors the POST /analyze body. Exactly one of steps or
// text is required; the rest is optional and falls back to server defaults.
type analyzeRequest struct {
	Steps []stepInput `json:"steps"`
	Text  string      `json:"text"`

	Mode    string  `json:"mode"`
	VO2Max  float64 `json:"vo2max"`
	HRVRest float64 `json:"hrv_rest"`

	MetabolicCutoff *float64 `json:"metabolic_cutoff"`
	AutonomicCutoff *float64 `json:"autonomic_cutoff"`
}

type stepInput struct {
	Step            int     `json:"step"`
	VO2             float64 `json:"vo2"`
	HRV             float64 `json:"hrv"`
	Label           string  `json:"label,omitempty"`
	DurationMinutes float64 `json:"duration_minutes,omitempty"`
}

func (a analyzeRequest) validate() error {
	if len(a.Steps) == 0 && strings.TrimSpace(a.Text) == "" {
		return errors.New("missing steps or text")
	}
	switch a.Mode {
	case "", string(scoring.BaselineRelative), string(scoring.BaselineAbsolute):
	default:
		return fmt.Errorf("invalid mode %q; must be relative or absolute", a.Mode)
	}
	for i, s := range a.Steps {
		if s.Step <= 0 {
			return fmt.Errorf("steps[%d]: step index must be positive", i)
		}
	}
	return nil
}

type stepResult struct {
	Step  int     `json:"step"`
	Label string  `json:"label,omitempty"`
	VO2   float64 `json:"vo2"`
	HRV   float64 `json:"hrv"`
	EVO2  float64 `json:"e_vo2"`
	EHRV  float64 `json:"e_hrv"`
}

type analyzeResponse struct {
	Status         model.Status          `json:"status"`
	Limiter        model.Limiter         `json:"limiter"`
	MinEVO2        float64               `json:"min_e_vo2"`
	MinEHRV        float64               `json:"min_e_hrv"`
	MinEOverall    float64               `json:"min_e_overall"`
	Mode           scoring.BaselineMode  `json:"mode"`
	VO2Reference   float64               `json:"vo2_reference"`
	HRVReference   float64               `json:"hrv_reference"`
	Metabolic      service.ThresholdMark `json:"metabolic_threshold"`
	Autonomic      service.ThresholdMark `json:"autonomic_threshold"`
	Steps          []stepResult          `json:"steps"`
	Interpretation []string              `json:"interpretation"`
	SkippedLines   int                   `json:"skipped_lines,omitempty"`
}

// HandleAnalyze handles POST /analyze requests.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w: %w", op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w: %w", op, ErrBadRequest, err))
		return
	}

	report, err := h.deps.Analyze(r.Context(), toServiceRequest(req))
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_input", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(report))
}

func toServiceRequest(req analyzeRequest) service.Request {
	steps := make([]model.StepRecord, 0, len(req.Steps))
	for _, s := range req.Steps {
		steps = append(steps, model.StepRecord{
			StepIndex:       s.Step,
			VO2:             s.VO2,
			HRV:             s.HRV,
			Label:           s.Label,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return service.Request{
		Steps:           steps,
		Text:            req.Text,
		Mode:            scoring.BaselineMode(req.Mode),
		VO2Max:          req.VO2Max,
		HRVRest:         req.HRVRest,
		MetabolicCutoff: req.MetabolicCutoff,
		AutonomicCutoff: req.AutonomicCutoff,
	}
}

func toResponse(report *service.Report) analyzeResponse {
	steps := make([]stepResult, 0, len(report.Steps))
	for _, s := range report.Steps {
		steps = append(steps, stepResult{
			Step:  s.StepIndex,
			Label: s.Label,
			VO2:   s.VO2,
			HRV:   s.HRV,
			EVO2:  s.EVO2,
			EHRV:  s.EHRV,
		})
	}
	c := report.Classification
	return analyzeResponse{
		Status:         c.Status,
		Limiter:        c.Limiter,
		MinEVO2:        c.MinEVO2,
		MinEHRV:        c.MinEHRV,
		MinEOverall:    c.MinEOverall,
		Mode:           report.Mode,
		VO2Reference:   report.Baseline.VO2Reference,
		HRVReference:   report.Baseline.HRVReference,
		Metabolic:      report.Metabolic,
		Autonomic:      report.Autonomic,
		Steps:          steps,
		Interpretation: report.Interpretation,
		SkippedLines:   report.SkippedLines,
	}
}
