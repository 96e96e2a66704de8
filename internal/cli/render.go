package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	service "github.com/etlab/etlab/internal/app"
	"github.com/etlab/etlab/internal/domain/model"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Output format names accepted by --output.
const (
	TableOut = "table"
	JSONOut  = "json"
	CSVOut   = "csv"
)

const etPrecision = 4

var (
	greenColor  = color.New(color.FgGreen, color.Bold)
	yellowColor = color.New(color.FgYellow, color.Bold)
	redColor    = color.New(color.FgRed, color.Bold)
)

// RenderOptions controls how a report is written.
type RenderOptions struct {
	Output string // table, json, or csv
	Detail bool   // include the per-step table in table output
}

// Render writes the analysis report to w in the requested format.
func Render(w io.Writer, report *service.Report, opts RenderOptions) error {
	switch opts.Output {
	case JSONOut:
		return renderJSON(w, report)
	case CSVOut:
		return renderCSV(w, report)
	case TableOut, "":
		return renderTable(w, report, opts.Detail)
	default:
		return fmt.Errorf("unknown output format %q", opts.Output)
	}
}

func renderJSON(w io.Writer, report *service.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport(report)); err != nil {
		return fmt.Errorf("error writing JSON output: %w", err)
	}
	return nil
}

// jsonReport flattens the report into a stable wire shape for scripting.
func jsonReport(report *service.Report) map[string]any {
	steps := make([]map[string]any, 0, len(report.Steps))
	for _, s := range report.Steps {
		steps = append(steps, map[string]any{
			"step":  s.StepIndex,
			"vo2":   s.VO2,
			"hrv":   s.HRV,
			"e_vo2": s.EVO2,
			"e_hrv": s.EHRV,
		})
	}
	return map[string]any{
		"status":              report.Classification.Status,
		"limiter":             report.Classification.Limiter,
		"min_e_vo2":           report.Classification.MinEVO2,
		"min_e_hrv":           report.Classification.MinEHRV,
		"min_e_overall":       report.Classification.MinEOverall,
		"mode":                report.Mode,
		"vo2_reference":       report.Baseline.VO2Reference,
		"hrv_reference":       report.Baseline.HRVReference,
		"metabolic_threshold": report.Metabolic,
		"autonomic_threshold": report.Autonomic,
		"steps":               steps,
		"interpretation":      report.Interpretation,
	}
}

func renderCSV(w io.Writer, report *service.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "vo2", "hrv", "e_vo2", "e_hrv"}); err != nil {
		return fmt.Errorf("error writing CSV output: %w", err)
	}
	for _, s := range report.Steps {
		row := []string{
			strconv.Itoa(s.StepIndex),
			fmtFloat(s.VO2),
			fmtFloat(s.HRV),
			fmtFloat(s.EVO2),
			fmtFloat(s.EHRV),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("error writing CSV output: %w", err)
	}
	return nil
}

func renderTable(w io.Writer, report *service.Report, detail bool) error {
	c := report.Classification

	fmt.Fprintf(w, "OVERALL STATUS: %s\n", colorStatus(c.Status))
	fmt.Fprintf(w, "Minimum ET across steps (both layers): %.3f\n", c.MinEOverall)
	fmt.Fprintf(w, "Baseline (%s): VO2 reference %.1f ml/kg/min, HRV reference %.1f ms\n",
		report.Mode, report.Baseline.VO2Reference, report.Baseline.HRVReference)
	if report.SkippedLines > 0 {
		fmt.Fprintf(w, "Skipped %d malformed input line(s).\n", report.SkippedLines)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Scientific interpretation:")
	for _, line := range report.Interpretation {
		fmt.Fprintf(w, "- %s\n", line)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Metabolic threshold (ET <= %.2f): %s\n", report.Metabolic.Cutoff, fmtMark(report.Metabolic))
	fmt.Fprintf(w, "Autonomic threshold (ET <= %.2f): %s\n", report.Autonomic.Cutoff, fmtMark(report.Autonomic))

	if !detail {
		return nil
	}
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Formatting.AutoFormat = tw.Off
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	table.Header([]string{"Step", "VO2", "HRV", "E_VO2", "E_HRV"})

	var data [][]string
	for _, s := range report.Steps {
		data = append(data, []string{
			strconv.Itoa(s.StepIndex),
			fmtFloat(s.VO2),
			fmtFloat(s.HRV),
			fmtFloat(s.EVO2),
			fmtFloat(s.EHRV),
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("error writing table output: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("error writing table output: %w", err)
	}
	return nil
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', etPrecision, 64)
}

func fmtMark(mark service.ThresholdMark) string {
	if mark.Step == nil {
		return "not crossed"
	}
	return fmt.Sprintf("first crossed at step %d", *mark.Step)
}

func colorStatus(status model.Status) string {
	switch status {
	case model.StatusGreen:
		return greenColor.Sprint(string(status))
	case model.StatusYellow:
		return yellowColor.Sprint(string(status))
	default:
		return redColor.Sprint(string(status))
	}
}
