package cli

import (
	"fmt"
	"io"
	"os"

	service "github.com/etlab/etlab/internal/app"
	"github.com/etlab/etlab/internal/domain/scoring"
	"github.com/etlab/etlab/pkg/logger"
	"github.com/spf13/cobra"
)

var analyzeOpts = struct {
	mode            string
	vo2Max          float64
	hrvRest         float64
	metabolicCutoff float64
	autonomicCutoff float64
	output          string
	detail          bool
}{}

// analyzeCmd runs one analysis over a step-data file or stdin.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Score and classify an incremental test.",
	Long: `Read step data (one "VO2 HRV" pair per line) from a file or stdin,
compute per-step ET values for both layers, and report the overall
status, the limiting layer, and first threshold crossings.

Examples:
  # Analyze a pasted test with test-relative normalization
  printf '20 78\n30 70\n36 60\n42 48\n50 36\n' | etlab analyze

  # Use configured VO2max and resting HRV instead of test maxima
  etlab analyze steps.txt --mode absolute --vo2max 60 --hrv-rest 80

  # Export the per-step ET table
  etlab analyze steps.txt --output csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		svc := service.New(
			service.WithLogger(logger.Named("cli")),
			service.WithBaselineMode(scoring.BaselineMode(analyzeOpts.mode)),
			service.WithAbsoluteBaseline(analyzeOpts.vo2Max, analyzeOpts.hrvRest),
			service.WithCutoffs(analyzeOpts.metabolicCutoff, analyzeOpts.autonomicCutoff),
		)

		report, err := svc.Analyze(rootCtx, service.Request{Text: text})
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		return Render(os.Stdout, report, RenderOptions{
			Output: analyzeOpts.output,
			Detail: analyzeOpts.detail,
		})
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeOpts.mode, "mode", "relative", "baseline mode: relative or absolute")
	analyzeCmd.Flags().Float64Var(&analyzeOpts.vo2Max, "vo2max", 0, "VO2max reference for absolute mode (ml/kg/min)")
	analyzeCmd.Flags().Float64Var(&analyzeOpts.hrvRest, "hrv-rest", 0, "resting-HRV reference for absolute mode (ms)")
	analyzeCmd.Flags().Float64Var(&analyzeOpts.metabolicCutoff, "metabolic-cutoff", 0.50, "ET cutoff marking the metabolic threshold step")
	analyzeCmd.Flags().Float64Var(&analyzeOpts.autonomicCutoff, "autonomic-cutoff", 0.70, "ET cutoff marking the autonomic threshold step")
	analyzeCmd.Flags().StringVar(&analyzeOpts.output, "output", "table", "output format: table, json, or csv")
	analyzeCmd.Flags().BoolVar(&analyzeOpts.detail, "detail", false, "include the per-step ET table")
}

// readInput returns the step text from the file argument, or stdin when no
// argument is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
