// Package cli implements the etlab command-line interface.
package cli

import (
	"context"

	"github.com/etlab/etlab/pkg/logger"
	"github.com/spf13/cobra"
)

// version is injected by Execute from the build-time linker flag.
var version = "dev"

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "etlab",
	Short: "Two-layer ET threshold analysis for incremental exercise tests.",
	Long: `etlab estimates metabolic and autonomic stress during an incremental
exercise test using a two-layer ET model:

- The VO2-ET layer reflects metabolic load.
- The HRV-ET layer reflects autonomic load.

Step data is one line per step: VO2 (ml/kg/min) then HRV (ms), separated
by spaces, tabs, or commas.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := logger.Init(); err != nil {
			return err
		}
		return logger.SetLevelString(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log verbosity: debug, info, warn, error")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI with the given build version.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}
