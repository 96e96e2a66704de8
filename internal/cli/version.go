package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the etlab version.",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version)
	},
}
