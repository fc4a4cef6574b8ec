package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kerlenton/system-eye/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "system-eye",
	Short: "Live terminal system telemetry viewer",
	Long:  `Renders CPU, GPU, memory, disk, network, power and neural-engine metrics as live horizon charts in the terminal, or streams them as CSV, JSON or Prometheus output.`,
	RunE:  runDashboard,
}

// Execute runs the root command. A Configuration error exits with status 2;
// any other failure exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if app.IsConfigError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
