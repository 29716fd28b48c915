// Package cli wires the cobra commands for the padd binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag string
	debugFlag  bool
)

// rootCmd is the base command. Running padd with no subcommand starts
// the terminal dashboard.
var rootCmd = &cobra.Command{
	Use:   "padd",
	Short: "Pi-hole stats for your terminal or e-ink display",
	Long: `padd polls a Pi-hole instance and renders its statistics as a
rotating set of screens: blocking overview, system stats, and component
versions.

Run with no arguments for the interactive terminal dashboard, or use
'padd eink' on a device with an attached e-ink panel.

Get started:
  padd init     Create a .padd.yaml configuration
  padd          Start the dashboard
  padd eink     Drive an e-ink panel`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The env logger gates debug output on PADD_DEBUG.
		if debugFlag {
			os.Setenv("PADD_DEBUG", "1")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tuiCommand()
	},
}

// Execute runs the root command and exits non-zero on error. Errors
// carry their own suggestion text, so they print as-is.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}
