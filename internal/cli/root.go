// Package cli implements the Ritual command-line interface using Cobra.
// Each subcommand maps to one engine capability (play, plan, progress, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ritual",
	Short: "Ritual — Daily habit training drills",
	Long: `Ritual is a local-first habit trainer.
Short focused drills, a daily plan, and a streak that lives entirely on
your machine. No accounts, no network required.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
