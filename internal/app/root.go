// Package app contains the Cobra command tree for repolens.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "repolens",
	Short: "Score repositories for code health and AI readiness",
	Long: `repolens inspects a repository with lightweight regex-based analysis
and scores it across code structure, documentation, build setup, and test
signal. It never parses or executes the code it inspects, so it works the
same on any language it recognizes.

Run 'repolens assess' on a repository to get a scored report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("repolens", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  assess    Analyze a repository and render a scored report")
		fmt.Println("  history   List and compare persisted assessment snapshots")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/repolens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
