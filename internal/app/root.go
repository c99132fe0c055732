// Package app contains the Cobra command tree for funnelscout.
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
	Use:   "funnelscout",
	Short: "Funnel template recommendations from plain-English goals",
	Long: `funnelscout turns a plain-English marketing goal into a ranked list of
funnel templates. It detects the intent behind your words, scores every
template in the catalog against it, and explains each match.

Run 'funnelscout' with no arguments to see an overview of the commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("funnelscout", appVersion)
		fmt.Println()
		fmt.Println("Describe your goal and get a template. Use a subcommand:")
		fmt.Println("  suggest    Rank templates against a free-text goal")
		fmt.Println("  recommend  Full recommendation with explanation and next steps")
		fmt.Println("  intent     Show how a goal is interpreted")
		fmt.Println("  compare    Diff two templates side by side")
		fmt.Println("  templates  Browse, search, and filter the catalog")
		fmt.Println("  stats      Summarize the catalog")
		fmt.Println("  history    Review past recommendations")
		fmt.Println("  mcp        Run an MCP stdio server")
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
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/funnelscout/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
