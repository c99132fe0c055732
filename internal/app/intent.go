package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/funnelscout/internal/intent"
	"github.com/blackwell-systems/funnelscout/internal/output"
)

var intentJSON bool

var intentCmd = &cobra.Command{
	Use:   "intent <goal>",
	Short: "Show how a goal is interpreted",
	Long: `Parse a plain-English goal and show the structured intent the engine
extracts from it: the detected goal, price point, experience level,
timeline, and keywords. Useful for understanding why a particular
template ranked first.`,
	Args: cobra.ExactArgs(1),
	RunE: runIntent,
}

func init() {
	intentCmd.Flags().BoolVar(&intentJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(intentCmd)
}

func runIntent(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	in := intent.Detect(args[0])

	if intentJSON || flagJSON {
		return outputJSON(in)
	}

	fmt.Println(output.Section("Detected Intent"))
	fmt.Println()
	printIntentField("Goal", string(in.Goal))
	printIntentField("Price point", string(in.PricePoint))
	printIntentField("Experience", string(in.Experience))
	printIntentField("Timeline", string(in.Timeline))
	printIntentField("Keywords", strings.Join(in.Keywords, ", "))
	fmt.Println()
	return nil
}

func printIntentField(label, value string) {
	if value == "" {
		value = output.StyleMuted.Render("(none)")
	}
	fmt.Printf(" %s %s\n", output.StyleLabel.Render(label), value)
}
