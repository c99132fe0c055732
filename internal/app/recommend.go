package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/funnelscout/internal/intent"
	"github.com/blackwell-systems/funnelscout/internal/output"
	"github.com/blackwell-systems/funnelscout/internal/suggest"
)

var (
	recommendJSON   bool
	recommendNoSave bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <goal>",
	Short: "Full recommendation with explanation and next steps",
	Long: `Produce a complete recommendation for a plain-English goal: the best
matching template with an explanation, the runner-up templates, and an
ordered launch checklist.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Output as JSON")
	recommendCmd.Flags().BoolVar(&recommendNoSave, "no-save", false, "Skip recording the result in history")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine := newEngine(cfg)

	text := args[0]
	rec := engine.Recommend(text)

	if cfg.History.Enabled && !recommendNoSave && rec.Primary.Template.ID != "" {
		if err := saveHistory(text, intent.Detect(text), rec.Primary); err != nil {
			warnHistory(err)
		}
	}

	if recommendJSON || flagJSON {
		return outputJSON(rec)
	}

	renderRecommendation(rec)
	return nil
}

func renderRecommendation(rec suggest.Recommendation) {
	fmt.Println(output.Section("Recommendation"))
	fmt.Println()

	t := rec.Primary.Template
	fmt.Printf(" %s %s\n", output.StyleBold.Render(t.Name), output.StyleMuted.Render("("+t.ID+")"))
	fmt.Printf(" %s\n", output.ScoreBar(float64(rec.Primary.Score), 20))
	fmt.Println()
	fmt.Printf(" %s\n", rec.Explanation)
	fmt.Println()

	if len(rec.Alternatives) > 0 {
		fmt.Println(" " + output.StyleHeader.Render("Also consider"))
		for _, alt := range rec.Alternatives {
			fmt.Printf("   %s %s\n", alt.Template.Name, output.StyleMuted.Render(fmt.Sprintf("(score %d)", alt.Score)))
		}
		fmt.Println()
	}

	fmt.Println(" " + output.StyleHeader.Render("Next steps"))
	for i, step := range rec.NextSteps {
		fmt.Printf("   %d. %s\n", i+1, step)
	}
	fmt.Println()
}
