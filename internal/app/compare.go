package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/funnelscout/internal/output"
	"github.com/blackwell-systems/funnelscout/internal/suggest"
)

var compareJSON bool

var compareCmd = &cobra.Command{
	Use:   "compare <template-id> <template-id>",
	Short: "Diff two templates side by side",
	Long: `Compare two templates by id across complexity, setup time, conversion
rate, funnel length, and category, with a best-for summary for each.

List ids with 'funnelscout templates'.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine := newEngine(cfg)

	cmp := engine.Compare(args[0], args[1])
	if cmp == nil {
		return fmt.Errorf("template not found: check %q and %q against 'funnelscout templates'", args[0], args[1])
	}

	if compareJSON || flagJSON {
		return outputJSON(cmp)
	}

	renderComparison(cmp)
	return nil
}

func renderComparison(cmp *suggest.TemplateComparison) {
	fmt.Println(output.Section(fmt.Sprintf("%s vs %s", cmp.Template1.Name, cmp.Template2.Name)))
	fmt.Println()

	if len(cmp.Differences) == 0 {
		fmt.Println(" The templates match on every compared dimension.")
	} else {
		fmt.Println(" " + output.StyleHeader.Render("Differences"))
		for _, d := range cmp.Differences {
			fmt.Printf("   • %s\n", d)
		}
	}
	fmt.Println()

	fmt.Printf(" %s\n", output.StyleHeader.Render("Best for: "+cmp.Template1.Name))
	for _, b := range cmp.BestForTemplate1 {
		fmt.Printf("   • %s\n", b)
	}
	fmt.Println()

	fmt.Printf(" %s\n", output.StyleHeader.Render("Best for: "+cmp.Template2.Name))
	for _, b := range cmp.BestForTemplate2 {
		fmt.Printf("   • %s\n", b)
	}
	fmt.Println()
}
