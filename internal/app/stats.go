package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/funnelscout/internal/analyzer"
	"github.com/blackwell-systems/funnelscout/internal/catalog"
	"github.com/blackwell-systems/funnelscout/internal/output"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the catalog",
	Long: `Aggregate statistics over the template catalog: counts by category and
complexity, conversion rate and setup time ranges, and how many templates
fall under the quick, beginner, and high-converting views.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stats := analyzer.AnalyzeCatalog(catalog.All(), cfg.Filters.QuickSetupMinutes, cfg.Filters.HighConversionRate)

	if statsJSON || flagJSON {
		return outputJSON(stats)
	}

	renderStats(stats, cfg.Filters.QuickSetupMinutes, cfg.Filters.HighConversionRate)
	return nil
}

func renderStats(stats analyzer.CatalogStats, quickMinutes, minRate int) {
	fmt.Println(output.Section("Catalog Statistics"))
	fmt.Println()

	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Templates"), output.StyleValue.Render(fmt.Sprintf("%d", stats.TotalTemplates)))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Avg conversion rate"), output.StyleValue.Render(fmt.Sprintf("%.1f%%", stats.AvgConversionRate)))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Conversion range"), output.StyleValue.Render(fmt.Sprintf("%d-%d%%", stats.MinConversionRate, stats.MaxConversionRate)))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Avg setup"), output.StyleValue.Render(fmt.Sprintf("%.0f min", stats.AvgSetupMinutes)))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Setup range"), output.StyleValue.Render(fmt.Sprintf("%d-%d min", stats.MinSetupMinutes, stats.MaxSetupMinutes)))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Avg funnel length"), output.StyleValue.Render(fmt.Sprintf("%.1f pages", stats.AvgStepCount)))
	fmt.Println()

	fmt.Println(" " + output.StyleHeader.Render("By category"))
	catTable := output.NewTable("CATEGORY", "COUNT")
	for _, c := range []catalog.Category{
		catalog.CategoryLeadGen, catalog.CategoryProductLaunch, catalog.CategoryWebinar,
		catalog.CategoryEcommerce, catalog.CategoryMembership, catalog.CategorySummit,
	} {
		catTable.AddRow(string(c), fmt.Sprintf("%d", stats.ByCategory[c]))
	}
	catTable.Print()
	fmt.Println()

	fmt.Println(" " + output.StyleHeader.Render("Views"))
	fmt.Printf("   Beginner-friendly: %d\n", stats.BeginnerCount)
	fmt.Printf("   Quick (≤%d min): %d\n", quickMinutes, stats.QuickCount)
	fmt.Printf("   High-converting (≥%d%%): %d\n", minRate, stats.HighConvertingCount)
	fmt.Println()
}
