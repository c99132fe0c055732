package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/funnelscout/internal/catalog"
	"github.com/blackwell-systems/funnelscout/internal/output"
)

var (
	templatesCategory       string
	templatesComplexity     string
	templatesSearch         string
	templatesBeginner       bool
	templatesQuick          bool
	templatesHighConverting bool
	templatesJSON           bool
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Browse, search, and filter the catalog",
	Long: `List the template catalog. Filters narrow the list by category,
complexity, keyword, or one of the built-in views: beginner-friendly,
quick to set up, or high-converting.`,
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().StringVar(&templatesCategory, "category", "", "Filter by category (lead-gen, product-launch, webinar, ecommerce, membership, summit)")
	templatesCmd.Flags().StringVar(&templatesComplexity, "complexity", "", "Filter by complexity (simple, medium, advanced)")
	templatesCmd.Flags().StringVar(&templatesSearch, "search", "", "Case-insensitive search over names, descriptions, tags, and use cases")
	templatesCmd.Flags().BoolVar(&templatesBeginner, "beginner", false, "Show beginner-friendly templates")
	templatesCmd.Flags().BoolVar(&templatesQuick, "quick", false, "Show templates that set up within the quick threshold")
	templatesCmd.Flags().BoolVar(&templatesHighConverting, "high-converting", false, "Show templates above the conversion threshold")
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var templates []catalog.Template
	switch {
	case templatesSearch != "":
		templates = catalog.Search(templatesSearch)
	case templatesCategory != "":
		templates = catalog.ByCategory(catalog.Category(templatesCategory))
	case templatesComplexity != "":
		templates = catalog.ByComplexity(catalog.Complexity(templatesComplexity))
	case templatesBeginner:
		templates = catalog.BeginnerTemplates()
	case templatesQuick:
		templates = catalog.QuickTemplates(cfg.Filters.QuickSetupMinutes)
	case templatesHighConverting:
		templates = catalog.HighConverting(cfg.Filters.HighConversionRate)
	default:
		templates = catalog.All()
	}

	if templatesJSON || flagJSON {
		if templates == nil {
			templates = []catalog.Template{}
		}
		return outputJSON(templates)
	}

	renderTemplates(templates)
	return nil
}

func renderTemplates(templates []catalog.Template) {
	fmt.Println(output.Section("Template Catalog"))
	fmt.Println()

	if len(templates) == 0 {
		fmt.Println(" No templates match that filter.")
		fmt.Println()
		return
	}

	table := output.NewTable("ID", "NAME", "CATEGORY", "COMPLEXITY", "CONV%", "SETUP", "PAGES")
	for _, t := range templates {
		table.AddRow(
			t.ID,
			t.Name,
			string(t.Category),
			string(t.Complexity),
			fmt.Sprintf("%d", t.ConversionRate),
			t.EstimatedSetupTime,
			fmt.Sprintf("%d", len(t.Steps)),
		)
	}
	table.Print()
	fmt.Println()
}
