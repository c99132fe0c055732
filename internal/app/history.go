package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/funnelscout/internal/config"
	"github.com/blackwell-systems/funnelscout/internal/output"
	"github.com/blackwell-systems/funnelscout/internal/store"
)

var (
	historyLimit int
	historyClear bool
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Review past recommendations",
	Long: `List recent suggest and recommend runs: the goal you typed, the
template that won, and its score. Use --clear to wipe the history.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all history entries")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if historyClear {
		n, err := db.ClearRecommendations()
		if err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Printf("Cleared %d history entries.\n", n)
		return nil
	}

	entries, err := db.ListRecommendations(historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if historyJSON || flagJSON {
		if entries == nil {
			entries = []store.HistoryEntry{}
		}
		return outputJSON(entries)
	}

	renderHistory(entries)
	return nil
}

func renderHistory(entries []store.HistoryEntry) {
	fmt.Println(output.Section("Recommendation History"))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println(" No history yet. Run 'funnelscout suggest' with a goal.")
		fmt.Println()
		return
	}

	table := output.NewTable("WHEN", "GOAL", "TEMPLATE", "SCORE", "INPUT")
	for _, e := range entries {
		input := e.InputText
		if len(input) > 40 {
			input = input[:37] + "..."
		}
		table.AddRow(
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Goal,
			e.TemplateID,
			fmt.Sprintf("%d", e.Score),
			input,
		)
	}
	table.Print()
	fmt.Println()
}
