package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/funnelscout/internal/config"
	"github.com/blackwell-systems/funnelscout/internal/intent"
	"github.com/blackwell-systems/funnelscout/internal/output"
	"github.com/blackwell-systems/funnelscout/internal/suggest"
)

var (
	suggestLimit  int
	suggestFile   string
	suggestJSON   bool
	suggestNoSave bool
)

// batchConcurrency bounds how many goals score at once in --file mode.
const batchConcurrency = 4

var suggestCmd = &cobra.Command{
	Use:   "suggest [goal]",
	Short: "Rank templates against a free-text goal",
	Long: `Detect the intent behind a plain-English goal and rank every catalog
template against it. Each suggestion carries a 0-100 match score and a
reason. The top suggestion lists the runner-up templates as alternatives.

With --file, reads one goal per line and scores them all.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 0, "Trim the ranked list to N suggestions (default: engine limit)")
	suggestCmd.Flags().StringVarP(&suggestFile, "file", "f", "", "Read one goal per line from a file")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Output as JSON")
	suggestCmd.Flags().BoolVar(&suggestNoSave, "no-save", false, "Skip recording the result in history")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine := newEngine(cfg)

	if suggestFile != "" {
		return runSuggestBatch(cfg, engine)
	}

	if len(args) == 0 {
		return fmt.Errorf("describe your goal, e.g.: funnelscout suggest %q", "I want to build my email list")
	}
	text := args[0]

	in := intent.Detect(text)
	suggestions := engine.Suggest(in)
	if suggestLimit > 0 && len(suggestions) > suggestLimit {
		suggestions = suggestions[:suggestLimit]
	}

	if cfg.History.Enabled && !suggestNoSave && len(suggestions) > 0 {
		if err := saveHistory(text, in, suggestions[0]); err != nil {
			warnHistory(err)
		}
	}

	if suggestJSON || flagJSON {
		return outputJSON(suggestions)
	}

	renderSuggestions(in, suggestions)
	return nil
}

// runSuggestBatch scores one goal per line of the input file. The engine is
// read-only, so goals score concurrently. Batch runs are not saved to
// history.
func runSuggestBatch(cfg *config.Config, engine *suggest.Engine) error {
	f, err := os.Open(suggestFile)
	if err != nil {
		return fmt.Errorf("opening goals file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var goals []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			goals = append(goals, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading goals file: %w", err)
	}

	type batchResult struct {
		Goal        string                       `json:"goal"`
		Suggestions []suggest.TemplateSuggestion `json:"suggestions"`
	}

	// Each goroutine writes its own slot, so no locking is needed.
	results := make([]batchResult, len(goals))

	g := new(errgroup.Group)
	g.SetLimit(batchConcurrency)
	for i, goal := range goals {
		i, goal := i, goal
		g.Go(func() error {
			results[i] = batchResult{Goal: goal, Suggestions: engine.SuggestText(goal)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if suggestJSON || flagJSON {
		return outputJSON(results)
	}

	for _, r := range results {
		renderSuggestions(intent.Detect(r.Goal), r.Suggestions)
	}
	return nil
}

func renderSuggestions(in intent.UserIntent, suggestions []suggest.TemplateSuggestion) {
	fmt.Println(output.Section("Template Suggestions"))
	fmt.Println()
	fmt.Printf(" Detected goal: %s\n", output.StyleBold.Render(string(in.Goal)))
	fmt.Println()

	if len(suggestions) == 0 {
		fmt.Println(" No templates in the catalog.")
		return
	}

	for i, s := range suggestions {
		fmt.Printf(" #%d %s %s\n", i+1, output.StyleBold.Render(s.Template.Name), output.StyleMuted.Render("("+s.Template.ID+")"))
		fmt.Printf("    %s\n", output.ScoreBar(float64(s.Score), 20))
		fmt.Printf("    %s\n", s.Reason)
		if len(s.Alternatives) > 0 {
			names := make([]string, len(s.Alternatives))
			for j, alt := range s.Alternatives {
				names[j] = alt.Name
			}
			fmt.Printf("    Alternatives: %s\n", output.StyleMuted.Render(strings.Join(names, ", ")))
		}
		fmt.Println()
	}
}
