package cmd

import (
	"fmt"
	"runtime"

	"github.com/pthm/twlint/internal/analyzer"
	"github.com/pthm/twlint/internal/config"
	"github.com/pthm/twlint/internal/reporter"
	"github.com/pthm/twlint/internal/rules"
	"github.com/pthm/twlint/internal/ui"
	"github.com/spf13/cobra"
)

var (
	disableChecks []string
	longSentence  int
	jobs          int
	minScore      float64
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Check documents against technical writing guidelines",
	Long: `Analyze documents for style issues and list them grouped by category.

Directories are searched for Markdown, HTML and text files. Use "-" to read
from stdin.

Examples:
  twlint lint .
  twlint lint docs/guide.md --disable passive-voice
  twlint lint --format json docs > report.json
  cat draft.txt | twlint lint -`,
	RunE: runLint,
}

func init() {
	addAnalysisFlags(lintCmd)
	lintCmd.Flags().Float64Var(&minScore, "min-score", 0, "Fail when any document scores below this value")
	RootCmd.AddCommand(lintCmd)
}

// addAnalysisFlags registers the flags shared by commands that analyze documents
func addAnalysisFlags(c *cobra.Command) {
	c.Flags().StringSliceVar(&disableChecks, "disable", nil, "Checks to disable (comma separated)")
	c.Flags().IntVar(&longSentence, "long-sentence", 0, "Long sentence threshold in words")
	c.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "Number of documents to analyze in parallel")
}

// flagConfig applies analysis flags on top of the loaded settings
func flagConfig() config.Config {
	cfg := settings.WithChecks(false, disableChecks...)
	if longSentence > 0 {
		cfg = cfg.WithLongSentence(longSentence)
	}
	return cfg
}

func runLint(cmd *cobra.Command, args []string) error {
	results, err := analyzePaths(cmd, args)
	if err != nil {
		return err
	}

	if err := newReporter(GetUI(), reporter.ViewIssues).Report(results); err != nil {
		return err
	}

	return checkMinScore(results)
}

// analyzePaths runs the full pipeline for the lint and report commands
func analyzePaths(cmd *cobra.Command, args []string) ([]reporter.FileResult, error) {
	u := GetUI()
	cfg := flagConfig()
	if err := cfg.Validate(rules.DefaultRegistry().Names()...); err != nil {
		return nil, err
	}

	progress := u.StartProgress()
	defer func() {
		progress.Done(nil)
	}()

	progress.SetStage(ui.StageReadFiles)
	paths, err := collectPaths(args)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no supported documents found")
	}
	logger.Debug("collected documents", "count", len(paths))

	engine := analyzer.New(analyzer.Options{Logger: logger})
	docs, err := analyzeFiles(cmd.Context(), engine, cfg, paths, jobs, progress)
	if err != nil {
		return nil, err
	}

	// Stop progress before reporting
	progress.Done(nil)
	progress = nil

	return fileResults(docs), nil
}

func checkMinScore(results []reporter.FileResult) error {
	if minScore <= 0 {
		return nil
	}
	for _, fr := range results {
		if fr.Result.Score < minScore {
			return fmt.Errorf("%s scored %.1f, below the minimum of %.1f", fr.Path, fr.Result.Score, minScore)
		}
	}
	return nil
}
