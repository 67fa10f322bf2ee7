package cmd

import (
	"fmt"

	"github.com/pthm/twlint/internal/analyzer"
	"github.com/pthm/twlint/internal/fixer"
	"github.com/pthm/twlint/internal/parser"
	"github.com/pthm/twlint/internal/rules"
	"github.com/spf13/cobra"
)

// maxFixPasses bounds how often a file is re-analyzed after fixes overlap
const maxFixPasses = 5

var dryRun bool

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Auto-fix complex wording and gendered language",
	Long: `Rewrite documents in place using the suggested replacements of checks
that provide mechanical fixes (complex wording, gendered language).

HTML documents are reported but never rewritten.

Examples:
  twlint fix docs/guide.md
  twlint fix --dry-run docs`,
	RunE: runFix,
}

func init() {
	addAnalysisFlags(fixCmd)
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show fixes without applying them")
	RootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	u := GetUI()
	cfg := flagConfig()
	if err := cfg.Validate(rules.DefaultRegistry().Names()...); err != nil {
		return err
	}

	paths, err := collectPaths(args)
	if err != nil {
		return err
	}

	engine := analyzer.New(analyzer.Options{Logger: logger})
	f := fixer.New(fixer.Options{DryRun: dryRun}, u)

	total := 0
	for _, path := range paths {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		if path == parser.StdinPath {
			logger.Warn("cannot fix standard input, skipping")
			continue
		}

		n, err := fixDocument(engine, f, path)
		if err != nil {
			return err
		}
		total += n
	}

	if total == 0 {
		fmt.Fprintln(u.Writer, u.Styles.Success.Render(
			fmt.Sprintf("%s No fixable issues found!", u.Styles.IconSuccess),
		))
		return nil
	}

	verb := "Applied"
	if dryRun {
		verb = "Would apply"
	}
	fmt.Fprintf(u.Writer, "%s %d fixes\n", verb, total)
	return nil
}

// fixDocument fixes one file, re-analyzing after each pass so fixes skipped
// for overlapping are retried against the rewritten text
func fixDocument(engine *analyzer.Engine, f *fixer.Fixer, path string) (int, error) {
	total := 0
	for pass := 0; pass < maxFixPasses; pass++ {
		doc, err := parser.Load(path)
		if err != nil {
			return total, fmt.Errorf("failed to load %s: %w", path, err)
		}
		if !doc.Fixable {
			logger.Warn("document kind cannot be fixed, skipping", "path", path, "kind", doc.Kind)
			return total, nil
		}

		result := engine.Analyze(doc.Text, documentConfig(flagConfig(), doc))
		fixable := fixableIssues(result.Issues)
		if len(fixable) == 0 {
			return total, nil
		}

		changes, err := f.FixFile(path, fixable)
		if err != nil {
			return total, err
		}
		total += len(changes)
		logger.Debug("fix pass", "path", path, "pass", pass+1, "applied", len(changes), "fixable", len(fixable))

		// A dry run leaves the file unchanged, so another pass would repeat itself
		if dryRun || len(changes) == 0 {
			return total, nil
		}
	}
	return total, nil
}

func fixableIssues(issues []rules.Issue) []rules.Issue {
	var out []rules.Issue
	for _, issue := range issues {
		if issue.Fix != nil {
			out = append(out, issue)
		}
	}
	return out
}
