package cmd

import (
	"github.com/pthm/twlint/internal/reporter"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [paths...]",
	Short: "Show a document report with readability scores",
	Long: `Generate a report for each document.

This includes:
  - Overall score
  - Detected domain
  - Paragraph, sentence, word and character counts
  - Flesch Reading Ease, Flesch-Kincaid Grade and SMOG scores
  - Issue counts by category

Examples:
  twlint report docs/guide.md
  twlint report --format json docs > report.json`,
	RunE: runReport,
}

func init() {
	addAnalysisFlags(reportCmd)
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	results, err := analyzePaths(cmd, args)
	if err != nil {
		return err
	}
	return newReporter(GetUI(), reporter.ViewReport).Report(results)
}
