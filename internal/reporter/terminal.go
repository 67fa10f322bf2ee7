package reporter

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pthm/twlint/internal/readability"
	"github.com/pthm/twlint/internal/rules"
	"github.com/pthm/twlint/internal/ui"
)

// View selects what the terminal reporter prints for each file
type View int

const (
	// ViewIssues prints issues grouped by category (lint)
	ViewIssues View = iota
	// ViewReport prints stats, readability, domain and category counts (report)
	ViewReport
)

// TerminalReporter outputs results to the terminal with lipgloss styles
type TerminalReporter struct {
	w    io.Writer
	ui   *ui.UI
	view View
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI, view View) *TerminalReporter {
	return &TerminalReporter{w: w, ui: u, view: view}
}

// Report outputs results to the terminal
func (r *TerminalReporter) Report(results []FileResult) error {
	s := r.ui.Styles
	summary := ComputeSummary(results)

	if r.view == ViewIssues && summary.TotalIssues == 0 && !hasNotes(results) {
		fmt.Fprintln(r.w, s.Success.Render(fmt.Sprintf("%s No issues found", s.IconSuccess)))
		return nil
	}

	for _, fr := range results {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Header.Render(filepath.Base(fr.Path)))
		fmt.Fprintln(r.w, s.Path.Render("  "+fr.Path))

		switch r.view {
		case ViewReport:
			r.printReport(fr)
		default:
			r.printIssues(fr)
		}
		r.printNotes(fr)
	}

	r.printSummary(summary)

	if summary.Errors > 0 {
		return fmt.Errorf("lint errors found")
	}
	return nil
}

func hasNotes(results []FileResult) bool {
	for _, fr := range results {
		if fr.Result.Fragment != "" || len(fr.Result.Skipped) > 0 {
			return true
		}
	}
	return false
}

func (r *TerminalReporter) printIssues(fr FileResult) {
	s := r.ui.Styles
	res := fr.Result

	fmt.Fprintf(r.w, "  Score %s  %s\n",
		r.scoreStyle(res.Score).Render(fmt.Sprintf("%.0f", res.Score)),
		s.Subheader.Render(fmt.Sprintf("(%d issues, %d words)", len(res.Issues), res.Stats.Words)))

	for _, cc := range CountByCategory(res.Issues) {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Category.Render(fmt.Sprintf("  %s (%d)", cc.Category, cc.Count)))

		for _, issue := range res.Issues {
			if issue.Category == cc.Category {
				r.printIssue(fr.Path, issue)
			}
		}
	}
}

func (r *TerminalReporter) printIssue(path string, issue rules.Issue) {
	s := r.ui.Styles

	style, icon := r.severityStyle(issue.Severity)

	location := filepath.Base(path)
	if issue.Line > 0 {
		location = fmt.Sprintf("%s:%d", location, issue.Line)
	}

	fmt.Fprintf(r.w, "  %s %s %s\n", style.Render(icon), location, s.Rule.Render("["+issue.Rule+"]"))

	// Plain output marks highlights the same way the JSON report does
	text := issue.HighlightedText("**", "**")
	if s.Enabled() {
		text = issue.RenderHighlights(func(span string) string { return s.Highlight.Render(span) })
	}
	if text == "" {
		text = issue.Text
	}
	fmt.Fprintf(r.w, "    > %s\n", text)
	fmt.Fprintf(r.w, "    %s\n", issue.Suggestion)

	if issue.SuggestedFix != "" {
		fmt.Fprintln(r.w, s.Success.Render("    → "+issue.SuggestedFix))
	}
}

func (r *TerminalReporter) printReport(fr FileResult) {
	s := r.ui.Styles
	res := fr.Result

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "  Overall score   %s\n", r.scoreStyle(res.Score).Render(fmt.Sprintf("%.0f", res.Score)))
	fmt.Fprintf(r.w, "  Domain          %s\n", displayDomain(res.Domain))

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Category.Render("  Statistics"))
	fmt.Fprintf(r.w, "    Paragraphs    %d\n", res.Stats.Paragraphs)
	fmt.Fprintf(r.w, "    Sentences     %d\n", res.Stats.Sentences)
	fmt.Fprintf(r.w, "    Words         %d\n", res.Stats.Words)
	fmt.Fprintf(r.w, "    Characters    %d\n", res.Stats.Characters)
	fmt.Fprintf(r.w, "    Headings      %d\n", res.Stats.Headings)
	fmt.Fprintf(r.w, "    Bullet points %d\n", res.Stats.Bullets)

	m := res.Readability
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Category.Render("  Readability"))
	fmt.Fprintf(r.w, "    Flesch Reading Ease   %s\n", formatMetric(m.FleschReadingEase))
	fmt.Fprintln(r.w, s.Subheader.Render("      "+readability.Describe(m.FleschReadingEase)))
	fmt.Fprintf(r.w, "    Flesch-Kincaid Grade  %s\n", formatMetric(m.FleschKincaidGrade))
	fmt.Fprintf(r.w, "    SMOG Index            %s\n", formatMetric(m.SmogIndex))

	counts := CountByCategory(res.Issues)
	if len(counts) == 0 {
		return
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Category.Render("  Issues"))
	for _, cc := range counts {
		fmt.Fprintf(r.w, "    %-38s %d\n", cc.Category, cc.Count)
	}
}

func (r *TerminalReporter) printNotes(fr FileResult) {
	s := r.ui.Styles

	if fr.Result.Fragment != "" {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Info.Render(fmt.Sprintf("  %s Trailing text without terminal punctuation was not analyzed: %q",
			s.IconInfo, truncate(fr.Result.Fragment, 60))))
	}

	for _, sk := range fr.Result.Skipped {
		fmt.Fprintln(r.w, s.Warning.Render(fmt.Sprintf("  %s Check %s skipped: %v", s.IconWarning, sk.Name, sk.Err)))
	}
}

func (r *TerminalReporter) printSummary(summary Summary) {
	s := r.ui.Styles

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Separator.Render("─────────────────────────────────────"))

	var parts []string
	if summary.Errors > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d errors", summary.Errors)))
	}
	if summary.Warnings > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d warnings", summary.Warnings)))
	}
	if summary.Suggestions > 0 {
		parts = append(parts, s.Suggestion.Render(fmt.Sprintf("%d suggestions", summary.Suggestions)))
	}
	if summary.Info > 0 {
		parts = append(parts, s.Info.Render(fmt.Sprintf("%d info", summary.Info)))
	}

	fmt.Fprintf(r.w, "Found %d issues in %d files", summary.TotalIssues, summary.Files)
	if len(parts) > 0 {
		fmt.Fprintf(r.w, ": %s", strings.Join(parts, ", "))
	}
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "Average score %.0f, lowest %.0f\n", summary.AverageScore, summary.LowestScore)
}

func (r *TerminalReporter) severityStyle(sev rules.Severity) (lipgloss.Style, string) {
	s := r.ui.Styles
	switch sev {
	case rules.Error:
		return s.Error, s.IconError
	case rules.Warning:
		return s.Warning, s.IconWarning
	case rules.Suggestion:
		return s.Suggestion, s.IconSuggestion
	default:
		return s.Info, s.IconInfo
	}
}

func (r *TerminalReporter) scoreStyle(score float64) lipgloss.Style {
	s := r.ui.Styles
	switch {
	case score >= 80:
		return s.Success
	case score >= 50:
		return s.Warning
	default:
		return s.Error
	}
}

func formatMetric(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", v)
}

func displayDomain(domain string) string {
	if domain == "" {
		return domain
	}
	return strings.ToUpper(domain[:1]) + domain[1:]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
