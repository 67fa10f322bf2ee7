package rules

import (
	"fmt"
	"regexp"
)

// UndefinedAcronymRule flags acronyms that are never expanded in the document
type UndefinedAcronymRule struct{}

func (r *UndefinedAcronymRule) Name() string {
	return NameAcronyms
}

func (r *UndefinedAcronymRule) Description() string {
	return "Flags acronyms used without a parenthetical definition"
}

func (r *UndefinedAcronymRule) Config() RuleConfig {
	return RuleConfig{Category: CategoryUndefinedAcronym, Severity: Warning}
}

var acronymPattern = regexp.MustCompile(`\b[A-Z]{2,5}\b`)

// isDefined accepts "Expanded Term (ACR)" or "ACR (expanded term)" anywhere in text
func isDefined(acronym, text string) bool {
	q := regexp.QuoteMeta(acronym)
	termFirst := regexp.MustCompile(`(?i)\w+(?:\s+\w+){0,5}\s+\(` + q + `\)`)
	acronymFirst := regexp.MustCompile(`(?i)` + q + `\s+\([\w\s]+\)`)
	return termFirst.MatchString(text) || acronymFirst.MatchString(text)
}

func (r *UndefinedAcronymRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue
	text := ctx.Text()
	seen := make(map[string]bool)

	for _, acronym := range acronymPattern.FindAllString(text, -1) {
		if seen[acronym] {
			continue
		}
		seen[acronym] = true

		if isDefined(acronym, text) {
			continue
		}

		i := ctx.Segments.FindSentence(acronym)
		if i < 0 {
			continue
		}

		issue, _ := ctx.sentenceIssue(i)
		issue.Rule = r.Name()
		issue.Category = CategoryUndefinedAcronym
		issue.Severity = Warning
		issue.Suggestion = fmt.Sprintf("The acronym %q is used without being defined. "+
			"Define acronyms on first use, e.g., \"Hypertext Markup Language (HTML)\".", acronym)
		issue.Highlights = spans(wholeWordCase(acronym), issue.Text)
		issues = append(issues, issue)
	}

	return issues, nil
}
