package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// TerminologyRule flags documents that use both spellings of a term
type TerminologyRule struct{}

func (r *TerminologyRule) Name() string {
	return NameTerminology
}

func (r *TerminologyRule) Description() string {
	return "Flags pairs of interchangeable terms that are both used in one document"
}

func (r *TerminologyRule) Config() RuleConfig {
	return RuleConfig{Category: CategoryInconsistentTerminology, Severity: Warning}
}

type termPair struct {
	a, b     string
	reA, reB *regexp.Regexp
}

var termPairs = compilePairs([][2]string{
	{"click", "tap"},
	{"app", "application"},
	{"login", "log in"},
	{"setup", "set up"},
	{"website", "web site"},
	{"dialog", "dialogue"},
	{"cancel", "abort"},
	{"OK", "okay"},
	{"ID", "id"},
	{"e-mail", "email"},
})

// compilePairs matches case-insensitively, except for pairs that differ only
// in case, which would otherwise match each other
func compilePairs(pairs [][2]string) []termPair {
	out := make([]termPair, len(pairs))
	for i, p := range pairs {
		tp := termPair{a: p[0], b: p[1]}
		if strings.EqualFold(p[0], p[1]) {
			tp.reA, tp.reB = wholeWordCase(p[0]), wholeWordCase(p[1])
		} else {
			tp.reA, tp.reB = wholeWord(p[0]), wholeWord(p[1])
		}
		out[i] = tp
	}
	return out
}

func (r *TerminologyRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue
	text := ctx.Text()

	for _, p := range termPairs {
		if !p.reA.MatchString(text) || !p.reB.MatchString(text) {
			continue
		}

		issues = append(issues, Issue{
			Rule:       r.Name(),
			Category:   CategoryInconsistentTerminology,
			Severity:   Warning,
			Text:       quoted(p.a) + " and " + quoted(p.b),
			Suggestion: fmt.Sprintf("Use either %q or %q consistently throughout the document, not both.", p.a, p.b),
			Line:       ctx.firstLine(p.reB),
		})
	}

	return issues, nil
}
