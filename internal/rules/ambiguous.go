package rules

import "fmt"

// AmbiguousTermRule flags vague quantifiers and hedges
type AmbiguousTermRule struct{}

func (r *AmbiguousTermRule) Name() string {
	return NameAmbiguous
}

func (r *AmbiguousTermRule) Description() string {
	return "Flags vague terms and hedges that could be more specific"
}

func (r *AmbiguousTermRule) Config() RuleConfig {
	return RuleConfig{Category: CategoryAmbiguousTerm, Severity: Info}
}

var ambiguousTerms = compileList([]string{
	"etc", "and so on", "and/or", "various", "some", "several", "many",
	"a number of", "few", "a lot", "just", "only", "quite", "fairly",
	"actually", "really", "basically", "simply",
})

// Run reports each distinct term once, however often it appears
func (r *AmbiguousTermRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue

	for _, t := range ambiguousTerms {
		if !t.re.MatchString(ctx.Text()) {
			continue
		}

		issues = append(issues, Issue{
			Rule:       r.Name(),
			Category:   CategoryAmbiguousTerm,
			Severity:   Info,
			Text:       quoted(t.Term),
			Suggestion: fmt.Sprintf("The term %q can be ambiguous. Consider using more specific language.", t.Term),
			Line:       ctx.firstLine(t.re),
		})
	}

	return issues, nil
}
