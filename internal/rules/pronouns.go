package rules

import "regexp"

// UnclearPronounRule flags sentences that open with a bare pronoun
type UnclearPronounRule struct{}

func (r *UnclearPronounRule) Name() string {
	return NamePronouns
}

func (r *UnclearPronounRule) Description() string {
	return "Flags sentences starting with a pronoun whose reference may be unclear"
}

func (r *UnclearPronounRule) Config() RuleConfig {
	return RuleConfig{Category: CategoryUnclearPronoun, Severity: Suggestion}
}

var pronounAtStart = regexp.MustCompile(`(?i)^(It|This|That|These|Those|They)\b\s`)

func (r *UnclearPronounRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue

	// The first sentence has nothing earlier to refer to, so it is skipped
	for i := 1; i < len(ctx.Segments.Sentences); i++ {
		issue, _ := ctx.sentenceIssue(i)
		loc := pronounAtStart.FindStringSubmatchIndex(issue.Text)
		if loc == nil {
			continue
		}

		issue.Rule = r.Name()
		issue.Category = CategoryUnclearPronoun
		issue.Severity = Suggestion
		issue.Suggestion = "Starting a sentence with a pronoun can create ambiguity. Consider clarifying what the pronoun refers to."
		issue.Highlights = []Span{{Start: loc[2], End: loc[3]}}
		issues = append(issues, issue)
	}

	return issues, nil
}
