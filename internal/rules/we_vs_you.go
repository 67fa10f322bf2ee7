package rules

import "regexp"

// WeVsYouRule flags instructions phrased with "we" instead of "you"
type WeVsYouRule struct{}

func (r *WeVsYouRule) Name() string {
	return NameWeVsYou
}

func (r *WeVsYouRule) Description() string {
	return `Flags instructions that say "we" where "you" addresses the reader directly`
}

func (r *WeVsYouRule) Config() RuleConfig {
	return RuleConfig{Category: CategoryWeInstructions, Severity: Suggestion}
}

var weInstruction = regexp.MustCompile(`(?i)\bwe\b.*?\b(can|should|must|need to|have to)\b`)

func (r *WeVsYouRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue

	for i := range ctx.Segments.Sentences {
		issue, _ := ctx.sentenceIssue(i)
		loc := weInstruction.FindStringIndex(issue.Text)
		if loc == nil {
			continue
		}

		issue.Rule = r.Name()
		issue.Category = CategoryWeInstructions
		issue.Severity = Suggestion
		issue.Suggestion = `For instructions, use "you" instead of "we" to directly address the reader.`
		issue.Highlights = []Span{{Start: loc[0], End: loc[1]}}
		issues = append(issues, issue)
	}

	return issues, nil
}
