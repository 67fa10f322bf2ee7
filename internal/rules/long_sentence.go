package rules

import (
	"fmt"
	"strings"
)

// LongSentenceRule flags sentences above the configured word threshold
type LongSentenceRule struct{}

func (r *LongSentenceRule) Name() string {
	return NameLongSentences
}

func (r *LongSentenceRule) Description() string {
	return "Flags sentences with more words than the long-sentence threshold"
}

func (r *LongSentenceRule) Config() RuleConfig {
	return RuleConfig{Category: CategoryLongSentence, Severity: Warning}
}

func (r *LongSentenceRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue

	threshold := ctx.Config.Thresholds.LongSentence
	if threshold <= 0 {
		threshold = 25 // Default
	}

	for i, sentence := range ctx.Segments.Sentences {
		words := len(strings.Fields(sentence.Text))
		if words <= threshold {
			continue
		}

		issue, _ := ctx.sentenceIssue(i)
		issue.Rule = r.Name()
		issue.Category = CategoryLongSentence
		issue.Severity = Warning
		issue.Suggestion = fmt.Sprintf("This sentence has %d words. Consider breaking it into smaller sentences for better readability.", words)
		issues = append(issues, issue)
	}

	return issues, nil
}
