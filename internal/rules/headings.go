package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// HeadingCapitalizationRule flags documents that mix title case and sentence case headings
type HeadingCapitalizationRule struct{}

func (r *HeadingCapitalizationRule) Name() string {
	return NameHeadings
}

func (r *HeadingCapitalizationRule) Description() string {
	return "Flags documents that mix title case and sentence case headings"
}

func (r *HeadingCapitalizationRule) Config() RuleConfig {
	return RuleConfig{Category: CategoryInconsistentHeadings, Severity: Suggestion}
}

var (
	capitalized   = regexp.MustCompile(`^[A-Z]`)
	headingMarker = regexp.MustCompile(`^#+\s*`)
)

func (r *HeadingCapitalizationRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	headings := ctx.Segments.Headings
	if len(headings) < 2 {
		return nil, nil
	}

	var title, sentence string
	for _, h := range headings {
		words := headingWords(h)
		if title == "" && isTitleCase(words) {
			title = strings.TrimSpace(h)
		}
		if sentence == "" && isSentenceCase(words) {
			sentence = strings.TrimSpace(h)
		}
	}

	if title == "" || sentence == "" {
		return nil, nil
	}

	text := fmt.Sprintf("Mixed heading styles: %s vs %s", quoted(title), quoted(sentence))
	titleAt := strings.Index(text, quoted(title))
	sentenceAt := strings.LastIndex(text, quoted(sentence))

	return []Issue{{
		Rule:     r.Name(),
		Category: CategoryInconsistentHeadings,
		Severity: Suggestion,
		Text:     text,
		Suggestion: "Use consistent capitalization for all headings. Choose either title case (Most Words Capitalized) " +
			"or sentence case (Only first word capitalized) and apply it consistently.",
		Highlights: []Span{
			{Start: titleAt + 1, End: titleAt + 1 + len(title)},
			{Start: sentenceAt + 1, End: sentenceAt + 1 + len(sentence)},
		},
		Line: ctx.lineOf(title),
	}}, nil
}

// headingWords drops any markdown marker before splitting
func headingWords(heading string) []string {
	return strings.Fields(headingMarker.ReplaceAllString(strings.TrimSpace(heading), ""))
}

// isTitleCase holds when more than 70% of the heading's words are capitalized
func isTitleCase(words []string) bool {
	if len(words) == 0 {
		return false
	}
	return float64(countCapitalized(words)) > float64(len(words))*0.7
}

// isSentenceCase holds when only the first word is reliably capitalized
func isSentenceCase(words []string) bool {
	if len(words) < 2 || !capitalized.MatchString(words[0]) {
		return false
	}
	return float64(countCapitalized(words[1:])) < float64(len(words))*0.3
}

func countCapitalized(words []string) int {
	n := 0
	for _, w := range words {
		if capitalized.MatchString(w) {
			n++
		}
	}
	return n
}
