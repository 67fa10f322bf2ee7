package rules

import (
	"regexp"
	"strings"
)

// ImperativeMoodRule flags instructions that are not phrased as direct commands
type ImperativeMoodRule struct{}

func (r *ImperativeMoodRule) Name() string {
	return NameImperative
}

func (r *ImperativeMoodRule) Description() string {
	return `Flags instructions phrased with "should" or "must" instead of the imperative mood`
}

func (r *ImperativeMoodRule) Config() RuleConfig {
	return RuleConfig{Category: CategoryNonImperative, Severity: Suggestion}
}

var instructionKeywords = compileList([]string{
	"should", "must", "need to", "have to", "it is necessary to", "it is important to",
})

var imperativeVerbs = map[string]bool{
	"click": true, "select": true, "choose": true, "enter": true, "type": true,
	"go": true, "navigate": true, "open": true, "close": true, "save": true,
	"delete": true, "create": true, "update": true, "install": true, "download": true,
	"upload": true, "run": true, "execute": true, "start": true, "stop": true,
	"restart": true, "configure": true, "set": true, "enable": true, "disable": true,
	"check": true, "verify": true, "ensure": true, "make": true, "build": true,
	"compile": true, "deploy": true,
}

var edgePunct = regexp.MustCompile(`^[^\w]+|[^\w]+$`)

// firstWord returns the lower-cased first word with surrounding punctuation removed
func firstWord(sentence string) string {
	fields := strings.Fields(sentence)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(edgePunct.ReplaceAllString(fields[0], ""))
}

func (r *ImperativeMoodRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue

	for i := range ctx.Segments.Sentences {
		issue, _ := ctx.sentenceIssue(i)

		var highlights []Span
		for _, k := range instructionKeywords {
			highlights = append(highlights, spans(k.re, issue.Text)...)
		}
		if len(highlights) == 0 || imperativeVerbs[firstWord(issue.Text)] {
			continue
		}

		issue.Rule = r.Name()
		issue.Category = CategoryNonImperative
		issue.Severity = Suggestion
		issue.Suggestion = `For instructions, use imperative mood (direct commands) instead of phrases like "should" or "must". ` +
			`For example, use "Click the button" instead of "You should click the button".`
		issue.Highlights = highlights
		issues = append(issues, issue)
	}

	return issues, nil
}
