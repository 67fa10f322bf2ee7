package rules

import (
	"regexp"
	"strings"
)

// PassiveVoiceRule flags be-verb + past participle constructions
type PassiveVoiceRule struct{}

func (r *PassiveVoiceRule) Name() string {
	return NamePassiveVoice
}

func (r *PassiveVoiceRule) Description() string {
	return "Flags passive voice and suggests an active rewrite when the agent is named"
}

func (r *PassiveVoiceRule) Config() RuleConfig {
	return RuleConfig{Category: CategoryPassiveVoice, Severity: Suggestion}
}

// Group 1 of each pattern captures the participle
var passivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:am|is|are|was|were|be|been|being)\s+(\w+ed|built|done|made|said|known|seen|found)\b`),
	regexp.MustCompile(`(?i)\b(?:has|have|had)\s+been\s+(\w+ed|built|done|made|said|known|seen|found)\b`),
}

var (
	byAgent  = regexp.MustCompile(`(?i)\bby\s+([^,.;:]+)`)
	byClause = regexp.MustCompile(`(?i)\s+by\s+[^,.;:]+`)
)

const (
	passiveSuggestion = "Use active voice instead of passive voice. Active voice is more direct and easier to read."
	passiveGenericFix = "Consider rewriting in active voice format: 'Subject verb object' instead of 'Object is verbed by subject'"
)

func (r *PassiveVoiceRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue
	text := ctx.Text()

	for _, pattern := range passivePatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
			construction := text[m[0]:m[1]]
			verb := text[m[2]:m[3]]

			idx := ctx.Segments.FindSentence(construction)
			if idx < 0 {
				continue
			}

			issue, _ := ctx.sentenceIssue(idx)
			issue.Rule = r.Name()
			issue.Category = CategoryPassiveVoice
			issue.Severity = Suggestion
			issue.Suggestion = passiveSuggestion
			if at := strings.Index(issue.Text, construction); at >= 0 {
				issue.Highlights = []Span{{Start: at, End: at + len(construction)}}
			}
			issue.SuggestedFix = activeRewrite(issue.Text, construction, verb)

			issues = append(issues, issue)
		}
	}

	return issues, nil
}

// activeRewrite reorders "object <construction> by agent" into "agent verb object".
// The result is advisory and can be ungrammatical on multi-clause sentences.
func activeRewrite(sentence, construction, verb string) string {
	parts := strings.Split(sentence, construction)
	if len(parts) != 2 {
		return passiveGenericFix
	}

	object := strings.TrimSpace(parts[0])
	after := strings.TrimSpace(parts[1])

	by := byAgent.FindStringSubmatch(after)
	if by == nil {
		return passiveGenericFix
	}

	agent := strings.TrimSpace(by[1])
	fix := collapseSpace(agent + " " + verb + " " + object)

	if loc := byClause.FindStringIndex(fix); loc != nil {
		fix = fix[:loc[0]] + fix[loc[1]:]
	}

	if fix == "" {
		return passiveGenericFix
	}
	return fix
}
