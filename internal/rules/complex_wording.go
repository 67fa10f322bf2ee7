package rules

import "fmt"

// ComplexWordingRule suggests plain replacements for wordy or jargon terms
type ComplexWordingRule struct{}

func (r *ComplexWordingRule) Name() string {
	return NameComplexWords
}

func (r *ComplexWordingRule) Description() string {
	return "Suggests simpler alternatives for complex words and phrases"
}

func (r *ComplexWordingRule) Config() RuleConfig {
	return RuleConfig{Category: CategoryComplexWording, Severity: Suggestion}
}

var complexTerms = compileTerms([][2]string{
	{"utilize", "use"},
	{"implementation", "use"},
	{"functionality", "feature"},
	{"leverage", "use"},
	{"facilitate", "help"},
	{"endeavor", "try"},
	{"commence", "start"},
	{"terminate", "end"},
	{"subsequently", "then"},
	{"aforementioned", "this"},
	{"transmit", "send"},
	{"obtain", "get"},
	{"regarding", "about"},
	{"sufficient", "enough"},
	{"numerous", "many"},
	{"initiate", "start"},
	{"additional", "more"},
	{"demonstrate", "show"},
	{"assist", "help"},
	{"in order to", "to"},
})

// Run reports one issue per complex term found, anchored on the first sentence
// that uses it. The fix substitutes the plain term throughout that sentence.
// A term that only occurs outside any sentence is reported on its own.
func (r *ComplexWordingRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue

	for _, t := range complexTerms {
		if !t.re.MatchString(ctx.Text()) {
			continue
		}

		suggestion := fmt.Sprintf("Consider using %q instead of %q for simplicity.", t.Replacement, t.Term)
		found := false

		for i := range ctx.Segments.Sentences {
			if !t.re.MatchString(ctx.Segments.Sentences[i].Text) {
				continue
			}
			found = true

			issue, offset := ctx.sentenceIssue(i)
			fixed := t.re.ReplaceAllStringFunc(issue.Text, func(m string) string {
				return matchCase(m, t.Replacement)
			})

			issue.Rule = r.Name()
			issue.Category = CategoryComplexWording
			issue.Severity = Suggestion
			issue.Suggestion = suggestion
			issue.Highlights = spans(t.re, issue.Text)
			issue.SuggestedFix = fixed
			issue.Fix = &Fix{
				Description: fmt.Sprintf("Replace %q with %q", t.Term, t.Replacement),
				Edits:       []Edit{{Offset: offset, Old: issue.Text, New: fixed}},
			}
			issues = append(issues, issue)
			break
		}

		if !found {
			issues = append(issues, Issue{
				Rule:         r.Name(),
				Category:     CategoryComplexWording,
				Severity:     Suggestion,
				Text:         quoted(t.Term),
				Suggestion:   suggestion,
				Highlights:   quotedSpan(t.Term),
				SuggestedFix: fmt.Sprintf("Use %q instead", t.Replacement),
				Line:         ctx.firstLine(t.re),
			})
		}
	}

	return issues, nil
}
