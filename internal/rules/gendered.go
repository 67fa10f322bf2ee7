package rules

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// GenderedLanguageRule suggests gender-neutral alternatives
type GenderedLanguageRule struct{}

func (r *GenderedLanguageRule) Name() string {
	return NameGendered
}

func (r *GenderedLanguageRule) Description() string {
	return "Suggests gender-neutral alternatives for gendered terms and pronoun pairs"
}

func (r *GenderedLanguageRule) Config() RuleConfig {
	return RuleConfig{Category: CategoryGenderedLanguage, Severity: Suggestion}
}

var genderedTerms = compileTerms([][2]string{
	{"businessman", "businessperson"},
	{"businesswoman", "businessperson"},
	{"chairman", "chairperson"},
	{"chairwoman", "chairperson"},
	{"fireman", "firefighter"},
	{"policeman", "police officer"},
	{"stewardess", "flight attendant"},
	{"mailman", "mail carrier"},
	{"mankind", "humanity"},
	{"manpower", "workforce"},
	{"man-made", "artificial"},
	{"manmade", "artificial"},
	{"salesman", "salesperson"},
	{"saleswoman", "salesperson"},
	{"spokesman", "spokesperson"},
	{"spokeswoman", "spokesperson"},
	{"steward", "flight attendant"},
	{"waitress", "server"},
	{"waiter", "server"},
})

var pronounPairs = compileTerms([][2]string{
	{"he or she", "they"},
	{"his or her", "their"},
	{"him or her", "them"},
})

// Run reports each term once. Single-word terms carry an edit for every
// occurrence; pronoun pairs do not, since the verb may need to agree.
func (r *GenderedLanguageRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue
	text := ctx.Text()

	for _, t := range genderedTerms {
		locs := t.re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}

		edits := make([]Edit, len(locs))
		for i, loc := range locs {
			old := text[loc[0]:loc[1]]
			edits[i] = Edit{Offset: loc[0], Old: old, New: matchCase(old, t.Replacement)}
		}

		issues = append(issues, Issue{
			Rule:         r.Name(),
			Category:     CategoryGenderedLanguage,
			Severity:     Suggestion,
			Text:         quoted(t.Term),
			Suggestion:   fmt.Sprintf("Consider using the gender-neutral term %q instead of %q.", t.Replacement, t.Term),
			Highlights:   quotedSpan(t.Term),
			SuggestedFix: t.Replacement,
			Line:         ctx.Segments.LineAt(locs[0][0]),
			Fix: &Fix{
				Description: fmt.Sprintf("Replace %q with %q", t.Term, t.Replacement),
				Edits:       edits,
			},
		})
	}

	for _, p := range pronounPairs {
		if !p.re.MatchString(text) {
			continue
		}

		issues = append(issues, Issue{
			Rule:         r.Name(),
			Category:     CategoryGenderedLanguage,
			Severity:     Suggestion,
			Text:         quoted(p.Term),
			Suggestion:   fmt.Sprintf("Consider using the singular %q instead of %q for inclusive language.", p.Replacement, p.Term),
			Highlights:   quotedSpan(p.Term),
			SuggestedFix: p.Replacement,
			Line:         ctx.firstLine(p.re),
		})
	}

	return issues, nil
}

// matchCase capitalizes replacement when original starts with an upper-case letter
func matchCase(original, replacement string) string {
	r, _ := utf8.DecodeRuneInString(original)
	if !unicode.IsUpper(r) {
		return replacement
	}
	if strings.ToUpper(original) == original && utf8.RuneCountInString(original) > 1 {
		return strings.ToUpper(replacement)
	}
	first, size := utf8.DecodeRuneInString(replacement)
	return string(unicode.ToUpper(first)) + replacement[size:]
}
