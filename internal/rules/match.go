package rules

import (
	"regexp"
	"strings"
)

// term is a lexicon entry with an optional replacement
type term struct {
	Term        string
	Replacement string
	re          *regexp.Regexp
}

// wholeWord compiles a case-insensitive pattern anchored to word boundaries
func wholeWord(s string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s) + `\b`)
}

// wholeWordCase compiles a case-sensitive whole-word pattern
func wholeWordCase(s string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`)
}

// compileTerms builds a matcher table from ordered term/replacement pairs
func compileTerms(pairs [][2]string) []term {
	terms := make([]term, len(pairs))
	for i, p := range pairs {
		terms[i] = term{Term: p[0], Replacement: p[1], re: wholeWord(p[0])}
	}
	return terms
}

// compileList builds a matcher table from a plain term list
func compileList(list []string) []term {
	terms := make([]term, len(list))
	for i, s := range list {
		terms[i] = term{Term: s, re: wholeWord(s)}
	}
	return terms
}

// spans returns every match of re in text as highlight spans
func spans(re *regexp.Regexp, text string) []Span {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Span, len(locs))
	for i, loc := range locs {
		out[i] = Span{Start: loc[0], End: loc[1]}
	}
	return out
}

// firstLine returns the line of re's first match in the analyzed text, or 0
func (ctx *AnalysisContext) firstLine(re *regexp.Regexp) int {
	loc := re.FindStringIndex(ctx.Text())
	if loc == nil {
		return 0
	}
	return ctx.Segments.LineAt(loc[0])
}

// quoted renders a term the way issue texts cite it
func quoted(s string) string {
	return `"` + s + `"`
}

// quotedSpan highlights the whole term inside its quotes
func quotedSpan(s string) []Span {
	return []Span{{Start: 1, End: 1 + len(s)}}
}

var spaceRun = regexp.MustCompile(`\s+`)

// collapseSpace folds whitespace runs to single spaces and trims
func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// lineOf returns the line where s first occurs in the analyzed text, or 0
func (ctx *AnalysisContext) lineOf(s string) int {
	i := strings.Index(ctx.Text(), s)
	if i < 0 {
		return 0
	}
	return ctx.Segments.LineAt(i)
}
