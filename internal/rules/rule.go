package rules

import (
	"sort"
	"strings"

	"github.com/pthm/twlint/internal/config"
	"github.com/pthm/twlint/internal/parser"
)

// Severity represents the severity level of an issue
type Severity int

const (
	Info Severity = iota
	Suggestion
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Suggestion:
		return "suggestion"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Category is the display label for a kind of issue
type Category string

const (
	CategoryPassiveVoice            Category = "Passive Voice"
	CategoryLongSentence            Category = "Long Sentence"
	CategoryComplexWording          Category = "Complex Wording"
	CategoryUnclearPronoun          Category = "Unclear Pronoun Reference"
	CategoryWeInstructions          Category = `Use of "We" in Instructions`
	CategoryAmbiguousTerm           Category = "Ambiguous Term"
	CategoryInconsistentTerminology Category = "Inconsistent Terminology"
	CategoryInconsistentHeadings    Category = "Inconsistent Heading Capitalization"
	CategoryInconsistentBullets     Category = "Inconsistent Bullet Point Structure"
	CategoryUndefinedAcronym        Category = "Undefined Acronym"
	CategoryGenderedLanguage        Category = "Gendered Language"
	CategoryNonImperative           Category = "Non-Imperative Instructions"
)

// Span is a byte range [Start, End) within an issue's Text
type Span struct {
	Start int
	End   int
}

// Fix represents a mechanical rewrite of the source
type Fix struct {
	Description string
	Edits       []Edit
}

// Edit replaces Old at byte Offset of the analyzed text with New
type Edit struct {
	Offset int
	Old    string
	New    string
}

// Issue represents a style guideline violation
type Issue struct {
	Rule     string
	Category Category
	Severity Severity
	// Text is the offending excerpt, usually the trimmed sentence
	Text       string
	Suggestion string
	// Highlights mark the offending spans within Text
	Highlights []Span
	// SuggestedFix is advisory replacement text
	SuggestedFix string
	// Line is the 1-based line where Text starts, 0 when unknown
	Line int
	Fix  *Fix
}

// HighlightedText returns Text with every highlight wrapped in open and close.
// It returns "" when the issue has no highlights.
func (i Issue) HighlightedText(open, close string) string {
	return i.RenderHighlights(func(s string) string { return open + s + close })
}

// RenderHighlights returns Text with every highlighted span passed through
// mark. Overlapping or out-of-range spans are ignored. It returns "" when the
// issue has no highlights.
func (i Issue) RenderHighlights(mark func(string) string) string {
	if len(i.Highlights) == 0 {
		return ""
	}

	spans := append([]Span(nil), i.Highlights...)
	sort.Slice(spans, func(a, b int) bool { return spans[a].Start < spans[b].Start })

	var sb strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.Start < pos || sp.End > len(i.Text) || sp.Start > sp.End {
			continue
		}
		sb.WriteString(i.Text[pos:sp.Start])
		sb.WriteString(mark(i.Text[sp.Start:sp.End]))
		pos = sp.End
	}
	sb.WriteString(i.Text[pos:])
	return sb.String()
}

// AnalysisContext provides the segmented text and configuration to rules.
// Rules must treat it as read-only.
type AnalysisContext struct {
	Segments *parser.Segments
	Config   config.Config
}

// NewContext segments text for analysis
func NewContext(text string, cfg config.Config) *AnalysisContext {
	return &AnalysisContext{Segments: parser.Segment(text), Config: cfg}
}

// Text returns the full analyzed text
func (ctx *AnalysisContext) Text() string {
	return ctx.Segments.Text
}

// Sentence returns the i-th sentence trimmed of surrounding whitespace, with
// the byte offset of the trimmed text
func (ctx *AnalysisContext) Sentence(i int) (string, int) {
	s := ctx.Segments.Sentences[i]
	lead := len(s.Text) - len(strings.TrimLeft(s.Text, " \t\r\n\v\f"))
	return strings.TrimSpace(s.Text), s.Start + lead
}

// sentenceIssue builds an issue whose Text is the i-th trimmed sentence
func (ctx *AnalysisContext) sentenceIssue(i int) (Issue, int) {
	text, offset := ctx.Sentence(i)
	return Issue{Text: text, Line: ctx.Segments.LineAt(offset)}, offset
}

// RuleConfig defines how a rule should be invoked
type RuleConfig struct {
	// Category is the kind of issue the rule emits
	Category Category

	// Severity is the default severity of emitted issues
	Severity Severity
}

// Rule defines the interface for style checks.
// Rules are independent: each reads the context and returns its own issues.
type Rule interface {
	// Name returns the unique identifier used in configuration
	Name() string

	// Description returns a human-readable description
	Description() string

	// Config returns the rule's configuration
	Config() RuleConfig

	// Run executes the rule and returns any issues found
	Run(ctx *AnalysisContext) ([]Issue, error)
}
