// Package classifier detects the topical domain of a text by counting keyword
// occurrences against per-domain lexicons.
package classifier

import (
	"regexp"
	"strings"
)

// General is returned when no domain has enough evidence
const General = "general"

// MinEvidence is the keyword count a domain must exceed to be selected
const MinEvidence = 3

// Lexicon is the keyword set for one domain
type Lexicon struct {
	Domain   string   `yaml:"domain" mapstructure:"domain" json:"domain" validate:"required"`
	Keywords []string `yaml:"keywords" mapstructure:"keywords" json:"keywords" validate:"min=1"`
}

// Classifier scores text against an ordered list of lexicons.
// Earlier lexicons win ties.
type Classifier struct {
	lexicons []compiledLexicon
}

type compiledLexicon struct {
	domain   string
	patterns []*regexp.Regexp
}

// New creates a classifier for the given lexicons in priority order
func New(lexicons ...Lexicon) *Classifier {
	c := &Classifier{lexicons: make([]compiledLexicon, 0, len(lexicons))}
	for _, lex := range lexicons {
		cl := compiledLexicon{domain: lex.Domain}
		for _, kw := range lex.Keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			cl.patterns = append(cl.patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		c.lexicons = append(c.lexicons, cl)
	}
	return c
}

// Default returns a classifier for the built-in lexicons plus any extras
func Default(extra ...Lexicon) *Classifier {
	return New(append(DefaultLexicons(), extra...)...)
}

// Scores returns the whole-word, case-insensitive keyword count per domain
func (c *Classifier) Scores(text string) map[string]int {
	scores := make(map[string]int, len(c.lexicons))
	for _, lex := range c.lexicons {
		scores[lex.domain] += lex.count(text)
	}
	return scores
}

// Classify returns the domain with the strictly highest count, or General when
// that count does not exceed MinEvidence
func (c *Classifier) Classify(text string) string {
	best, bestCount := General, 0
	for _, lex := range c.lexicons {
		if n := lex.count(text); n > bestCount {
			best, bestCount = lex.domain, n
		}
	}

	if bestCount <= MinEvidence {
		return General
	}
	return best
}

func (cl compiledLexicon) count(text string) int {
	n := 0
	for _, re := range cl.patterns {
		n += len(re.FindAllStringIndex(text, -1))
	}
	return n
}
