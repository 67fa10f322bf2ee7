package analyzer

import (
	"math"
	"unicode/utf8"

	"github.com/pthm/twlint/internal/parser"
)

// Stats contains the structural counts of an analyzed text
type Stats struct {
	Paragraphs int
	Sentences  int
	Words      int
	Characters int
	Headings   int
	Bullets    int
}

// ComputeStats counts the segments of a text. Characters are counted as runes.
func ComputeStats(seg *parser.Segments) Stats {
	return Stats{
		Paragraphs: len(seg.Paragraphs),
		Sentences:  len(seg.Sentences),
		Words:      len(seg.Words),
		Characters: utf8.RuneCountInString(seg.Text),
		Headings:   len(seg.Headings),
		Bullets:    len(seg.Bullets),
	}
}

// wordsPerScorePoint is how many words one issue is weighed against
const wordsPerScorePoint = 20

// Score derives a 0-100 quality score from the issue count and text length.
// Text without words scores 0.
func Score(issues, words int) float64 {
	if words <= 0 {
		return 0
	}
	score := 100 - float64(issues)*100/(float64(words)/wordsPerScorePoint)
	return math.Min(100, math.Max(0, score))
}
