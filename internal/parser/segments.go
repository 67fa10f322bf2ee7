package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Sentence is a terminal-punctuated run of text and its byte offset in the source
type Sentence struct {
	Text  string
	Start int
}

// End returns the byte offset just past the sentence
func (s Sentence) End() int {
	return s.Start + len(s.Text)
}

// Segments is a read-only segmented view of a text
type Segments struct {
	Text       string
	Paragraphs []string
	Sentences  []Sentence
	Lines      []string
	Headings   []string
	Bullets    []string
	Words      []string

	// Fragment is trailing text after the last terminal punctuation.
	// It is not a sentence and is not counted anywhere.
	Fragment string

	lineStarts []int
}

var (
	paragraphBreak  = regexp.MustCompile(`\n\s*\n`)
	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)
	trailingPunct   = regexp.MustCompile(`[.,:;]$`)
	allCapsLine     = regexp.MustCompile(`^[A-Z][^a-z]*$`)
	titleLikeLine   = regexp.MustCompile(`^[A-Z][a-z].*[A-Za-z0-9]$`)
	bulletLine      = regexp.MustCompile(`^[-*•]\s+\S`)
	bulletMarker    = regexp.MustCompile(`^[-*•]\s+`)
)

// Segment splits text into every view the checks consume
func Segment(text string) *Segments {
	lines := SplitLines(text)
	sentences, fragment := splitSentences(text)

	return &Segments{
		Text:       text,
		Paragraphs: SplitParagraphs(text),
		Sentences:  sentences,
		Lines:      lines,
		Headings:   ExtractHeadings(lines),
		Bullets:    ExtractBullets(lines),
		Words:      TokenizeWords(text),
		Fragment:   fragment,
		lineStarts: lineStarts(text),
	}
}

// SplitParagraphs splits on blank lines. Whitespace-only text has no paragraphs.
func SplitParagraphs(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return paragraphBreak.Split(text, -1)
}

// SplitSentences returns the text of every terminal-punctuated sentence, left to right.
// Trailing text without terminal punctuation is dropped.
func SplitSentences(text string) []string {
	sentences, _ := splitSentences(text)
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out
}

func splitSentences(text string) ([]Sentence, string) {
	locs := sentencePattern.FindAllStringIndex(text, -1)
	sentences := make([]Sentence, 0, len(locs))
	end := 0
	for _, loc := range locs {
		sentences = append(sentences, Sentence{Text: text[loc[0]:loc[1]], Start: loc[0]})
		end = loc[1]
	}
	return sentences, strings.TrimSpace(text[end:])
}

// SplitLines splits on newline
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// ExtractHeadings returns lines that look like headings.
// This is a heuristic, not a markdown parser.
func ExtractHeadings(lines []string) []string {
	var headings []string
	for _, line := range lines {
		if IsHeading(line) {
			headings = append(headings, line)
		}
	}
	return headings
}

// IsHeading reports whether a single line qualifies as a heading
func IsHeading(line string) bool {
	t := strings.TrimSpace(line)
	if len(t) == 0 || utf8.RuneCountInString(t) >= 100 {
		return false
	}
	if trailingPunct.MatchString(t) {
		return false
	}
	return strings.HasPrefix(t, "#") || allCapsLine.MatchString(t) || titleLikeLine.MatchString(t)
}

// ExtractBullets returns the content of bullet lines with the leading marker stripped
func ExtractBullets(lines []string) []string {
	var bullets []string
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if bulletLine.MatchString(t) {
			bullets = append(bullets, strings.TrimSpace(bulletMarker.ReplaceAllString(t, "")))
		}
	}
	return bullets
}

// TokenizeWords splits on whitespace runs
func TokenizeWords(text string) []string {
	return strings.Fields(text)
}

// LineAt returns the 1-based line number containing the byte offset
func (s *Segments) LineAt(offset int) int {
	if offset < 0 {
		return 0
	}
	lo, hi := 0, len(s.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}

// FindSentence returns the index of the first sentence containing substr, or -1
func (s *Segments) FindSentence(substr string) int {
	for i, sentence := range s.Sentences {
		if strings.Contains(sentence.Text, substr) {
			return i
		}
	}
	return -1
}

func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
