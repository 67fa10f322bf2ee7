// Package readability estimates syllables and computes the Flesch Reading Ease,
// Flesch-Kincaid Grade and SMOG scores.
//
// Scores are NaN when the text has no sentences or no words. Callers treat NaN
// as "insufficient text to score".
package readability

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Metrics holds the three readability scores, each rounded to one decimal
type Metrics struct {
	FleschReadingEase  float64
	FleschKincaidGrade float64
	SmogIndex          float64
}

// Scorable reports whether the metrics were computed from enough text
func (m Metrics) Scorable() bool {
	return !math.IsNaN(m.FleschReadingEase)
}

var (
	hasLetter      = regexp.MustCompile(`[a-zA-Z]`)
	silentEnding   = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingY       = regexp.MustCompile(`^y`)
	syllableGroups = regexp.MustCompile(`[aeiouy]+`)
)

// CountSyllables estimates the syllables in a word. It always returns at least 1.
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	if utf8.RuneCountInString(word) <= 3 {
		return 1
	}

	word = silentEnding.ReplaceAllString(word, "")
	word = leadingY.ReplaceAllString(word, "")

	if n := len(syllableGroups.FindAllStringIndex(word, -1)); n > 0 {
		return n
	}
	return 1
}

// Calculate computes the metrics for words (whitespace tokens) spread over
// sentenceCount sentences. Tokens without a letter are not counted as words.
func Calculate(tokens []string, sentenceCount int) Metrics {
	var words, syllables, complexWords int
	for _, token := range tokens {
		if !hasLetter.MatchString(token) {
			continue
		}
		words++
		n := CountSyllables(token)
		syllables += n
		if n >= 3 {
			complexWords++
		}
	}

	if sentenceCount == 0 || words == 0 {
		nan := math.NaN()
		return Metrics{FleschReadingEase: nan, FleschKincaidGrade: nan, SmogIndex: nan}
	}

	wordsPerSentence := float64(words) / float64(sentenceCount)
	syllablesPerWord := float64(syllables) / float64(words)

	return Metrics{
		FleschReadingEase:  round1(206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord),
		FleschKincaidGrade: round1(0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59),
		SmogIndex:          round1(1.043*math.Sqrt(float64(complexWords)*(30/float64(sentenceCount))) + 3.1291),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Describe returns a reader-facing description of a Flesch Reading Ease score
func Describe(fleschReadingEase float64) string {
	switch score := fleschReadingEase; {
	case math.IsNaN(score):
		return "Not enough text to score."
	case score >= 90:
		return "Very easy to read. Easily understood by an average 11-year-old student."
	case score >= 80:
		return "Easy to read. Conversational English for consumers."
	case score >= 70:
		return "Fairly easy to read."
	case score >= 60:
		return "Plain English. Easily understood by 13- to 15-year-old students."
	case score >= 50:
		return "Fairly difficult to read."
	case score >= 30:
		return "Difficult to read. Best understood by college graduates."
	default:
		return "Very difficult to read. Best understood by university graduates."
	}
}
