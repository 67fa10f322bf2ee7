package readability

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"cat", 1},
		{"a", 1},
		{"The", 1},
		{"table", 2},
		{"make", 1},
		{"played", 1},
		{"yellow", 2},
		{"beautiful", 3},
		{"readability", 5},
		{"rhythm", 1},
		{"HTML", 1},
		{"Documentation", 5},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountSyllables(tt.word))
		})
	}
}

func TestCountSyllables_AtLeastOne(t *testing.T) {
	for _, word := range []string{"", "----", "1234", "xyzzy", "pfft"} {
		assert.GreaterOrEqual(t, CountSyllables(word), 1, word)
	}
}

func TestCalculate_SimpleSentence(t *testing.T) {
	tokens := strings.Fields("The cat sat on the mat.")
	m := Calculate(tokens, 1)

	assert.True(t, m.Scorable())
	assert.Greater(t, m.FleschReadingEase, 90.0)
	assert.InDelta(t, 116.1, m.FleschReadingEase, 0.001)
	assert.InDelta(t, 3.1, m.SmogIndex, 0.001)
	assert.Less(t, m.FleschKincaidGrade, 0.0)
}

func TestCalculate_RoundsToOneDecimal(t *testing.T) {
	tokens := strings.Fields("Comprehensive documentation facilitates understanding. Readers appreciate clarity.")
	m := Calculate(tokens, 2)

	for _, v := range []float64{m.FleschReadingEase, m.FleschKincaidGrade, m.SmogIndex} {
		assert.InDelta(t, math.Round(v*10)/10, v, 1e-9)
	}
	assert.Less(t, m.FleschReadingEase, 50.0)
}

func TestCalculate_NaNWhenUnscorable(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []string
		sentences int
	}{
		{name: "empty", tokens: nil, sentences: 0},
		{name: "no sentences", tokens: []string{"words", "without", "punctuation"}, sentences: 0},
		{name: "no alphabetic words", tokens: []string{"123", "--", "4.5."}, sentences: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Calculate(tt.tokens, tt.sentences)
			assert.True(t, math.IsNaN(m.FleschReadingEase))
			assert.True(t, math.IsNaN(m.FleschKincaidGrade))
			assert.True(t, math.IsNaN(m.SmogIndex))
			assert.False(t, m.Scorable())
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Contains(t, Describe(95), "Very easy")
	assert.Equal(t, "Fairly easy to read.", Describe(70))
	assert.Equal(t, "Fairly difficult to read.", Describe(55))
	assert.Contains(t, Describe(10), "university graduates")
	assert.Equal(t, "Not enough text to score.", Describe(math.NaN()))
}
