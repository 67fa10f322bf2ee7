package analyzer

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/pthm/twlint/internal/classifier"
	"github.com/pthm/twlint/internal/config"
	"github.com/pthm/twlint/internal/parser"
	"github.com/pthm/twlint/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# Getting Started

We should utilize the installer. The file was created by the installer.
It is stored in the home directory. The chairman approved HTML pages.

- Installing the app
- Configured it
- Runs fine
`

func TestAnalyze_EmptyText(t *testing.T) {
	for _, text := range []string{"", "   \n\t\n"} {
		r := New(Options{}).Analyze(text, config.Default())

		assert.Zero(t, r.Stats.Paragraphs)
		assert.Zero(t, r.Stats.Sentences)
		assert.Zero(t, r.Stats.Words)
		assert.Zero(t, r.Stats.Headings)
		assert.Zero(t, r.Stats.Bullets)
		assert.True(t, math.IsNaN(r.Readability.FleschReadingEase))
		assert.Equal(t, classifier.General, r.Domain)
		assert.Empty(t, r.Issues)
		assert.Equal(t, 0.0, r.Score)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	e := New(Options{})
	first := e.Analyze(sample, config.Default())
	second := e.Analyze(sample, config.Default())

	assert.NotEmpty(t, first.Issues)
	assert.Equal(t, first, second)
}

func TestAnalyze_DoesNotMutateConfig(t *testing.T) {
	cfg := config.Default().WithChecks(false, rules.NamePassiveVoice)
	before := cfg.Clone()

	New(Options{}).Analyze(sample, cfg)

	assert.Equal(t, before, cfg)
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	e := New(Options{})
	for _, text := range []string{sample, "Click Save.", "It. It. It. It.", "HTML CSS XML JSON YAML."} {
		r := e.Analyze(text, config.Default())
		assert.GreaterOrEqual(t, r.Score, 0.0, text)
		assert.LessOrEqual(t, r.Score, 100.0, text)
	}

	clean := e.Analyze("Click Save.", config.Default())
	assert.Empty(t, clean.Issues)
	assert.Equal(t, 100.0, clean.Score)
}

func TestAnalyze_AllChecksDisabled(t *testing.T) {
	e := New(Options{})
	cfg := config.Default().WithChecks(false, e.Registry().Names()...)

	r := e.Analyze(sample, cfg)

	assert.Empty(t, r.Issues)
	assert.Equal(t, 100.0, r.Score)
	assert.Positive(t, r.Stats.Words)
}

func TestAnalyze_DisabledCheckIsOmitted(t *testing.T) {
	e := New(Options{})
	cfg := config.Default().WithChecks(false, rules.NameGendered)

	for _, issue := range e.Analyze(sample, cfg).Issues {
		assert.NotEqual(t, rules.NameGendered, issue.Rule)
	}
}

func TestAnalyze_IssuesInRegistryOrder(t *testing.T) {
	e := New(Options{})
	r := e.Analyze(sample, config.Default())

	order := make(map[string]int)
	for i, name := range e.Registry().Names() {
		order[name] = i
	}
	for i := 1; i < len(r.Issues); i++ {
		assert.LessOrEqual(t, order[r.Issues[i-1].Rule], order[r.Issues[i].Rule])
	}
}

func TestAnalyze_ParallelMatchesSequential(t *testing.T) {
	sequential := New(Options{}).Analyze(sample, config.Default())
	parallel := New(Options{Parallel: true}).Analyze(sample, config.Default())

	assert.Equal(t, sequential, parallel)
}

func TestAnalyze_Domain(t *testing.T) {
	e := New(Options{})

	health := strings.Repeat("The patient saw a doctor for a diagnosis and treatment. ", 4)
	assert.Equal(t, "healthcare", e.Analyze(health, config.Default()).Domain)
	assert.Equal(t, classifier.General, e.Analyze("Click Save.", config.Default()).Domain)

	cfg := config.Default()
	cfg.Domains = []classifier.Lexicon{{Domain: "cooking", Keywords: []string{"oven", "bake"}}}
	oven := strings.Repeat("Bake it in the oven. ", 3)
	assert.Equal(t, "cooking", e.Analyze(oven, cfg).Domain)
}

func TestAnalyze_Fragment(t *testing.T) {
	r := New(Options{}).Analyze("Complete sentence. trailing words", config.Default())

	assert.Equal(t, "trailing words", r.Fragment)
	assert.Equal(t, 1, r.Stats.Sentences)
}

func TestAnalyze_Acronyms(t *testing.T) {
	e := New(Options{})
	acronymIssues := func(text string) []rules.Issue {
		var out []rules.Issue
		for _, issue := range e.Analyze(text, config.Default()).Issues {
			if issue.Rule == rules.NameAcronyms {
				out = append(out, issue)
			}
		}
		return out
	}

	undefined := acronymIssues("We use HTML for pages.")
	require.Len(t, undefined, 1)
	assert.Equal(t, rules.CategoryUndefinedAcronym, undefined[0].Category)
	assert.Equal(t, "We use HTML for pages.", undefined[0].Text)

	assert.Empty(t, acronymIssues("We use Hypertext Markup Language (HTML) for pages."))
}

type panicRule struct{}

func (panicRule) Name() string { return "panics" }
func (panicRule) Description() string { return "always panics" }
func (panicRule) Config() rules.RuleConfig { return rules.RuleConfig{} }
func (panicRule) Run(*rules.AnalysisContext) ([]rules.Issue, error) {
	panic("boom")
}

type failRule struct{}

func (failRule) Name() string { return "fails" }
func (failRule) Description() string { return "always fails" }
func (failRule) Config() rules.RuleConfig { return rules.RuleConfig{} }
func (failRule) Run(*rules.AnalysisContext) ([]rules.Issue, error) {
	return []rules.Issue{{Rule: "fails"}}, errors.New("broken")
}

func TestAnalyze_FailingChecksAreSkipped(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		reg := rules.NewRegistry()
		reg.Register(panicRule{})
		reg.Register(&rules.GenderedLanguageRule{})
		reg.Register(failRule{})

		r := New(Options{Registry: reg, Parallel: parallel}).Analyze("The chairman spoke.", config.Default())

		require.Len(t, r.Issues, 1)
		assert.Equal(t, rules.NameGendered, r.Issues[0].Rule)

		require.Len(t, r.Skipped, 2)
		assert.Equal(t, "panics", r.Skipped[0].Name)
		assert.ErrorContains(t, r.Skipped[0].Err, "boom")
		assert.Equal(t, "fails", r.Skipped[1].Name)
	}
}

func TestAnalyze_Cache(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	e := New(Options{Cache: cache})

	first := e.Analyze(sample, config.Default())
	second := e.Analyze(sample, config.Default())
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())

	third := e.Analyze(sample, config.Default().WithLongSentence(5))
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, cache.Len())

	cache.Clear()
	assert.Zero(t, cache.Len())
}

func TestKey(t *testing.T) {
	a, ok := Key("text", config.Default())
	require.True(t, ok)
	b, _ := Key("text", config.Default())
	c, _ := Key("text", config.Default().WithChecks(false, rules.NameBullets))
	d, _ := Key("other", config.Default())

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		issues   int
		words    int
		expected float64
	}{
		{name: "no issues", issues: 0, words: 10, expected: 100},
		{name: "one issue per 40 words", issues: 1, words: 40, expected: 50},
		{name: "one issue per 20 words", issues: 1, words: 20, expected: 0},
		{name: "clamped at zero", issues: 5, words: 20, expected: 0},
		{name: "no words", issues: 3, words: 0, expected: 0},
		{name: "no words no issues", issues: 0, words: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Score(tt.issues, tt.words), 1e-9)
		})
	}
}

func TestComputeStats(t *testing.T) {
	text := "# Café Notes\n\nFirst line here. Second one!\n\n- item one\n- item two"
	s := ComputeStats(parser.Segment(text))

	assert.Equal(t, 3, s.Paragraphs)
	assert.Equal(t, 2, s.Sentences)
	assert.Equal(t, len(strings.Fields(text)), s.Words)
	assert.Equal(t, len([]rune(text)), s.Characters)
	assert.Equal(t, 1, s.Headings)
	assert.Equal(t, 2, s.Bullets)
}
