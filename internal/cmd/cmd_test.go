package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm/twlint/internal/analyzer"
	"github.com/pthm/twlint/internal/config"
	"github.com/pthm/twlint/internal/fixer"
	"github.com/pthm/twlint/internal/parser"
	"github.com/pthm/twlint/internal/reporter"
	"github.com/pthm/twlint/internal/rules"
	"github.com/pthm/twlint/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCollectPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "guide.md"), "Guide.")
	writeFile(t, filepath.Join(dir, "sub", "page.html"), "<p>Page.</p>")
	writeFile(t, filepath.Join(dir, "main.go"), "package main")
	writeFile(t, filepath.Join(dir, ".hidden", "notes.md"), "Hidden.")
	writeFile(t, filepath.Join(dir, "node_modules", "pkg", "README.md"), "Vendored.")

	paths, err := collectPaths([]string{dir, filepath.Join(dir, "guide.md"), parser.StdinPath})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "guide.md"),
		filepath.Join(dir, "sub", "page.html"),
		parser.StdinPath,
	}, paths)
}

func TestCollectPaths_Missing(t *testing.T) {
	_, err := collectPaths([]string{filepath.Join(t.TempDir(), "missing.md")})
	assert.Error(t, err)
}

func TestDocumentConfig(t *testing.T) {
	base := config.Default()
	assert.Equal(t, base, documentConfig(base, &parser.Document{}))

	doc := &parser.Document{Overrides: &parser.Overrides{
		Disable:      []string{rules.NamePassiveVoice},
		LongSentence: 40,
	}}
	cfg := documentConfig(base, doc)

	assert.False(t, cfg.Enabled(rules.NamePassiveVoice))
	assert.Equal(t, 40, cfg.Thresholds.LongSentence)
	assert.True(t, base.Enabled(rules.NamePassiveVoice))
}

func TestDocumentConfig_InvalidOverridesIgnored(t *testing.T) {
	base := config.Default()

	tests := []struct {
		name      string
		overrides parser.Overrides
	}{
		{name: "threshold too high", overrides: parser.Overrides{LongSentence: 5000}},
		{name: "negative threshold", overrides: parser.Overrides{LongSentence: -3}},
		{name: "unknown check", overrides: parser.Overrides{Disable: []string{"passive-voise"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &parser.Document{Path: "draft.md", Overrides: &tt.overrides}
			assert.Equal(t, base, documentConfig(base, doc))
		})
	}
}

func TestFixDocument_RetriesOverlappingFixes(t *testing.T) {
	settings = config.Default()
	disableChecks, longSentence, dryRun = nil, 0, false

	path := filepath.Join(t.TempDir(), "draft.md")
	writeFile(t, path, "We utilize the chairman.\n")

	var out bytes.Buffer
	f := fixer.New(fixer.Options{}, ui.New(&out, &out, "terminal", config.ThemeLight))

	n, err := fixDocument(analyzer.New(analyzer.Options{}), f, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "We use the chairperson.\n", string(data))
}

func TestFixDocument_SkipsHTML(t *testing.T) {
	settings = config.Default()
	disableChecks, longSentence, dryRun = nil, 0, false

	path := filepath.Join(t.TempDir(), "page.html")
	content := "<p>We utilize the chairman.</p>"
	writeFile(t, path, content)

	var out bytes.Buffer
	f := fixer.New(fixer.Options{}, ui.New(&out, &out, "terminal", config.ThemeLight))

	n, err := fixDocument(analyzer.New(analyzer.Options{}), f, path)
	require.NoError(t, err)
	assert.Zero(t, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestCheckMinScore(t *testing.T) {
	results := []reporter.FileResult{
		{Path: "a.md", Result: &analyzer.Result{Score: 90}},
		{Path: "b.md", Result: &analyzer.Result{Score: 40}},
	}
	defer func() { minScore = 0 }()

	minScore = 0
	assert.NoError(t, checkMinScore(results))

	minScore = 50
	err := checkMinScore(results)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.md")
}
