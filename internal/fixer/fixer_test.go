package fixer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm/twlint/internal/config"
	"github.com/pthm/twlint/internal/rules"
	"github.com/pthm/twlint/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issue(rule string, edits ...rules.Edit) rules.Issue {
	return rules.Issue{Rule: rule, Fix: &rules.Fix{Description: "fix " + rule, Edits: edits}}
}

func TestApply(t *testing.T) {
	content := "The chairman will utilize it."
	res := Apply(content, []rules.Issue{
		issue("complex-words", rules.Edit{Offset: 18, Old: "utilize", New: "use"}),
		{Rule: "no-fix"},
		issue("gendered", rules.Edit{Offset: 4, Old: "chairman", New: "chairperson"}),
	})

	assert.Equal(t, "The chairperson will use it.", res.Content)
	require.Len(t, res.Applied, 2)
	assert.Equal(t, "gendered", res.Applied[0].Rule)
	assert.Empty(t, res.Skipped)
}

func TestApply_Stale(t *testing.T) {
	res := Apply("Hello there.", []rules.Issue{
		issue("a", rules.Edit{Offset: 0, Old: "Goodbye", New: "Bye"}),
		issue("b", rules.Edit{Offset: 50, Old: "x", New: "y"}),
		issue("c", rules.Edit{Offset: -1, Old: "", New: "y"}),
	})

	assert.Equal(t, "Hello there.", res.Content)
	assert.Empty(t, res.Applied)
	require.Len(t, res.Skipped, 3)
	for _, sk := range res.Skipped {
		assert.ErrorIs(t, sk.Err, ErrStale)
	}
}

func TestApply_Overlap(t *testing.T) {
	content := "We utilize numerous tools."
	res := Apply(content, []rules.Issue{
		issue("first", rules.Edit{Offset: 0, Old: content, New: "We use numerous tools."}),
		issue("second", rules.Edit{Offset: 0, Old: content, New: "We utilize many tools."}),
		issue("inner", rules.Edit{Offset: 11, Old: "numerous", New: "many"}),
	})

	assert.Equal(t, "We use numerous tools.", res.Content)
	require.Len(t, res.Applied, 1)
	require.Len(t, res.Skipped, 2)
	assert.ErrorIs(t, res.Skipped[0].Err, ErrOverlap)
	assert.Equal(t, "second", res.Skipped[0].Change.Rule)
}

func TestApply_RuleEdits(t *testing.T) {
	content := "We utilize the tool. The Chairman agreed."
	ctx := rules.NewContext(content, config.Default())

	var issues []rules.Issue
	for _, r := range []rules.Rule{&rules.ComplexWordingRule{}, &rules.GenderedLanguageRule{}} {
		found, err := r.Run(ctx)
		require.NoError(t, err)
		issues = append(issues, found...)
	}

	res := Apply(content, issues)
	assert.Equal(t, "We use the tool. The Chairperson agreed.", res.Content)
}

func TestFixer_FixFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("The chairman spoke."), 0o600))

	fixes := []rules.Issue{issue("gendered", rules.Edit{Offset: 4, Old: "chairman", New: "chairperson"})}

	var buf bytes.Buffer
	u := ui.New(&buf, &buf, "terminal", "light")

	changes, err := New(Options{DryRun: true}, u).FixFile(path, fixes)
	require.NoError(t, err)
	assert.Len(t, changes, 1)
	assert.Contains(t, buf.String(), "Would fix: gendered")
	data, _ := os.ReadFile(path)
	assert.Equal(t, "The chairman spoke.", string(data))

	changes, err = New(Options{}, u).FixFile(path, fixes)
	require.NoError(t, err)
	assert.Len(t, changes, 1)
	data, _ = os.ReadFile(path)
	assert.Equal(t, "The chairperson spoke.", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A second pass finds the original text gone
	changes, err = New(Options{}, u).FixFile(path, fixes)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestFixer_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(Options{}, ui.New(&buf, &buf, "terminal", "light")).FixFile(filepath.Join(t.TempDir(), "nope.md"), nil)
	assert.Error(t, err)
}
