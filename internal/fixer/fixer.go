package fixer

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pthm/twlint/internal/rules"
	"github.com/pthm/twlint/internal/ui"
)

// ErrStale means an edit's original text is no longer at its offset
var ErrStale = errors.New("text changed since analysis")

// ErrOverlap means an edit touches bytes already claimed by an earlier edit
var ErrOverlap = errors.New("overlaps another edit")

// Options configures the fixer behavior
type Options struct {
	DryRun bool
}

// Change is an edit together with the issue that proposed it
type Change struct {
	Rule        string
	Description string
	Edit        rules.Edit
}

// Skipped is a change that could not be applied
type Skipped struct {
	Change Change
	Err    error
}

// Result is the outcome of applying fixes to one text
type Result struct {
	Content string
	Applied []Change
	Skipped []Skipped
}

// Apply applies every edit carried by issues to content. Edits whose original
// text is not found at their offset are skipped with ErrStale, and edits that
// overlap an earlier one are skipped with ErrOverlap. Earlier offsets win;
// ties go to the issue listed first.
func Apply(content string, issues []rules.Issue) Result {
	var changes []Change
	for _, issue := range issues {
		if issue.Fix == nil {
			continue
		}
		for _, edit := range issue.Fix.Edits {
			changes = append(changes, Change{Rule: issue.Rule, Description: issue.Fix.Description, Edit: edit})
		}
	}

	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].Edit.Offset < changes[j].Edit.Offset
	})

	res := Result{Content: content}
	end := 0
	for _, c := range changes {
		if err := check(content, c.Edit); err != nil {
			res.Skipped = append(res.Skipped, Skipped{Change: c, Err: err})
			continue
		}
		if c.Edit.Offset < end {
			res.Skipped = append(res.Skipped, Skipped{Change: c, Err: ErrOverlap})
			continue
		}
		res.Applied = append(res.Applied, c)
		end = c.Edit.Offset + len(c.Edit.Old)
	}

	// Apply back to front so earlier offsets stay valid
	out := content
	for i := len(res.Applied) - 1; i >= 0; i-- {
		e := res.Applied[i].Edit
		out = out[:e.Offset] + e.New + out[e.Offset+len(e.Old):]
	}
	res.Content = out

	return res
}

func check(content string, e rules.Edit) error {
	if e.Offset < 0 || e.Offset+len(e.Old) > len(content) {
		return fmt.Errorf("offset %d: %w", e.Offset, ErrStale)
	}
	if content[e.Offset:e.Offset+len(e.Old)] != e.Old {
		return fmt.Errorf("offset %d: %w", e.Offset, ErrStale)
	}
	return nil
}

// Fixer applies fixes to files
type Fixer struct {
	opts Options
	ui   *ui.UI
}

// New creates a new Fixer
func New(opts Options, u *ui.UI) *Fixer {
	return &Fixer{opts: opts, ui: u}
}

// FixFile applies the fixes in issues to the file at path. Issue offsets must
// refer to the file's current bytes. It returns the applied changes; in dry-run
// mode the file is left untouched and the changes are printed instead.
func (f *Fixer) FixFile(path string, issues []rules.Issue) ([]Change, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	res := Apply(string(content), issues)
	if len(res.Applied) == 0 {
		return nil, nil
	}

	if f.opts.DryRun {
		f.printDryRun(path, res.Applied)
		return res.Applied, nil
	}

	if err := os.WriteFile(path, []byte(res.Content), info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	s := f.ui.Styles
	for _, c := range res.Applied {
		fmt.Fprintln(f.ui.Writer, s.Success.Render(
			fmt.Sprintf("%s Fixed: %s", s.IconSuccess, c.Rule),
		))
		fmt.Fprintf(f.ui.Writer, "  %s\n", c.Description)
	}

	return res.Applied, nil
}

func (f *Fixer) printDryRun(path string, changes []Change) {
	s := f.ui.Styles
	for _, c := range changes {
		fmt.Fprintln(f.ui.Writer, s.Suggestion.Render(
			fmt.Sprintf("Would fix: %s", c.Rule),
		))
		fmt.Fprintf(f.ui.Writer, "  File: %s\n", path)
		fmt.Fprintf(f.ui.Writer, "  Fix: %s\n", c.Description)
		fmt.Fprintln(f.ui.Writer, s.Error.Render("    - "+preview(c.Edit.Old)))
		fmt.Fprintln(f.ui.Writer, s.Success.Render("    + "+preview(c.Edit.New)))
	}
	fmt.Fprintln(f.ui.Writer)
}

func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 100 {
		return s[:100] + "..."
	}
	return s
}
