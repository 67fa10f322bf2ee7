package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm/twlint/internal/analyzer"
	"github.com/pthm/twlint/internal/config"
	"github.com/pthm/twlint/internal/parser"
	"github.com/pthm/twlint/internal/reporter"
	"github.com/pthm/twlint/internal/rules"
	"github.com/pthm/twlint/internal/ui"
	"golang.org/x/sync/errgroup"
)

// skipDirs are never descended into when collecting documents
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
}

// collectPaths expands directories into the supported documents they contain.
// Explicit file arguments are kept even when their extension is unknown.
func collectPaths(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		if arg == parser.StdinPath {
			add(arg)
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if path != arg && (strings.HasPrefix(name, ".") || skipDirs[name]) {
					return filepath.SkipDir
				}
				return nil
			}
			if parser.IsSupported(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}

	return paths, nil
}

// documentConfig applies a document's frontmatter overrides to base.
// Overrides that fail validation are ignored with a warning.
func documentConfig(base config.Config, doc *parser.Document) config.Config {
	if doc.Overrides == nil {
		return base
	}
	cfg := base.WithChecks(false, doc.Overrides.Disable...)
	if doc.Overrides.LongSentence != 0 {
		cfg = cfg.Clone()
		cfg.Thresholds.LongSentence = doc.Overrides.LongSentence
	}
	if err := cfg.Validate(rules.DefaultRegistry().Names()...); err != nil {
		logger.Warn("ignoring invalid frontmatter overrides", "path", doc.Path, "err", err)
		return base
	}
	return cfg
}

// analyzed is one loaded and analyzed document
type analyzed struct {
	doc    *parser.Document
	result *analyzer.Result
}

// analyzeFiles loads and analyzes paths with at most jobs running at once.
// Results keep the order of paths.
func analyzeFiles(ctx context.Context, engine *analyzer.Engine, cfg config.Config, paths []string, jobs int, progress *ui.ProgressController) ([]analyzed, error) {
	out := make([]analyzed, len(paths))

	progress.SetStage(ui.StageAnalyze)
	progress.SetFileCount(len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			progress.FileStart(path)

			doc, err := parser.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", path, err)
			}

			docCfg := documentConfig(cfg, doc)
			logger.Debug("analyzing", "path", doc.Path, "kind", doc.Kind)

			out[i] = analyzed{doc: doc, result: engine.Analyze(doc.Text, docCfg)}
			progress.FileDone()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func fileResults(docs []analyzed) []reporter.FileResult {
	results := make([]reporter.FileResult, len(docs))
	for i, d := range docs {
		results[i] = reporter.FileResult{Path: d.doc.Path, Result: d.result}
	}
	return results
}

// newReporter picks the reporter for the --format flag
func newReporter(u *ui.UI, view reporter.View) reporter.Reporter {
	if format == "json" {
		return reporter.NewJSONReporter(u.Writer)
	}
	return reporter.NewTerminalReporter(u.Writer, u, view)
}
