package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pthm/twlint/internal/analyzer"
	"github.com/pthm/twlint/internal/parser"
	"github.com/pthm/twlint/internal/reporter"
	"github.com/pthm/twlint/internal/rules"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-analyze documents whenever they change",
	Long: `Watch documents and print a fresh analysis each time one is saved.

Unchanged text is served from an in-memory cache, so saving a file without
edits does not re-run the checks.

Examples:
  twlint watch docs/guide.md
  twlint watch docs`,
	RunE: runWatch,
}

func init() {
	addAnalysisFlags(watchCmd)
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	u := GetUI()
	cfg := flagConfig()
	if err := cfg.Validate(rules.DefaultRegistry().Names()...); err != nil {
		return err
	}

	paths, err := collectPaths(args)
	if err != nil {
		return err
	}

	watched := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p == parser.StdinPath {
			return fmt.Errorf("cannot watch standard input")
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
		watched[abs] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace files on save, so watch parent directories
	dirs := make(map[string]bool)
	for p := range watched {
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	engine := analyzer.New(analyzer.Options{
		Logger: logger,
		Cache:  analyzer.NewCache(30*time.Minute, 10*time.Minute),
	})
	rep := newReporter(u, reporter.ViewIssues)

	analyze := func(path string) {
		doc, err := parser.Load(path)
		if err != nil {
			logger.Warn("failed to load document", "path", path, "err", err)
			return
		}
		result := engine.Analyze(doc.Text, documentConfig(cfg, doc))
		if err := rep.Report([]reporter.FileResult{{Path: path, Result: result}}); err != nil {
			logger.Error("failed to report", "err", err)
		}
	}

	for _, p := range paths {
		analyze(p)
	}
	fmt.Fprintf(u.ErrWriter, "Watching %d documents. Press Ctrl+C to stop.\n", len(paths))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	for {
		select {
		case <-stop:
			return nil
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !watched[event.Name] {
				continue
			}
			logger.Debug("document changed", "path", event.Name, "op", event.Op.String())
			analyze(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}
