// Package analyzer runs the analysis pipeline over one text: segmentation,
// readability, domain detection, the enabled checks and scoring.
package analyzer

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pthm/twlint/internal/classifier"
	"github.com/pthm/twlint/internal/config"
	"github.com/pthm/twlint/internal/readability"
	"github.com/pthm/twlint/internal/rules"
	"golang.org/x/sync/errgroup"
)

// SkippedCheck records a check that failed and contributed no issues
type SkippedCheck struct {
	Name string
	Err  error
}

// Result is the outcome of analyzing one text. Callers must treat it as read-only.
type Result struct {
	Stats       Stats
	Readability readability.Metrics
	Domain      string
	Issues      []rules.Issue
	Score       float64
	Skipped     []SkippedCheck

	// Fragment is unterminated trailing text that no check or count saw
	Fragment string
}

// Options configures an Engine
type Options struct {
	// Registry defaults to rules.DefaultRegistry()
	Registry *rules.Registry
	// Logger receives debug and warning output; nil disables logging
	Logger *log.Logger
	// Parallel runs checks concurrently. Issues are still merged in registry order.
	Parallel bool
	// Cache, when set, memoizes results by text and configuration
	Cache *Cache
}

// Engine analyzes texts. It is safe for concurrent use.
type Engine struct {
	registry   *rules.Registry
	logger     *log.Logger
	parallel   bool
	cache      *Cache
	classifier *classifier.Classifier
}

// New creates an engine
func New(opts Options) *Engine {
	e := &Engine{
		registry:   opts.Registry,
		logger:     opts.Logger,
		parallel:   opts.Parallel,
		cache:      opts.Cache,
		classifier: classifier.Default(),
	}
	if e.registry == nil {
		e.registry = rules.DefaultRegistry()
	}
	return e
}

// Registry returns the engine's check registry
func (e *Engine) Registry() *rules.Registry {
	return e.registry
}

// Analyze runs the full pipeline on text with cfg. cfg is never modified.
func (e *Engine) Analyze(text string, cfg config.Config) *Result {
	if e.cache != nil {
		if cached, ok := e.cache.Get(text, cfg); ok {
			e.debug("cache hit", "bytes", len(text))
			return cached
		}
	}

	ctx := rules.NewContext(text, cfg)
	seg := ctx.Segments

	result := &Result{
		Stats:       ComputeStats(seg),
		Readability: readability.Calculate(seg.Words, len(seg.Sentences)),
		Domain:      e.classify(text, cfg),
		Fragment:    seg.Fragment,
	}

	var enabled []rules.Rule
	for _, rule := range e.registry.Rules() {
		if cfg.Enabled(rule.Name()) {
			enabled = append(enabled, rule)
		}
	}

	outcomes := e.runChecks(enabled, ctx)
	for i, rule := range enabled {
		out := outcomes[i]
		if out.err != nil {
			e.warn("check skipped", "check", rule.Name(), "err", out.err)
			result.Skipped = append(result.Skipped, SkippedCheck{Name: rule.Name(), Err: out.err})
			continue
		}
		result.Issues = append(result.Issues, out.issues...)
	}

	result.Score = Score(len(result.Issues), result.Stats.Words)

	e.debug("analyzed",
		"words", result.Stats.Words,
		"checks", len(enabled),
		"issues", len(result.Issues),
		"domain", result.Domain)

	if e.cache != nil {
		e.cache.Set(text, cfg, result)
	}
	return result
}

func (e *Engine) classify(text string, cfg config.Config) string {
	if len(cfg.Domains) == 0 {
		return e.classifier.Classify(text)
	}
	return classifier.Default(cfg.Domains...).Classify(text)
}

type checkOutcome struct {
	issues []rules.Issue
	err    error
}

// runChecks returns one outcome per rule, indexed like rules
func (e *Engine) runChecks(list []rules.Rule, ctx *rules.AnalysisContext) []checkOutcome {
	outcomes := make([]checkOutcome, len(list))

	if !e.parallel {
		for i, rule := range list {
			outcomes[i].issues, outcomes[i].err = runCheck(rule, ctx)
		}
		return outcomes
	}

	var g errgroup.Group
	for i, rule := range list {
		g.Go(func() error {
			outcomes[i].issues, outcomes[i].err = runCheck(rule, ctx)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// runCheck converts a panicking check into an error
func runCheck(rule rules.Rule, ctx *rules.AnalysisContext) (issues []rules.Issue, err error) {
	defer func() {
		if r := recover(); r != nil {
			issues = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return rule.Run(ctx)
}

func (e *Engine) debug(msg string, keyvals ...interface{}) {
	if e.logger != nil {
		e.logger.Debug(msg, keyvals...)
	}
}

func (e *Engine) warn(msg string, keyvals ...interface{}) {
	if e.logger != nil {
		e.logger.Warn(msg, keyvals...)
	}
}
