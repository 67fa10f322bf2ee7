// Package config holds the analysis configuration: which checks run, the
// numeric thresholds they use, and display preferences.
//
// A Config is a value. Analysis never mutates it; the With* helpers return
// modified copies.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pthm/twlint/internal/classifier"
)

const (
	// DefaultLongSentence is the default long-sentence word threshold
	DefaultLongSentence = 25

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config is the configuration for one analysis run
type Config struct {
	// Checks maps check name to enabled. Checks missing from the map are enabled.
	Checks     map[string]bool      `yaml:"checks" mapstructure:"checks" json:"checks"`
	Thresholds Thresholds           `yaml:"thresholds" mapstructure:"thresholds" json:"thresholds"`
	Theme      string               `yaml:"theme" mapstructure:"theme" json:"theme" validate:"omitempty,oneof=light dark"`
	Domains    []classifier.Lexicon `yaml:"domains,omitempty" mapstructure:"domains" json:"domains,omitempty" validate:"dive"`
}

// Thresholds are the numeric limits used by checks
type Thresholds struct {
	LongSentence int `yaml:"long_sentence" mapstructure:"long_sentence" json:"longSentence" validate:"min=1,max=200"`
}

// Default returns the default configuration with every check enabled
func Default() Config {
	return Config{
		Checks: map[string]bool{},
		Thresholds: Thresholds{
			LongSentence: DefaultLongSentence,
		},
		Theme: ThemeLight,
	}
}

// Enabled reports whether a check should run
func (c Config) Enabled(name string) bool {
	enabled, ok := c.Checks[name]
	return !ok || enabled
}

// Clone returns a deep copy
func (c Config) Clone() Config {
	out := c
	out.Checks = make(map[string]bool, len(c.Checks))
	for k, v := range c.Checks {
		out.Checks[k] = v
	}
	if c.Domains != nil {
		out.Domains = make([]classifier.Lexicon, len(c.Domains))
		for i, lex := range c.Domains {
			out.Domains[i] = classifier.Lexicon{
				Domain:   lex.Domain,
				Keywords: append([]string(nil), lex.Keywords...),
			}
		}
	}
	return out
}

// WithChecks returns a copy with the named checks set to enabled
func (c Config) WithChecks(enabled bool, names ...string) Config {
	out := c.Clone()
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			out.Checks[name] = enabled
		}
	}
	return out
}

// WithLongSentence returns a copy with a new long-sentence threshold.
// Non-positive values leave the threshold unchanged.
func (c Config) WithLongSentence(words int) Config {
	out := c.Clone()
	if words > 0 {
		out.Thresholds.LongSentence = words
	}
	return out
}

// EnabledChecks filters names down to the enabled ones, preserving order
func (c Config) EnabledChecks(names []string) []string {
	var out []string
	for _, name := range names {
		if c.Enabled(name) {
			out = append(out, name)
		}
	}
	return out
}

// FieldError is a single invalid field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every invalid field of a Config
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid configuration:")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

var validate = validator.New()

// Validate checks field ranges and, when knownChecks is non-empty, rejects
// check names that don't exist
func (c Config) Validate(knownChecks ...string) error {
	ve := &ValidationError{}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   fe.Namespace(),
				Message: describeTag(fe),
			})
		}
	}

	if len(knownChecks) > 0 {
		known := make(map[string]bool, len(knownChecks))
		for _, name := range knownChecks {
			known[name] = true
		}
		var unknown []string
		for name := range c.Checks {
			if !known[name] {
				unknown = append(unknown, name)
			}
		}
		sort.Strings(unknown)
		for _, name := range unknown {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   "Config.Checks[" + name + "]",
				Message: "unknown check",
			})
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s (got %v)", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s (got %v)", fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s] (got %q)", fe.Param(), fe.Value())
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
