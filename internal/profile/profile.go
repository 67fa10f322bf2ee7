// Package profile provides built-in style presets. A profile is the base
// configuration that the config file, environment and flags are layered on.
package profile

import (
	"github.com/pthm/twlint/internal/config"
)

// DefaultName is the profile used when none is selected
const DefaultName = "google"

// Profile is a named configuration preset
type Profile struct {
	// Name is the identifier used with --profile
	Name string `yaml:"name"`

	// Description is a one-line summary shown by the rules command
	Description string `yaml:"description"`

	// Checks overrides the enabled state of individual checks
	Checks map[string]bool `yaml:"checks"`

	// LongSentence is the long-sentence threshold, 0 keeps the default
	LongSentence int `yaml:"long_sentence"`
}

// Apply returns base with the profile's settings layered on top
func (p *Profile) Apply(base config.Config) config.Config {
	out := base.Clone()
	for name, enabled := range p.Checks {
		out.Checks[name] = enabled
	}
	return out.WithLongSentence(p.LongSentence)
}

// Config returns the profile applied to the defaults
func (p *Profile) Config() config.Config {
	return p.Apply(config.Default())
}
