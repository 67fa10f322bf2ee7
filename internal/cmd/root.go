package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pthm/twlint/internal/config"
	"github.com/pthm/twlint/internal/profile"
	"github.com/pthm/twlint/internal/rules"
	"github.com/pthm/twlint/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile     string
	profileName string
	verbose     bool
	format      string

	logger   = log.NewWithOptions(os.Stderr, log.Options{Prefix: "twlint", Level: log.WarnLevel})
	settings config.Config
	appUI    *ui.UI
)

// RootCmd is the base command
var RootCmd = &cobra.Command{
	Use:   "twlint",
	Short: "A linter for technical writing",
	Long: `twlint checks prose against technical writing guidelines.

It reports readability scores (Flesch Reading Ease, Flesch-Kincaid Grade,
SMOG), detects the document's domain, and flags style problems such as
passive voice, long sentences, complex wording, undefined acronyms and
gendered language. Markdown, HTML and plain text are supported.

Configuration hierarchy (highest to lowest priority):
  1. CLI flags
  2. Environment variables (TWLINT_*, also read from .env)
  3. Config file (~/.twlint/config.yaml)
  4. Profile (--profile, default "google")`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.twlint/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", fmt.Sprintf("style profile %v", profile.Available()))
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
}

// setup configures logging and loads the effective configuration
func setup(cmd *cobra.Command, args []string) error {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if format != "terminal" && format != "json" {
		return fmt.Errorf("unknown format %q (want terminal or json)", format)
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	settings = cfg
	appUI = ui.New(os.Stdout, os.Stderr, format, settings.Theme)
	return nil
}

// loadSettings layers the config file and environment on top of the selected profile
func loadSettings() (config.Config, error) {
	p, err := profile.Load(profileName)
	if err != nil {
		return config.Config{}, err
	}

	v := config.NewViper(cfgFile)
	names := rules.DefaultRegistry().Names()

	cfg, err := config.Load(v, p.Config(), names...)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(names...); err != nil {
		return config.Config{}, err
	}

	logger.Debug("configuration loaded", "profile", p.Name, "file", v.ConfigFileUsed())
	return cfg, nil
}

// GetUI returns the UI configured for this run
func GetUI() *ui.UI {
	if appUI == nil {
		appUI = ui.New(os.Stdout, os.Stderr, format, settings.Theme)
	}
	return appUI
}
