package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "TWLINT"

// DefaultDir returns ~/.twlint
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".twlint"), nil
}

// DefaultPath returns ~/.twlint/config.yaml
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// NewViper returns a viper instance that reads the given config file, or
// ~/.twlint/config.yaml when path is empty, plus TWLINT_* environment variables
func NewViper(path string) *viper.Viper {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else if dir, err := DefaultDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load layers the config file and environment from v on top of base.
// checkNames seeds a key per check so environment overrides like
// TWLINT_CHECKS_PASSIVE_VOICE=false are picked up. A missing config file is
// not an error.
func Load(v *viper.Viper, base Config, checkNames ...string) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	for _, name := range checkNames {
		v.SetDefault("checks."+name, base.Enabled(name))
	}
	for name, enabled := range base.Checks {
		v.SetDefault("checks."+name, enabled)
	}
	v.SetDefault("thresholds.long_sentence", base.Thresholds.LongSentence)
	v.SetDefault("theme", base.Theme)
	if base.Domains != nil {
		v.SetDefault("domains", base.Domains)
	}

	cfg := Config{Checks: map[string]bool{}}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Checks == nil {
		cfg.Checks = map[string]bool{}
	}
	return cfg, nil
}

const fileHeader = `# twlint configuration
#
# Configuration hierarchy (highest to lowest priority):
#   1. CLI flags
#   2. Environment variables (TWLINT_*)
#   3. This config file
#   4. The selected profile (--profile, default "google")
#
# checks: set a check to false to skip it entirely.
# thresholds.long_sentence: words per sentence before "Long Sentence" is reported (1-200).
# theme: light or dark terminal palette.

`

// Save writes cfg as YAML to path, creating the parent directory
func Save(path string, cfg Config) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close config file: %w", closeErr)
		}
	}()

	if _, err = f.WriteString(fileHeader); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ReadFile reads a YAML config file directly, without environment layering
func ReadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Checks == nil {
		cfg.Checks = map[string]bool{}
	}
	return cfg, nil
}
