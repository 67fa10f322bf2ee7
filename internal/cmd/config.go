package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pthm/twlint/internal/config"
	"github.com/pthm/twlint/internal/profile"
	"github.com/pthm/twlint/internal/rules"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage twlint configuration",
	Long: `Manage twlint configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (TWLINT_*)
3. Config file (~/.twlint/config.yaml)
4. Profile`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration after applying the profile, config file and environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		u := GetUI()
		path, err := configPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(u.ErrWriter, "Configuration file: %s\n\n", path)
		} else {
			fmt.Fprintf(u.ErrWriter, "No configuration file found (using profile defaults)\n\n")
		}

		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}
		_, err = u.Writer.Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a configuration file at ~/.twlint/config.yaml from the selected profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s\nUse 'twlint config show' to view it, or delete it first to recreate", path)
		}

		p, err := profile.Load(profileName)
		if err != nil {
			return err
		}
		if err := config.Save(path, p.Config()); err != nil {
			return err
		}

		u := GetUI()
		fmt.Fprintln(u.Writer, u.Styles.Success.Render(
			fmt.Sprintf("%s Created configuration: %s", u.Styles.IconSuccess, path),
		))
		return nil
	},
}

var configSetCheckCmd = &cobra.Command{
	Use:   "set-check <name> <on|off>",
	Short: "Enable or disable a check",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var enabled bool
		switch args[1] {
		case "on", "true":
			enabled = true
		case "off", "false":
			enabled = false
		default:
			return fmt.Errorf("invalid state %q (want on or off)", args[1])
		}

		return updateConfigFile(func(cfg config.Config) config.Config {
			return cfg.WithChecks(enabled, args[0])
		})
	},
}

var configSetThresholdCmd = &cobra.Command{
	Use:   "set-threshold <words>",
	Short: "Set the long sentence threshold",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid threshold %q: %w", args[0], err)
		}

		return updateConfigFile(func(cfg config.Config) config.Config {
			cfg = cfg.Clone()
			cfg.Thresholds.LongSentence = words
			return cfg
		})
	},
}

var configImportCmd = &cobra.Command{
	Use:   "import <preferences.json>",
	Short: "Import exported browser preferences",
	Long: `Convert an exported preferences record into the configuration file.

The record has the form:
  {"checks": {"passiveVoice": true, ...}, "thresholds": {"longSentence": 25}, "darkMode": false}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		cfg, err := config.ImportPreferences(data)
		if err != nil {
			return err
		}
		return writeConfigFile(cfg)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCheckCmd)
	configCmd.AddCommand(configSetThresholdCmd)
	configCmd.AddCommand(configImportCmd)
	RootCmd.AddCommand(configCmd)
}

// configPath is the --config file or the default location
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

// updateConfigFile applies change to the config file, starting from the
// profile when no file exists yet
func updateConfigFile(change func(config.Config) config.Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	cfg, err := config.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		p, perr := profile.Load(profileName)
		if perr != nil {
			return perr
		}
		cfg = p.Config()
	} else if err != nil {
		return err
	}

	return writeConfigFile(change(cfg))
}

func writeConfigFile(cfg config.Config) error {
	if err := cfg.Validate(rules.DefaultRegistry().Names()...); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	logger.Debug("configuration saved", "path", path)
	u := GetUI()
	fmt.Fprintln(u.Writer, u.Styles.Success.Render(
		fmt.Sprintf("%s Saved configuration: %s", u.Styles.IconSuccess, path),
	))
	return nil
}
