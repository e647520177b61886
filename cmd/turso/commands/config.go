package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vitalis/turso/internal/constants"
)

// configMutex serializes config file writes within the process.
var configMutex sync.Mutex

// ErrUnknownConfigKey indicates a key outside the settable set.
var ErrUnknownConfigKey = errors.New("unknown config key (valid keys: token, organization, base-url, output)")

// settableKeys is the allowlist for 'config set' and 'config unset'.
var settableKeys = map[string]bool{
	"token":        true,
	"organization": true,
	"base-url":     true,
	"output":       true,
}

// CLIConfig is the persisted shape of ~/.turso/config.yml.
type CLIConfig struct {
	Token        string `yaml:"token,omitempty"`
	Organization string `yaml:"organization,omitempty"`
	BaseURL      string `yaml:"base-url,omitempty"`
	Output       string `yaml:"output,omitempty"`
}

// configFilePath resolves the config file location, honoring --config.
func configFilePath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".turso", "config.yml"), nil
}

// loadCLIConfig reads the persisted config; a missing file yields zero
// values.
func loadCLIConfig() (*CLIConfig, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &CLIConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// saveCLIConfig writes the config with owner-only permissions, since it may
// hold a token.
func saveCLIConfig(config *CLIConfig) error {
	configMutex.Lock()
	defer configMutex.Unlock()

	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and edit the persisted CLI configuration in ~/.turso/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the persisted configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			// Never print the token itself.
			display := *config
			if display.Token != "" {
				display.Token = "***"
			}

			return StandardYAMLRenderer(display)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Persist a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !settableKeys[key] {
				return fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
			}

			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			applyConfigValue(config, key, value)

			if err := saveCLIConfig(config); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !settableKeys[key] {
				return fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
			}

			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			applyConfigValue(config, key, "")

			if err := saveCLIConfig(config); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

func applyConfigValue(config *CLIConfig, key, value string) {
	switch key {
	case "token":
		config.Token = value
	case "organization":
		config.Organization = value
	case "base-url":
		config.BaseURL = value
	case "output":
		config.Output = value
	}
}
