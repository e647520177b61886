// Package commands implements the CLI command tree.
package commands

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vitalis/turso/pkg/turso"
	"github.com/vitalis/turso/pkg/tursoclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = "  "

	// Common values.
	Yes = "yes"
	No  = "no"

	timestampFormat = "2006-01-02 15:04:05"
)

// Common static errors used throughout the commands package.
var (
	ErrDatabaseNameRequired = errors.New("database name is required")
	ErrGroupNameRequired    = errors.New("group name is required")
	ErrLocationRequired     = errors.New("location code is required")
	ErrUsernameRequired     = errors.New("username is required")
	ErrEmailRequired        = errors.New("email is required")
	ErrTargetOrgRequired    = errors.New("target organization is required")
	ErrTokenRequired        = errors.New("API token is required (use --token, TURSO_API_TOKEN, or 'turso auth login')")
)

// CreateClient builds a turso.Client from the resolved CLI configuration.
func CreateClient() (turso.Client, error) {
	verbose := viper.GetBool("verbose")

	config := &turso.Config{
		APIToken:     viper.GetString("token"),
		Organization: viper.GetString("organization"),
		BaseURL:      viper.GetString("base-url"),
		Debug:        verbose,
	}

	if verbose {
		config.Logger = NewZerologAdapter(setupLogger())
	}

	return tursoclient.New(config)
}

// setupLogger configures the zerolog logger for CLI output.
func setupLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// ZerologAdapter exposes a zerolog.Logger through the turso.Logger
// interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps logger for use as a turso.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Debug implements turso.Logger.
func (a *ZerologAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

// Info implements turso.Logger.
func (a *ZerologAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

// Warn implements turso.Logger.
func (a *ZerologAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

// Error implements turso.Logger.
func (a *ZerologAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}

// StandardJSONRenderer writes data to stdout as indented JSON.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", defaultJSONIndent)

	return encoder.Encode(data)
}

// StandardYAMLRenderer writes data to stdout as YAML.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()

	return encoder.Encode(data)
}

// formatBool renders a boolean as yes/no for table output.
func formatBool(value bool) string {
	if value {
		return Yes
	}

	return No
}
