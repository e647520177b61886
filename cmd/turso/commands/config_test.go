package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyConfigValue(t *testing.T) {
	t.Parallel()

	config := &CLIConfig{}

	applyConfigValue(config, "token", "secret")
	applyConfigValue(config, "organization", "acme")
	applyConfigValue(config, "base-url", "https://api.example.com")
	applyConfigValue(config, "output", "json")

	assert.Equal(t, "secret", config.Token)
	assert.Equal(t, "acme", config.Organization)
	assert.Equal(t, "https://api.example.com", config.BaseURL)
	assert.Equal(t, "json", config.Output)

	applyConfigValue(config, "token", "")
	assert.Empty(t, config.Token)
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	cmd := newConfigSetCommand()
	cmd.SetArgs([]string{"nonsense", "value"})

	err := cmd.Execute()
	require.ErrorIs(t, err, ErrUnknownConfigKey)
}

func TestFormatBool(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Yes, formatBool(true))
	assert.Equal(t, No, formatBool(false))
}
