package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenProvider(t *testing.T) {
	provider := NewStaticTokenProvider("static-token")

	token, err := provider.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "static-token", token)
}

func TestEnvTokenProvider(t *testing.T) {
	t.Setenv(EnvAPIToken, "env-token")

	provider := NewEnvTokenProvider("")

	token, err := provider.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env-token", token)
}

func TestEnvTokenProvider_CustomVariable(t *testing.T) {
	t.Setenv("OTHER_TOKEN", "other")

	provider := NewEnvTokenProvider("OTHER_TOKEN")

	token, err := provider.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "other", token)
}

func TestEnvTokenProvider_Unset(t *testing.T) {
	t.Setenv(EnvAPIToken, "")

	provider := NewEnvTokenProvider("")

	_, err := provider.GetToken(context.Background())
	require.ErrorIs(t, err, ErrTokenNotSet)
}

func TestEnvTokenProvider_ReadsPerCall(t *testing.T) {
	t.Setenv(EnvAPIToken, "first")

	provider := NewEnvTokenProvider("")

	token, err := provider.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", token)

	t.Setenv(EnvAPIToken, "second")

	token, err = provider.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}
