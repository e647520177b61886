package tursoclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis/turso/pkg/turso"
	"github.com/vitalis/turso/pkg/tursoclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := tursoclient.New(&turso.Config{
			APIToken:     "test-token",
			Organization: "acme",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("rejects nil config", func(t *testing.T) {
		t.Parallel()

		_, err := tursoclient.New(nil)
		require.ErrorIs(t, err, turso.ErrConfigRequired)
	})

	t.Run("normalizes base URL scheme", func(t *testing.T) {
		t.Parallel()

		config := &turso.Config{BaseURL: "api.example.com/"}

		_, err := tursoclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", config.BaseURL)
	})
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := tursoclient.NewWithToken("test-token", "acme")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv("TURSO_API_TOKEN", "env-token")

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer env-token", request.Header.Get("Authorization"))

		json.NewEncoder(writer).Encode(map[string]interface{}{"databases": []turso.Database{}})
	}))
	defer server.Close()

	client, err := tursoclient.New(&turso.Config{BaseURL: server.URL, Organization: "acme"})
	require.NoError(t, err)

	_, err = client.Databases().List(context.Background(), "", nil)
	require.NoError(t, err)
}
