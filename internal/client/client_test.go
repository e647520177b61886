package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis/turso/pkg/turso"
)

func TestNew(t *testing.T) {
	client, err := New(&turso.Config{APIToken: "token", Organization: "acme"})
	require.NoError(t, err)
	require.NotNil(t, client)

	assert.NotNil(t, client.Databases())
	assert.NotNil(t, client.Groups())
	assert.NotNil(t, client.Organizations())
	assert.NotNil(t, client.APITokens())
	assert.NotNil(t, client.AuditLogs())
	assert.NotNil(t, client.Locations())
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, turso.ErrConfigRequired)
}

func TestNew_TrimsBaseURL(t *testing.T) {
	client, err := New(&turso.Config{BaseURL: "https://api.example.com/"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", client.baseURL)
}

func TestNew_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer config-token", request.Header.Get("Authorization"))

		json.NewEncoder(writer).Encode(map[string]interface{}{"organizations": []turso.Organization{}})
	}))
	defer server.Close()

	client, err := New(&turso.Config{APIToken: "config-token", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Organizations().List(context.Background())
	require.NoError(t, err)
}

func TestNew_TokenFromEnvironment(t *testing.T) {
	t.Setenv("TURSO_API_TOKEN", "env-token")

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer env-token", request.Header.Get("Authorization"))

		json.NewEncoder(writer).Encode(map[string]interface{}{"organizations": []turso.Organization{}})
	}))
	defer server.Close()

	client, err := New(&turso.Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Organizations().List(context.Background())
	require.NoError(t, err)
}
