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

func TestDatabasesClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/organizations/acme/databases", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "prod", request.URL.Query().Get("group"))

		response := map[string]interface{}{
			"databases": []turso.Database{
				{Name: "app-db", DBID: "db-1", Group: "prod"},
				{Name: "analytics", DBID: "db-2", Group: "prod"},
			},
		}

		json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	databases, err := client.Databases().List(context.Background(), "", turso.NewListParams().WithGroup("prod"))
	require.NoError(t, err)
	require.Len(t, databases, 2)
	assert.Equal(t, "app-db", databases[0].Name)
	assert.Equal(t, "db-2", databases[1].DBID)
}

func TestDatabasesClient_ListBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		json.NewEncoder(writer).Encode([]turso.Database{{Name: "app-db"}})
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	databases, err := client.Databases().List(context.Background(), "", nil)
	require.NoError(t, err)
	require.Len(t, databases, 1)
	assert.Equal(t, "app-db", databases[0].Name)
}

func TestDatabasesClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/organizations/acme/databases/app-db", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		response := map[string]interface{}{
			"database": turso.Database{Name: "app-db", DBID: "db-1", Hostname: "app-db-acme.turso.io"},
		}

		json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	database, err := client.Databases().Get(context.Background(), "", "app-db")
	require.NoError(t, err)
	assert.Equal(t, "db-1", database.DBID)
	assert.Equal(t, "app-db-acme.turso.io", database.Hostname)
}

func TestDatabasesClient_GetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		json.NewEncoder(writer).Encode(map[string]string{"error": "database not found"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	_, err := client.Databases().Get(context.Background(), "", "missing")
	require.Error(t, err)
	assert.True(t, turso.IsNotFound(err))

	var apiErr *turso.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "database not found", apiErr.Message)
	assert.Equal(t, "GET", apiErr.Method)
}

func TestDatabasesClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/organizations/acme/databases", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var req turso.DatabaseCreateRequest
		json.NewDecoder(request.Body).Decode(&req)
		assert.Equal(t, "new-db", req.Name)
		assert.Equal(t, "prod", req.Group)

		writer.WriteHeader(http.StatusCreated)
		json.NewEncoder(writer).Encode(map[string]interface{}{
			"database": turso.Database{Name: req.Name, DBID: "db-9", Group: req.Group},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	database, err := client.Databases().Create(context.Background(), "", &turso.DatabaseCreateRequest{
		Name:  "new-db",
		Group: "prod",
	})
	require.NoError(t, err)
	assert.Equal(t, "db-9", database.DBID)
	assert.Equal(t, "new-db", database.Name)
}

func TestDatabasesClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/organizations/acme/databases/old-db", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)

		json.NewEncoder(writer).Encode(map[string]string{"database": "old-db"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	err := client.Databases().Delete(context.Background(), "", "old-db")
	require.NoError(t, err)
}

func TestDatabasesClient_Usage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/organizations/acme/databases/app-db/usage", request.URL.Path)

		json.NewEncoder(writer).Encode(map[string]interface{}{
			"database": turso.DatabaseUsage{
				UUID:  "uuid-1",
				Total: turso.Usage{RowsRead: 1200, StorageBytes: 4096},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	usage, err := client.Databases().Usage(context.Background(), "", "app-db")
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", usage.UUID)
	assert.Equal(t, int64(1200), usage.Total.RowsRead)
}

func TestDatabasesClient_Stats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/organizations/acme/databases/app-db/stats", request.URL.Path)

		json.NewEncoder(writer).Encode(turso.DatabaseStats{
			TopQueries: []turso.QueryStat{{Query: "SELECT 1", RowsRead: 10}},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	stats, err := client.Databases().Stats(context.Background(), "", "app-db")
	require.NoError(t, err)
	require.Len(t, stats.TopQueries, 1)
	assert.Equal(t, "SELECT 1", stats.TopQueries[0].Query)
}

func TestDatabasesClient_CreateToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/organizations/acme/databases/app-db/auth/tokens", request.URL.Path)
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "2w", request.URL.Query().Get("expiration"))
		assert.Equal(t, "read-only", request.URL.Query().Get("authorization"))

		json.NewEncoder(writer).Encode(map[string]string{"jwt": "token-value"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	token, err := client.Databases().CreateToken(context.Background(), "", "app-db", &turso.DatabaseTokenRequest{
		Expiration:    "2w",
		Authorization: "read-only",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-value", token)
}

func TestDatabasesClient_CreateTokenDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Empty(t, request.URL.RawQuery)

		json.NewEncoder(writer).Encode(map[string]string{"jwt": "token-value"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	token, err := client.Databases().CreateToken(context.Background(), "", "app-db", nil)
	require.NoError(t, err)
	assert.Equal(t, "token-value", token)
}

func TestDatabasesClient_InvalidateTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/organizations/acme/databases/app-db/auth/rotate", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	err := client.Databases().InvalidateTokens(context.Background(), "", "app-db")
	require.NoError(t, err)
}

func TestDatabasesClient_OrgOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/organizations/other/databases", request.URL.Path)

		json.NewEncoder(writer).Encode(map[string]interface{}{"databases": []turso.Database{}})
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	_, err := client.Databases().List(context.Background(), "other", nil)
	require.NoError(t, err)
}

func TestDatabasesClient_NoOrganization(t *testing.T) {
	client := NewTestClient("http://127.0.0.1:0", "")

	_, err := client.Databases().List(context.Background(), "", nil)
	require.ErrorIs(t, err, turso.ErrOrganizationRequired)
}
