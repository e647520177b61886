package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis/turso/pkg/turso"
)

// auditTrailServer serves a fixed trail split into pages keyed by cursor.
func auditTrailServer(t *testing.T, pages map[string]auditLogsEnvelope, requests *atomic.Int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if requests != nil {
			requests.Add(1)
		}

		assert.Equal(t, "/v1/organizations/acme/audit-logs", request.URL.Path)

		page, ok := pages[request.URL.Query().Get("cursor")]
		if !ok {
			writer.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(writer).Encode(map[string]string{"error": "unknown cursor"})

			return
		}

		json.NewEncoder(writer).Encode(page)
	}))
}

func cursorPtr(value string) *string {
	return &value
}

func TestAuditLogsClient_List(t *testing.T) {
	pages := map[string]auditLogsEnvelope{
		"": {
			AuditLogs: []turso.AuditLog{
				{Code: "db-create", Author: "alice"},
				{Code: "db-delete", Author: "bob"},
			},
			Cursor: cursorPtr("c1"),
		},
	}

	server := auditTrailServer(t, pages, nil)
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	page, err := client.AuditLogs().List(context.Background(), "", nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "db-create", page.Items[0].Code)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "c1", *page.NextCursor)
	assert.True(t, page.HasMore)
}

func TestAuditLogsClient_ListFinalPage(t *testing.T) {
	pages := map[string]auditLogsEnvelope{
		"c1": {
			AuditLogs: []turso.AuditLog{{Code: "group-create"}},
			Cursor:    nil,
		},
	}

	server := auditTrailServer(t, pages, nil)
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	page, err := client.AuditLogs().List(context.Background(), "", turso.NewListParams().WithCursor("c1"))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Nil(t, page.NextCursor)
	assert.False(t, page.HasMore)
}

func TestAuditLogsClient_ListAll(t *testing.T) {
	pages := map[string]auditLogsEnvelope{
		"": {
			AuditLogs: []turso.AuditLog{
				{Code: "db-create", Author: "alice"},
				{Code: "db-delete", Author: "bob"},
			},
			Cursor: cursorPtr("c1"),
		},
		"c1": {
			AuditLogs: []turso.AuditLog{{Code: "member-add", Author: "alice"}},
			Cursor:    nil,
		},
	}

	var requests atomic.Int32

	server := auditTrailServer(t, pages, &requests)
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	logs := client.AuditLogs().ListAll(context.Background(), "").All()
	require.Len(t, logs, 3)
	assert.Equal(t, "db-create", logs[0].Code)
	assert.Equal(t, "db-delete", logs[1].Code)
	assert.Equal(t, "member-add", logs[2].Code)
	assert.Equal(t, int32(2), requests.Load())
}

func TestAuditLogsClient_ListAllIsLazy(t *testing.T) {
	pages := map[string]auditLogsEnvelope{
		"": {
			AuditLogs: []turso.AuditLog{{Code: "db-create"}, {Code: "db-delete"}},
			Cursor:    cursorPtr("c1"),
		},
		"c1": {
			AuditLogs: []turso.AuditLog{{Code: "member-add"}},
			Cursor:    nil,
		},
	}

	var requests atomic.Int32

	server := auditTrailServer(t, pages, &requests)
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	iterator := client.AuditLogs().ListAll(context.Background(), "")
	assert.Equal(t, int32(0), requests.Load())

	entry, ok := iterator.Next()
	require.True(t, ok)
	assert.Equal(t, "db-create", entry.Code)
	assert.Equal(t, int32(1), requests.Load())

	// Draining the first page's buffer needs no further request.
	_, ok = iterator.Next()
	require.True(t, ok)
	assert.Equal(t, int32(1), requests.Load())
}

func TestAuditLogsClient_ListAllEndsOnPageError(t *testing.T) {
	// The second cursor is unknown to the server, so the fetch fails;
	// iteration ends with the entries already retrieved.
	pages := map[string]auditLogsEnvelope{
		"": {
			AuditLogs: []turso.AuditLog{{Code: "db-create"}},
			Cursor:    cursorPtr("gone"),
		},
	}

	server := auditTrailServer(t, pages, nil)
	defer server.Close()

	client := NewTestClient(server.URL, "acme")

	logs := client.AuditLogs().ListAll(context.Background(), "").All()
	require.Len(t, logs, 1)
	assert.Equal(t, "db-create", logs[0].Code)
}

func TestAuditLogsClient_ListAllNoOrganization(t *testing.T) {
	client := NewTestClient("http://127.0.0.1:0", "")

	logs := client.AuditLogs().ListAll(context.Background(), "").All()
	assert.Empty(t, logs)
}
