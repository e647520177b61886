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

func TestLocationsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/locations", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		json.NewEncoder(writer).Encode(map[string]interface{}{
			"locations": map[string]string{
				"nrt": "Tokyo, Japan",
				"ams": "Amsterdam, Netherlands",
				"fra": "Frankfurt, Germany",
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "")

	locations, err := client.Locations().List(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 3)

	// Flattened and sorted by code regardless of map iteration order.
	assert.Equal(t, turso.Location{Code: "ams", Name: "Amsterdam, Netherlands"}, locations[0])
	assert.Equal(t, turso.Location{Code: "fra", Name: "Frankfurt, Germany"}, locations[1])
	assert.Equal(t, turso.Location{Code: "nrt", Name: "Tokyo, Japan"}, locations[2])
}

func TestLocationsClient_ListEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		json.NewEncoder(writer).Encode(map[string]interface{}{"locations": map[string]string{}})
	}))
	defer server.Close()

	client := NewTestClient(server.URL, "")

	locations, err := client.Locations().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, locations)
}
