package client

import (
	internalhttp "github.com/vitalis/turso/internal/http"
)

// NewTestClient creates a client against baseURL without authentication,
// scoped to org as its default organization. Tests point it at an
// httptest.Server.
func NewTestClient(baseURL, org string) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(baseURL, nil),
		baseURL:    baseURL,
		defaultOrg: org,
	}

	client.initializeResourceClients()

	return client
}
