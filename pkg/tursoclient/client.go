// Package tursoclient provides the main entry point for creating platform API clients.
package tursoclient

import (
	"fmt"
	"strings"

	"github.com/vitalis/turso/internal/client"
	"github.com/vitalis/turso/pkg/turso"
)

// New creates a new platform API client from config.
func New(config *turso.Config) (turso.Client, error) {
	if config == nil {
		return nil, turso.ErrConfigRequired
	}

	if config.BaseURL != "" {
		baseURL := strings.TrimSuffix(config.BaseURL, "/")
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			baseURL = "https://" + baseURL
		}

		config.BaseURL = baseURL
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a client authenticated with an explicit API token.
func NewWithToken(token, organization string) (turso.Client, error) {
	return New(&turso.Config{
		APIToken:     token,
		Organization: organization,
	})
}

// NewFromEnvironment creates a client that reads its token from the
// TURSO_API_TOKEN environment variable at request time.
func NewFromEnvironment(organization string) (turso.Client, error) {
	return New(&turso.Config{
		Organization: organization,
	})
}
