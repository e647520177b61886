package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vitalis/turso/pkg/turso"
)

// APITokensClient implements turso.APITokensClient. All of its endpoints
// are global; they identify the user through the bearer token alone.
type APITokensClient struct {
	client *Client
}

// NewAPITokensClient creates a new API tokens client.
func NewAPITokensClient(client *Client) *APITokensClient {
	return &APITokensClient{client: client}
}

// List implements turso.APITokensClient.List.
func (c *APITokensClient) List(ctx context.Context) ([]turso.APIToken, error) {
	resp, err := c.client.httpClient.Get(ctx, globalPath("auth", "api-tokens"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing API tokens: %w", err)
	}

	var tokens []turso.APIToken

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "tokens"), &tokens)
	if err != nil {
		return nil, fmt.Errorf("parsing API tokens response: %w", err)
	}

	return tokens, nil
}

// Create implements turso.APITokensClient.Create. The returned token value
// is shown exactly once; it cannot be recovered later.
func (c *APITokensClient) Create(ctx context.Context, name string) (*turso.CreatedAPIToken, error) {
	if name == "" {
		return nil, turso.ErrTokenNameRequired
	}

	resp, err := c.client.httpClient.Post(ctx, globalPath("auth", "api-tokens", name), nil)
	if err != nil {
		return nil, fmt.Errorf("creating API token: %w", err)
	}

	var token turso.CreatedAPIToken

	err = json.Unmarshal(resp.Body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing API token response: %w", err)
	}

	return &token, nil
}

// Revoke implements turso.APITokensClient.Revoke.
func (c *APITokensClient) Revoke(ctx context.Context, name string) error {
	if name == "" {
		return turso.ErrTokenNameRequired
	}

	_, err := c.client.httpClient.Delete(ctx, globalPath("auth", "api-tokens", name))
	if err != nil {
		return fmt.Errorf("revoking API token: %w", err)
	}

	return nil
}

// Validate implements turso.APITokensClient.Validate, reporting the expiry
// of the token the client is configured with.
func (c *APITokensClient) Validate(ctx context.Context) (*turso.TokenValidation, error) {
	resp, err := c.client.httpClient.Get(ctx, globalPath("auth", "validate"), nil)
	if err != nil {
		return nil, fmt.Errorf("validating API token: %w", err)
	}

	var validation turso.TokenValidation

	err = json.Unmarshal(resp.Body, &validation)
	if err != nil {
		return nil, fmt.Errorf("parsing token validation response: %w", err)
	}

	return &validation, nil
}
