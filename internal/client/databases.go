package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	internalhttp "github.com/vitalis/turso/internal/http"
	"github.com/vitalis/turso/pkg/turso"
)

// DatabasesClient implements turso.DatabasesClient.
type DatabasesClient struct {
	client *Client
}

// NewDatabasesClient creates a new databases client.
func NewDatabasesClient(client *Client) *DatabasesClient {
	return &DatabasesClient{client: client}
}

// List implements turso.DatabasesClient.List.
func (c *DatabasesClient) List(ctx context.Context, org string, params *turso.ListParams) ([]turso.Database, error) {
	path, err := c.client.orgPath(org, "databases")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}

	var databases []turso.Database

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "databases"), &databases)
	if err != nil {
		return nil, fmt.Errorf("parsing databases response: %w", err)
	}

	return databases, nil
}

// Get implements turso.DatabasesClient.Get.
func (c *DatabasesClient) Get(ctx context.Context, org, name string) (*turso.Database, error) {
	path, err := c.client.orgPath(org, "databases", name)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting database: %w", err)
	}

	var database turso.Database

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "database"), &database)
	if err != nil {
		return nil, fmt.Errorf("parsing database response: %w", err)
	}

	return &database, nil
}

// Create implements turso.DatabasesClient.Create.
func (c *DatabasesClient) Create(ctx context.Context, org string, request *turso.DatabaseCreateRequest) (*turso.Database, error) {
	path, err := c.client.orgPath(org, "databases")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	var database turso.Database

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "database"), &database)
	if err != nil {
		return nil, fmt.Errorf("parsing database response: %w", err)
	}

	return &database, nil
}

// Delete implements turso.DatabasesClient.Delete.
func (c *DatabasesClient) Delete(ctx context.Context, org, name string) error {
	path, err := c.client.orgPath(org, "databases", name)
	if err != nil {
		return err
	}

	_, err = c.client.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting database: %w", err)
	}

	return nil
}

// Usage implements turso.DatabasesClient.Usage.
func (c *DatabasesClient) Usage(ctx context.Context, org, name string) (*turso.DatabaseUsage, error) {
	path, err := c.client.orgPath(org, "databases", name, "usage")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting database usage: %w", err)
	}

	var usage turso.DatabaseUsage

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "database"), &usage)
	if err != nil {
		return nil, fmt.Errorf("parsing database usage response: %w", err)
	}

	return &usage, nil
}

// Stats implements turso.DatabasesClient.Stats.
func (c *DatabasesClient) Stats(ctx context.Context, org, name string) (*turso.DatabaseStats, error) {
	path, err := c.client.orgPath(org, "databases", name, "stats")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting database stats: %w", err)
	}

	var stats turso.DatabaseStats

	err = json.Unmarshal(resp.Body, &stats)
	if err != nil {
		return nil, fmt.Errorf("parsing database stats response: %w", err)
	}

	return &stats, nil
}

// CreateToken implements turso.DatabasesClient.CreateToken. The returned
// string is the minted JWT; it is never stored by the client.
func (c *DatabasesClient) CreateToken(ctx context.Context, org, name string, request *turso.DatabaseTokenRequest) (string, error) {
	path, err := c.client.orgPath(org, "databases", name, "auth", "tokens")
	if err != nil {
		return "", err
	}

	resp, err := c.client.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   path,
		Query:  tokenRequestValues(request),
	})
	if err != nil {
		return "", fmt.Errorf("creating database token: %w", err)
	}

	return parseJWT(resp.Body)
}

// InvalidateTokens implements turso.DatabasesClient.InvalidateTokens. All
// previously minted tokens for the database stop working.
func (c *DatabasesClient) InvalidateTokens(ctx context.Context, org, name string) error {
	path, err := c.client.orgPath(org, "databases", name, "auth", "rotate")
	if err != nil {
		return err
	}

	_, err = c.client.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("invalidating database tokens: %w", err)
	}

	return nil
}

// parseJWT extracts the minted token from a {"jwt": "..."} envelope.
func parseJWT(body []byte) (string, error) {
	var jwt string

	err := json.Unmarshal(turso.UnwrapEnvelope(body, "jwt"), &jwt)
	if err != nil {
		return "", fmt.Errorf("parsing token response: %w", err)
	}

	return jwt, nil
}

// tokenRequestValues shapes token-minting parameters as query values,
// including only what was set.
func tokenRequestValues(request *turso.DatabaseTokenRequest) url.Values {
	values := url.Values{}

	if request == nil {
		return values
	}

	if request.Expiration != "" {
		values.Set("expiration", request.Expiration)
	}

	if authorization := strings.TrimSpace(request.Authorization); authorization != "" {
		values.Set("authorization", authorization)
	}

	return values
}
