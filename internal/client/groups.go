package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	internalhttp "github.com/vitalis/turso/internal/http"
	"github.com/vitalis/turso/pkg/turso"
)

// GroupsClient implements turso.GroupsClient.
type GroupsClient struct {
	client *Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(client *Client) *GroupsClient {
	return &GroupsClient{client: client}
}

// List implements turso.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, org string) ([]turso.Group, error) {
	path, err := c.client.orgPath(org, "groups")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	var groups []turso.Group

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "groups"), &groups)
	if err != nil {
		return nil, fmt.Errorf("parsing groups response: %w", err)
	}

	return groups, nil
}

// Get implements turso.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, org, name string) (*turso.Group, error) {
	path, err := c.client.orgPath(org, "groups", name)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting group: %w", err)
	}

	return parseGroup(resp.Body)
}

// Create implements turso.GroupsClient.Create.
func (c *GroupsClient) Create(ctx context.Context, org string, request *turso.GroupCreateRequest) (*turso.Group, error) {
	path, err := c.client.orgPath(org, "groups")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	return parseGroup(resp.Body)
}

// Delete implements turso.GroupsClient.Delete. The API echoes the deleted
// group back.
func (c *GroupsClient) Delete(ctx context.Context, org, name string) (*turso.Group, error) {
	path, err := c.client.orgPath(org, "groups", name)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting group: %w", err)
	}

	return parseGroup(resp.Body)
}

// AddLocation implements turso.GroupsClient.AddLocation.
func (c *GroupsClient) AddLocation(ctx context.Context, org, name, location string) (*turso.Group, error) {
	path, err := c.client.orgPath(org, "groups", name, "locations", location)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("adding group location: %w", err)
	}

	return parseGroup(resp.Body)
}

// RemoveLocation implements turso.GroupsClient.RemoveLocation.
func (c *GroupsClient) RemoveLocation(ctx context.Context, org, name, location string) (*turso.Group, error) {
	path, err := c.client.orgPath(org, "groups", name, "locations", location)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("removing group location: %w", err)
	}

	return parseGroup(resp.Body)
}

// Transfer implements turso.GroupsClient.Transfer, moving the group and its
// databases to another organization.
func (c *GroupsClient) Transfer(ctx context.Context, org, name, targetOrg string) (*turso.Group, error) {
	path, err := c.client.orgPath(org, "groups", name, "transfer")
	if err != nil {
		return nil, err
	}

	body := map[string]string{"organization": targetOrg}

	resp, err := c.client.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("transferring group: %w", err)
	}

	return parseGroup(resp.Body)
}

// CreateToken implements turso.GroupsClient.CreateToken. The minted JWT
// grants access to every database in the group.
func (c *GroupsClient) CreateToken(ctx context.Context, org, name string, request *turso.DatabaseTokenRequest) (string, error) {
	path, err := c.client.orgPath(org, "groups", name, "auth", "tokens")
	if err != nil {
		return "", err
	}

	resp, err := c.client.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   path,
		Query:  tokenRequestValues(request),
	})
	if err != nil {
		return "", fmt.Errorf("creating group token: %w", err)
	}

	return parseJWT(resp.Body)
}

// InvalidateTokens implements turso.GroupsClient.InvalidateTokens.
func (c *GroupsClient) InvalidateTokens(ctx context.Context, org, name string) error {
	path, err := c.client.orgPath(org, "groups", name, "auth", "rotate")
	if err != nil {
		return err
	}

	_, err = c.client.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("invalidating group tokens: %w", err)
	}

	return nil
}

// parseGroup extracts a group from a {"group": {...}} envelope.
func parseGroup(body []byte) (*turso.Group, error) {
	var group turso.Group

	err := json.Unmarshal(turso.UnwrapEnvelope(body, "group"), &group)
	if err != nil {
		return nil, fmt.Errorf("parsing group response: %w", err)
	}

	return &group, nil
}
