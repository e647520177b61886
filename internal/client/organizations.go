package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vitalis/turso/pkg/turso"
)

// OrganizationsClient implements turso.OrganizationsClient.
type OrganizationsClient struct {
	client *Client
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(client *Client) *OrganizationsClient {
	return &OrganizationsClient{client: client}
}

// List implements turso.OrganizationsClient.List. The endpoint is global:
// it returns every organization the token's user belongs to.
func (c *OrganizationsClient) List(ctx context.Context) ([]turso.Organization, error) {
	resp, err := c.client.httpClient.Get(ctx, globalPath("organizations"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	var organizations []turso.Organization

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "organizations"), &organizations)
	if err != nil {
		return nil, fmt.Errorf("parsing organizations response: %w", err)
	}

	return organizations, nil
}

// Update implements turso.OrganizationsClient.Update.
func (c *OrganizationsClient) Update(ctx context.Context, org string, request *turso.OrganizationUpdateRequest) (*turso.Organization, error) {
	path, err := c.client.orgPath(org)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
	}

	var organization turso.Organization

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "organization"), &organization)
	if err != nil {
		return nil, fmt.Errorf("parsing organization response: %w", err)
	}

	return &organization, nil
}

// Usage implements turso.OrganizationsClient.Usage.
func (c *OrganizationsClient) Usage(ctx context.Context, org string) (*turso.OrganizationUsage, error) {
	path, err := c.client.orgPath(org, "usage")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting organization usage: %w", err)
	}

	var usage turso.OrganizationUsage

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "organization"), &usage)
	if err != nil {
		return nil, fmt.Errorf("parsing organization usage response: %w", err)
	}

	return &usage, nil
}

// ListMembers implements turso.OrganizationsClient.ListMembers.
func (c *OrganizationsClient) ListMembers(ctx context.Context, org string) ([]turso.Member, error) {
	path, err := c.client.orgPath(org, "members")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}

	var members []turso.Member

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "members"), &members)
	if err != nil {
		return nil, fmt.Errorf("parsing members response: %w", err)
	}

	return members, nil
}

// AddMember implements turso.OrganizationsClient.AddMember.
func (c *OrganizationsClient) AddMember(ctx context.Context, org, username, role string) error {
	path, err := c.client.orgPath(org, "members")
	if err != nil {
		return err
	}

	body := map[string]string{"username": username, "role": role}

	_, err = c.client.httpClient.Post(ctx, path, body)
	if err != nil {
		return fmt.Errorf("adding member: %w", err)
	}

	return nil
}

// RemoveMember implements turso.OrganizationsClient.RemoveMember.
func (c *OrganizationsClient) RemoveMember(ctx context.Context, org, username string) error {
	path, err := c.client.orgPath(org, "members", username)
	if err != nil {
		return err
	}

	_, err = c.client.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("removing member: %w", err)
	}

	return nil
}

// ListInvites implements turso.OrganizationsClient.ListInvites.
func (c *OrganizationsClient) ListInvites(ctx context.Context, org string) ([]turso.Invite, error) {
	path, err := c.client.orgPath(org, "invites")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing invites: %w", err)
	}

	var invites []turso.Invite

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "invites"), &invites)
	if err != nil {
		return nil, fmt.Errorf("parsing invites response: %w", err)
	}

	return invites, nil
}

// CreateInvite implements turso.OrganizationsClient.CreateInvite.
func (c *OrganizationsClient) CreateInvite(ctx context.Context, org, email, role string) (*turso.Invite, error) {
	path, err := c.client.orgPath(org, "invites")
	if err != nil {
		return nil, err
	}

	body := map[string]string{"email": email, "role": role}

	resp, err := c.client.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating invite: %w", err)
	}

	var invite turso.Invite

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "invited"), &invite)
	if err != nil {
		return nil, fmt.Errorf("parsing invite response: %w", err)
	}

	return &invite, nil
}

// DeleteInvite implements turso.OrganizationsClient.DeleteInvite.
func (c *OrganizationsClient) DeleteInvite(ctx context.Context, org, email string) error {
	path, err := c.client.orgPath(org, "invites", email)
	if err != nil {
		return err
	}

	_, err = c.client.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting invite: %w", err)
	}

	return nil
}
