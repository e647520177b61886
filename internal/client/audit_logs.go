package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vitalis/turso/internal/constants"
	"github.com/vitalis/turso/pkg/turso"
)

// AuditLogsClient implements turso.AuditLogsClient.
type AuditLogsClient struct {
	client *Client
}

// NewAuditLogsClient creates a new audit logs client.
func NewAuditLogsClient(client *Client) *AuditLogsClient {
	return &AuditLogsClient{client: client}
}

// auditLogsEnvelope is the paginated wire shape of the audit trail. A null
// cursor marks the final page.
type auditLogsEnvelope struct {
	AuditLogs []turso.AuditLog `json:"audit_logs"`
	Cursor    *string          `json:"cursor"`
}

// List implements turso.AuditLogsClient.List.
func (c *AuditLogsClient) List(ctx context.Context, org string, params *turso.ListParams) (*turso.Page[turso.AuditLog], error) {
	path, err := c.client.orgPath(org, "audit-logs")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing audit logs: %w", err)
	}

	var envelope auditLogsEnvelope

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing audit logs response: %w", err)
	}

	return &turso.Page[turso.AuditLog]{
		Items:      envelope.AuditLogs,
		NextCursor: envelope.Cursor,
		HasMore:    envelope.Cursor != nil,
	}, nil
}

// ListAll implements turso.AuditLogsClient.ListAll. The iterator fetches
// pages on demand and threads the cursor between them; consuming it fully
// walks the entire trail.
func (c *AuditLogsClient) ListAll(ctx context.Context, org string) *turso.Iterator[turso.AuditLog] {
	return turso.NewIterator(ctx, func(ctx context.Context, cursor *string) (*turso.Page[turso.AuditLog], error) {
		params := turso.NewListParams().WithPageSize(constants.DefaultPageSize)
		if cursor != nil {
			params = params.WithCursor(*cursor)
		}

		return c.List(ctx, org, params)
	})
}
