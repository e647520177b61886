package client

import (
	"net/url"
	"strings"

	"github.com/vitalis/turso/internal/constants"
	"github.com/vitalis/turso/pkg/turso"
)

// orgPath builds an organization-scoped resource path:
// /v1/organizations/{org}/{segments...}. The per-call override wins over
// the configured default; with neither present this fails locally with
// ErrOrganizationRequired before any request is issued.
func (c *Client) orgPath(override string, segments ...string) (string, error) {
	org := override
	if org == "" {
		org = c.defaultOrg
	}

	if org == "" {
		return "", turso.ErrOrganizationRequired
	}

	parts := make([]string, 0, len(segments)+3)
	parts = append(parts, constants.APIRoot, "organizations", url.PathEscape(org))

	for _, segment := range segments {
		parts = append(parts, url.PathEscape(segment))
	}

	return "/" + strings.Join(parts, "/"), nil
}

// globalPath builds a path for the endpoints that bypass the organization
// prefix (locations, API token management).
func globalPath(segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, constants.APIRoot)

	for _, segment := range segments {
		parts = append(parts, url.PathEscape(segment))
	}

	return "/" + strings.Join(parts, "/")
}
