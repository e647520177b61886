// Package client implements the concrete turso.Client over the internal
// HTTP dispatcher.
package client

import (
	"os"
	"strings"

	"github.com/vitalis/turso/internal/auth"
	"github.com/vitalis/turso/internal/constants"
	"github.com/vitalis/turso/internal/http"
	"github.com/vitalis/turso/pkg/turso"
)

// Client implements the turso.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	defaultOrg string

	// Resource clients
	databases     turso.DatabasesClient
	groups        turso.GroupsClient
	organizations turso.OrganizationsClient
	apiTokens     turso.APITokensClient
	auditLogs     turso.AuditLogsClient
	locations     turso.LocationsClient
}

// createTokenProvider picks a token source from the config: an explicit
// token wins, then the TURSO_API_TOKEN environment variable. With neither,
// requests go out unauthenticated (useful against mock servers).
func createTokenProvider(config *turso.Config) auth.TokenProvider {
	if config.APIToken != "" {
		return auth.NewStaticTokenProvider(config.APIToken)
	}

	if os.Getenv(auth.EnvAPIToken) != "" {
		return auth.NewEnvTokenProvider("")
	}

	return nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *turso.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new platform API client.
func New(config *turso.Config) (*Client, error) {
	if config == nil {
		return nil, turso.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	baseURL = strings.TrimRight(baseURL, "/")

	httpClient := http.NewClient(baseURL, createTokenProvider(config), createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		defaultOrg: config.Organization,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.databases = NewDatabasesClient(c)
	c.groups = NewGroupsClient(c)
	c.organizations = NewOrganizationsClient(c)
	c.apiTokens = NewAPITokensClient(c)
	c.auditLogs = NewAuditLogsClient(c)
	c.locations = NewLocationsClient(c)
}

// Databases implements turso.Client.Databases.
func (c *Client) Databases() turso.DatabasesClient {
	return c.databases
}

// Groups implements turso.Client.Groups.
func (c *Client) Groups() turso.GroupsClient {
	return c.groups
}

// Organizations implements turso.Client.Organizations.
func (c *Client) Organizations() turso.OrganizationsClient {
	return c.organizations
}

// APITokens implements turso.Client.APITokens.
func (c *Client) APITokens() turso.APITokensClient {
	return c.apiTokens
}

// AuditLogs implements turso.Client.AuditLogs.
func (c *Client) AuditLogs() turso.AuditLogsClient {
	return c.auditLogs
}

// Locations implements turso.Client.Locations.
func (c *Client) Locations() turso.LocationsClient {
	return c.locations
}
