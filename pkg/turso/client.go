package turso

import (
	"context"
	"time"
)

// Client is the top-level entry point to the platform API, grouping the
// per-resource clients.
type Client interface {
	Databases() DatabasesClient
	Groups() GroupsClient
	Organizations() OrganizationsClient
	APITokens() APITokensClient
	AuditLogs() AuditLogsClient
	Locations() LocationsClient
}

// DatabasesClient manages databases within an organization. The org
// argument overrides Config.Organization for that call; pass "" to use the
// configured default.
type DatabasesClient interface {
	List(ctx context.Context, org string, params *ListParams) ([]Database, error)
	Get(ctx context.Context, org, name string) (*Database, error)
	Create(ctx context.Context, org string, request *DatabaseCreateRequest) (*Database, error)
	Delete(ctx context.Context, org, name string) error
	Usage(ctx context.Context, org, name string) (*DatabaseUsage, error)
	Stats(ctx context.Context, org, name string) (*DatabaseStats, error)
	CreateToken(ctx context.Context, org, name string, request *DatabaseTokenRequest) (string, error)
	InvalidateTokens(ctx context.Context, org, name string) error
}

// GroupsClient manages placement groups within an organization.
type GroupsClient interface {
	List(ctx context.Context, org string) ([]Group, error)
	Get(ctx context.Context, org, name string) (*Group, error)
	Create(ctx context.Context, org string, request *GroupCreateRequest) (*Group, error)
	Delete(ctx context.Context, org, name string) (*Group, error)
	AddLocation(ctx context.Context, org, name, location string) (*Group, error)
	RemoveLocation(ctx context.Context, org, name, location string) (*Group, error)
	Transfer(ctx context.Context, org, name, targetOrg string) (*Group, error)
	CreateToken(ctx context.Context, org, name string, request *DatabaseTokenRequest) (string, error)
	InvalidateTokens(ctx context.Context, org, name string) error
}

// OrganizationsClient manages organizations, their members, and pending
// invites. Listing is global and does not take an organization.
type OrganizationsClient interface {
	List(ctx context.Context) ([]Organization, error)
	Update(ctx context.Context, org string, request *OrganizationUpdateRequest) (*Organization, error)
	Usage(ctx context.Context, org string) (*OrganizationUsage, error)
	ListMembers(ctx context.Context, org string) ([]Member, error)
	AddMember(ctx context.Context, org, username, role string) error
	RemoveMember(ctx context.Context, org, username string) error
	ListInvites(ctx context.Context, org string) ([]Invite, error)
	CreateInvite(ctx context.Context, org, email, role string) (*Invite, error)
	DeleteInvite(ctx context.Context, org, email string) error
}

// APITokensClient manages platform API tokens. These endpoints are global
// and bypass the organization prefix entirely.
type APITokensClient interface {
	List(ctx context.Context) ([]APIToken, error)
	Create(ctx context.Context, name string) (*CreatedAPIToken, error)
	Revoke(ctx context.Context, name string) error
	Validate(ctx context.Context) (*TokenValidation, error)
}

// AuditLogsClient reads an organization's audit trail.
type AuditLogsClient interface {
	// List fetches a single page. A nil cursor requests the first page.
	List(ctx context.Context, org string, params *ListParams) (*Page[AuditLog], error)

	// ListAll returns a lazy iterator over every entry, threading the
	// cursor across pages.
	ListAll(ctx context.Context, org string) *Iterator[AuditLog]
}

// LocationsClient exposes the global location discovery endpoint.
type LocationsClient interface {
	List(ctx context.Context) ([]Location, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a turso.Client.
//
// A Config is read once at construction and never mutated afterwards; the
// same value may be shared between goroutines. Per-call overrides (the org
// argument on resource clients) are parameters, not writes.
type Config struct {
	// APIToken is the platform API bearer token.
	APIToken string

	// Organization is the default organization slug. Individual calls may
	// override it; if neither is set, org-scoped calls fail locally with
	// ErrOrganizationRequired before any request is made.
	Organization string

	// BaseURL overrides the default API endpoint
	// (https://api.turso.tech). A trailing slash is trimmed.
	BaseURL string

	// Timeout bounds each HTTP exchange. Zero means the default.
	Timeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Logger receives debug request/response logs when Debug is set.
	Logger Logger

	// Debug enables request/response logging through Logger.
	Debug bool

	// RetryMax enables transport-level retries for transient failures
	// when greater than zero. The default of zero means every dispatch
	// issues exactly one request; retry policy is the caller's decision,
	// informed by Error.IsRetryable and Error.RetryAfter.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}
