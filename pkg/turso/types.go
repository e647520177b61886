package turso

import "time"

// Database represents a database within an organization.
type Database struct {
	Name          string   `json:"Name"          yaml:"name"`
	DBID          string   `json:"DbId"          yaml:"db_id"`
	Hostname      string   `json:"Hostname"      yaml:"hostname"`
	Group         string   `json:"group"         yaml:"group"`
	Regions       []string `json:"regions"       yaml:"regions"`
	PrimaryRegion string   `json:"primaryRegion" yaml:"primary_region"`
	Type          string   `json:"type"          yaml:"type"`
	Version       string   `json:"version"       yaml:"version"`
	IsSchema      bool     `json:"is_schema"     yaml:"is_schema"`
	Schema        string   `json:"schema"        yaml:"schema"`
	AllowAttach   bool     `json:"allow_attach"  yaml:"allow_attach"`
	BlockReads    bool     `json:"block_reads"   yaml:"block_reads"`
	BlockWrites   bool     `json:"block_writes"  yaml:"block_writes"`
	Sleeping      bool     `json:"sleeping"      yaml:"sleeping"`
	Archived      bool     `json:"archived"      yaml:"archived"`
}

// DatabaseSeed describes how to populate a new database.
type DatabaseSeed struct {
	Type      string     `json:"type"                yaml:"type"` // "database" or "dump"
	Name      string     `json:"name,omitempty"      yaml:"name,omitempty"`
	URL       string     `json:"url,omitempty"       yaml:"url,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// DatabaseCreateRequest is the payload for creating a database.
type DatabaseCreateRequest struct {
	Name      string        `json:"name"                 yaml:"name"`
	Group     string        `json:"group"                yaml:"group"`
	Schema    string        `json:"schema,omitempty"     yaml:"schema,omitempty"`
	IsSchema  bool          `json:"is_schema,omitempty"  yaml:"is_schema,omitempty"`
	SizeLimit string        `json:"size_limit,omitempty" yaml:"size_limit,omitempty"`
	Seed      *DatabaseSeed `json:"seed,omitempty"       yaml:"seed,omitempty"`
}

// Usage is an aggregate of billable activity.
type Usage struct {
	RowsRead     int64 `json:"rows_read"     yaml:"rows_read"`
	RowsWritten  int64 `json:"rows_written"  yaml:"rows_written"`
	StorageBytes int64 `json:"storage_bytes" yaml:"storage_bytes"`
	BytesSynced  int64 `json:"bytes_synced"  yaml:"bytes_synced"`
}

// InstanceUsage is the usage of a single database instance.
type InstanceUsage struct {
	UUID  string `json:"uuid"  yaml:"uuid"`
	Usage Usage  `json:"usage" yaml:"usage"`
}

// DatabaseUsage is the usage breakdown for one database.
type DatabaseUsage struct {
	UUID      string          `json:"uuid"      yaml:"uuid"`
	Instances []InstanceUsage `json:"instances" yaml:"instances"`
	Total     Usage           `json:"total"     yaml:"total"`
}

// DatabaseStats carries the most expensive queries observed for a database.
type DatabaseStats struct {
	TopQueries []QueryStat `json:"top_queries" yaml:"top_queries"`
}

// QueryStat is one entry of DatabaseStats.
type QueryStat struct {
	Query       string `json:"query"        yaml:"query"`
	RowsRead    int64  `json:"rows_read"    yaml:"rows_read"`
	RowsWritten int64  `json:"rows_written" yaml:"rows_written"`
}

// DatabaseTokenRequest shapes the parameters for minting a database token.
type DatabaseTokenRequest struct {
	// Expiration is a duration string such as "2w1d30m", or "never".
	Expiration string

	// Authorization is "full-access" or "read-only".
	Authorization string
}

// Group represents a placement group of databases.
type Group struct {
	Name      string   `json:"name"      yaml:"name"`
	UUID      string   `json:"uuid"      yaml:"uuid"`
	Version   string   `json:"version"   yaml:"version"`
	Locations []string `json:"locations" yaml:"locations"`
	Primary   string   `json:"primary"   yaml:"primary"`
	Archived  bool     `json:"archived"  yaml:"archived"`
}

// GroupCreateRequest is the payload for creating a group.
type GroupCreateRequest struct {
	Name       string `json:"name"                 yaml:"name"`
	Location   string `json:"location"             yaml:"location"`
	Extensions string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Organization is a top-level tenant scoping all other resources.
type Organization struct {
	Name          string `json:"name"           yaml:"name"`
	Slug          string `json:"slug"           yaml:"slug"`
	Type          string `json:"type"           yaml:"type"` // "personal" or "team"
	PlanID        string `json:"plan_id"        yaml:"plan_id"`
	Overages      bool   `json:"overages"       yaml:"overages"`
	BlockedReads  bool   `json:"blocked_reads"  yaml:"blocked_reads"`
	BlockedWrites bool   `json:"blocked_writes" yaml:"blocked_writes"`
}

// OrganizationUpdateRequest is the payload for updating an organization.
type OrganizationUpdateRequest struct {
	Overages *bool `json:"overages,omitempty" yaml:"overages,omitempty"`
}

// OrganizationUsage aggregates usage across all databases of an
// organization.
type OrganizationUsage struct {
	UUID      string          `json:"uuid"      yaml:"uuid"`
	Usage     Usage           `json:"usage"     yaml:"usage"`
	Databases []DatabaseUsage `json:"databases" yaml:"databases"`
}

// Member is a user belonging to an organization.
type Member struct {
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email"    yaml:"email"`
	Role     string `json:"role"     yaml:"role"` // "owner", "admin", or "member"
}

// Invite is a pending membership invitation.
type Invite struct {
	ID               int       `json:"id"                yaml:"id"`
	Email            string    `json:"email"             yaml:"email"`
	Role             string    `json:"role"              yaml:"role"`
	OrganizationName string    `json:"organization_name" yaml:"organization_name"`
	Accepted         bool      `json:"accepted"          yaml:"accepted"`
	CreatedAt        time.Time `json:"created_at"        yaml:"created_at"`
}

// APIToken identifies a platform API token. The secret is only returned at
// creation time, as CreatedAPIToken.
type APIToken struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CreatedAPIToken is the one-time response to creating an API token.
type CreatedAPIToken struct {
	ID    string `json:"id"    yaml:"id"`
	Name  string `json:"name"  yaml:"name"`
	Token string `json:"token" yaml:"token"`
}

// TokenValidation reports the remaining validity of the current API token.
type TokenValidation struct {
	Exp int64 `json:"exp" yaml:"exp"` // unix seconds, -1 when the token never expires
}

// AuditLog is one entry of an organization's audit trail.
type AuditLog struct {
	Code      string                 `json:"code"       yaml:"code"`
	Message   string                 `json:"message"    yaml:"message"`
	Origin    string                 `json:"origin"     yaml:"origin"`
	Author    string                 `json:"author"     yaml:"author"`
	CreatedAt time.Time              `json:"created_at" yaml:"created_at"`
	Data      map[string]interface{} `json:"data"       yaml:"data"`
}

// Location is a region the platform can place databases in.
type Location struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}
