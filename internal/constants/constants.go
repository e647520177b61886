package constants

import "time"

// API defaults.
const (
	// DefaultBaseURL is the production platform API endpoint.
	DefaultBaseURL = "https://api.turso.tech"

	// APIRoot is the fixed path prefix of the current API version.
	APIRoot = "v1"

	// DefaultUserAgent identifies this client on the wire.
	DefaultUserAgent = "turso-go"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits, applied only when a caller opts into transport retries.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Pagination defaults.
const (
	// DefaultPageSize is the page size used when a listing does not
	// specify one.
	DefaultPageSize = 100
)
