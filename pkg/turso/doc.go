// Package turso provides types, interfaces, and helpers for working with
// the Turso platform API.
//
// # Overview
//
// The turso package defines the domain types (e.g., Database, Group,
// Organization, AuditLog) and the interfaces for resource-oriented clients
// (e.g., DatabasesClient, GroupsClient). A concrete implementation of these
// clients is provided by the tursoclient package, which wires
// configuration, transport, and authentication. Most consumers should
// import tursoclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/vitalis/turso/pkg/turso"
//	  "github.com/vitalis/turso/pkg/tursoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := tursoclient.New(&turso.Config{
//	    APIToken:     "...",
//	    Organization: "my-org",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  dbs, err := cli.Databases().List(ctx, "", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = dbs
//	}
//
// # Errors
//
// Remote failures are represented by *Error, which carries a closed Kind
// taxonomy plus retry metadata. Helpers such as IsNotFound, IsUnauthorized,
// and IsRetryable make it easy to branch on common cases. Local
// configuration problems (a missing organization, for instance) are plain
// sentinel errors checked with errors.Is; they never reach the network and
// are never *Error values.
//
// The client never retries by default. Callers that want backoff can either
// branch on Error.IsRetryable/RetryAfter, or opt into transport-level
// retries via Config.RetryMax.
//
// # Pagination
//
// Cursor-paginated listings expose an Iterator that pulls pages lazily:
//
//	it := cli.AuditLogs().ListAll(ctx, "")
//	for entry := range it.Items() {
//	  _ = entry
//	}
//
// A mid-stream page failure ends the iteration without an error; see
// Iterator for the rationale.
package turso
