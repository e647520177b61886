// Package tursoclient provides the primary entry point for constructing a
// platform API client that implements the turso.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the turso package. Most
// applications should import tursoclient to build a client, then use the
// returned turso.Client to access resource-specific clients, for example
// Databases(), Groups(), AuditLogs(), etc.
//
// Quick start
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
//
//	  // With an API token you already have:
//	  cli, err := tursoclient.New(&turso.Config{
//	    APIToken:     "eyJhbGciOi...", // bearer token
//	    Organization: "my-org",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or let the client read TURSO_API_TOKEN from the environment:
//	  cli, err = tursoclient.NewFromEnvironment("my-org")
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the turso.Client interface
//	  databases, err := cli.Databases().List(ctx, "", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = databases
//	}
//
// # Organizations
//
// Config.Organization sets the default organization for org-scoped calls.
// Every resource method also takes an org argument that overrides the
// default for that call; pass "" to use the configured value. When neither
// is present the call fails locally with turso.ErrOrganizationRequired.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewFromEnvironment that wrap New with the appropriate configuration.
package tursoclient
