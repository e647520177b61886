package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vitalis/turso/pkg/turso"
)

// NewDatabasesCommand creates the databases command group.
func NewDatabasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "db",
		Aliases: []string{"database", "databases"},
		Short:   "Manage databases",
		Long:    "List, create, inspect, and destroy databases within an organization",
	}

	cmd.AddCommand(newDatabasesListCommand())
	cmd.AddCommand(newDatabasesShowCommand())
	cmd.AddCommand(newDatabasesCreateCommand())
	cmd.AddCommand(newDatabasesDestroyCommand())
	cmd.AddCommand(newDatabasesUsageCommand())
	cmd.AddCommand(newDatabasesStatsCommand())
	cmd.AddCommand(newDatabasesCreateTokenCommand())
	cmd.AddCommand(newDatabasesInvalidateTokensCommand())

	return cmd
}

func newDatabasesListCommand() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List databases",
		Long:  "List all databases in the organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := turso.NewListParams()
			if group != "" {
				params = params.WithGroup(group)
			}

			databases, err := client.Databases().List(context.Background(), "", params)
			if err != nil {
				return fmt.Errorf("failed to list databases: %w", err)
			}

			return outputDatabases(databases)
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "filter by placement group")

	return cmd
}

func outputDatabases(databases []turso.Database) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(databases)
	case OutputFormatYAML:
		return StandardYAMLRenderer(databases)
	default:
		if len(databases) == 0 {
			fmt.Println("No databases found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Group", "Hostname", "Regions", "Sleeping")

		for _, database := range databases {
			_ = table.Append(
				database.Name,
				database.Group,
				database.Hostname,
				strings.Join(database.Regions, ", "),
				formatBool(database.Sleeping),
			)
		}

		_ = table.Render()

		return nil
	}
}

func newDatabasesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show database details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			database, err := client.Databases().Get(context.Background(), "", args[0])
			if err != nil {
				return fmt.Errorf("failed to get database: %w", err)
			}

			return outputDatabase(database)
		},
	}
}

func outputDatabase(database *turso.Database) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(database)
	case OutputFormatYAML:
		return StandardYAMLRenderer(database)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Field", "Value")

		_ = table.Append("Name", database.Name)
		_ = table.Append("ID", database.DBID)
		_ = table.Append("Hostname", database.Hostname)
		_ = table.Append("Group", database.Group)
		_ = table.Append("Primary Region", database.PrimaryRegion)
		_ = table.Append("Regions", strings.Join(database.Regions, ", "))
		_ = table.Append("Version", database.Version)
		_ = table.Append("Schema Database", formatBool(database.IsSchema))
		_ = table.Append("Sleeping", formatBool(database.Sleeping))
		_ = table.Append("Archived", formatBool(database.Archived))

		_ = table.Render()

		return nil
	}
}

func newDatabasesCreateCommand() *cobra.Command {
	var (
		group     string
		schema    string
		isSchema  bool
		sizeLimit string
		fromDB    string
		fromDump  string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &turso.DatabaseCreateRequest{
				Name:      args[0],
				Group:     group,
				Schema:    schema,
				IsSchema:  isSchema,
				SizeLimit: sizeLimit,
			}

			switch {
			case fromDB != "":
				request.Seed = &turso.DatabaseSeed{Type: "database", Name: fromDB}
			case fromDump != "":
				request.Seed = &turso.DatabaseSeed{Type: "dump", URL: fromDump}
			}

			database, err := client.Databases().Create(context.Background(), "", request)
			if err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}

			fmt.Printf("Created database '%s' in group '%s'\n", database.Name, database.Group)

			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "default", "placement group")
	cmd.Flags().StringVar(&schema, "schema", "", "schema database to attach to")
	cmd.Flags().BoolVar(&isSchema, "type-schema", false, "create a schema database")
	cmd.Flags().StringVar(&sizeLimit, "size-limit", "", "maximum database size, e.g. 500mb")
	cmd.Flags().StringVar(&fromDB, "from-db", "", "seed from an existing database")
	cmd.Flags().StringVar(&fromDump, "from-dump-url", "", "seed from a SQL dump URL")
	cmd.MarkFlagsMutuallyExclusive("from-db", "from-dump-url")

	return cmd
}

func newDatabasesDestroyCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "destroy NAME",
		Short: "Destroy a database",
		Long:  "Destroy a database and all of its data. This cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("destroying '%s' is irreversible; re-run with --yes to confirm", args[0]) //nolint:err113
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Databases().Delete(context.Background(), "", args[0])
			if err != nil {
				return fmt.Errorf("failed to destroy database: %w", err)
			}

			fmt.Printf("Destroyed database '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the destruction")

	return cmd
}

func newDatabasesUsageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "usage NAME",
		Short: "Show database usage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			usage, err := client.Databases().Usage(context.Background(), "", args[0])
			if err != nil {
				return fmt.Errorf("failed to get database usage: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(usage)
			case OutputFormatYAML:
				return StandardYAMLRenderer(usage)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Rows Read", "Rows Written", "Storage Bytes", "Bytes Synced")

				_ = table.Append(
					fmt.Sprintf("%d", usage.Total.RowsRead),
					fmt.Sprintf("%d", usage.Total.RowsWritten),
					fmt.Sprintf("%d", usage.Total.StorageBytes),
					fmt.Sprintf("%d", usage.Total.BytesSynced),
				)

				_ = table.Render()

				return nil
			}
		},
	}
}

func newDatabasesStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats NAME",
		Short: "Show the most expensive queries of a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			stats, err := client.Databases().Stats(context.Background(), "", args[0])
			if err != nil {
				return fmt.Errorf("failed to get database stats: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(stats)
			case OutputFormatYAML:
				return StandardYAMLRenderer(stats)
			default:
				if len(stats.TopQueries) == 0 {
					fmt.Println("No query stats found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Query", "Rows Read", "Rows Written")

				for _, stat := range stats.TopQueries {
					_ = table.Append(stat.Query, fmt.Sprintf("%d", stat.RowsRead), fmt.Sprintf("%d", stat.RowsWritten))
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func newDatabasesCreateTokenCommand() *cobra.Command {
	var (
		expiration    string
		authorization string
	)

	cmd := &cobra.Command{
		Use:   "create-token NAME",
		Short: "Mint an access token for a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			token, err := client.Databases().CreateToken(context.Background(), "", args[0], &turso.DatabaseTokenRequest{
				Expiration:    expiration,
				Authorization: authorization,
			})
			if err != nil {
				return fmt.Errorf("failed to create database token: %w", err)
			}

			fmt.Println(token)

			return nil
		},
	}

	cmd.Flags().StringVarP(&expiration, "expiration", "e", "", "token lifetime, e.g. 2w1d30m or never")
	cmd.Flags().StringVarP(&authorization, "authorization", "a", "", "full-access or read-only")

	return cmd
}

func newDatabasesInvalidateTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate-tokens NAME",
		Short: "Invalidate every access token minted for a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Databases().InvalidateTokens(context.Background(), "", args[0])
			if err != nil {
				return fmt.Errorf("failed to invalidate database tokens: %w", err)
			}

			fmt.Printf("Invalidated all tokens for database '%s'\n", args[0])

			return nil
		},
	}
}
