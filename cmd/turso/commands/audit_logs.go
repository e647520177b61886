package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vitalis/turso/internal/constants"
	"github.com/vitalis/turso/pkg/turso"
)

// NewAuditLogsCommand creates the audit logs command group.
func NewAuditLogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "audit",
		Aliases: []string{"audit-logs"},
		Short:   "Read the organization audit trail",
	}

	cmd.AddCommand(newAuditLogsListCommand())

	return cmd
}

func newAuditLogsListCommand() *cobra.Command {
	var (
		allPages bool
		pageSize int
		cursor   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit log entries",
		Long:  "List audit log entries, newest first. Use --all to walk every page.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if allPages {
				logs := client.AuditLogs().ListAll(ctx, "").All()

				return outputAuditLogs(logs, nil)
			}

			params := turso.NewListParams().WithPageSize(pageSize)
			if cursor != "" {
				params = params.WithCursor(cursor)
			}

			page, err := client.AuditLogs().List(ctx, "", params)
			if err != nil {
				return fmt.Errorf("failed to list audit logs: %w", err)
			}

			return outputAuditLogs(page.Items, page.NextCursor)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.DefaultPageSize, "entries per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "resume from a previous page's cursor")

	return cmd
}

func outputAuditLogs(logs []turso.AuditLog, nextCursor *string) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(logs)
	case OutputFormatYAML:
		return StandardYAMLRenderer(logs)
	default:
		if len(logs) == 0 {
			fmt.Println("No audit log entries found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Created", "Code", "Author", "Origin", "Message")

		for _, entry := range logs {
			_ = table.Append(
				entry.CreatedAt.Format(timestampFormat),
				entry.Code,
				entry.Author,
				entry.Origin,
				entry.Message,
			)
		}

		_ = table.Render()

		if nextCursor != nil {
			fmt.Printf("\nMore entries available. Continue with --cursor %s or fetch everything with --all.\n", *nextCursor)
		}

		return nil
	}
}
