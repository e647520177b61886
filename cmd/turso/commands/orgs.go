package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vitalis/turso/pkg/turso"
)

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "org",
		Aliases: []string{"orgs", "organizations"},
		Short:   "Manage organizations",
		Long:    "List organizations and manage their settings, members, and invites",
	}

	cmd.AddCommand(newOrgsListCommand())
	cmd.AddCommand(newOrgsUpdateCommand())
	cmd.AddCommand(newOrgsUsageCommand())
	cmd.AddCommand(newOrgsMembersCommand())
	cmd.AddCommand(newOrgsInvitesCommand())

	return cmd
}

func newOrgsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Long:  "List all organizations the current token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			organizations, err := client.Organizations().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list organizations: %w", err)
			}

			return outputOrganizations(organizations)
		},
	}
}

func outputOrganizations(organizations []turso.Organization) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(organizations)
	case OutputFormatYAML:
		return StandardYAMLRenderer(organizations)
	default:
		if len(organizations) == 0 {
			fmt.Println("No organizations found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Slug", "Type", "Plan", "Overages")

		for _, organization := range organizations {
			_ = table.Append(
				organization.Name,
				organization.Slug,
				organization.Type,
				organization.PlanID,
				formatBool(organization.Overages),
			)
		}

		_ = table.Render()

		return nil
	}
}

func newOrgsUpdateCommand() *cobra.Command {
	var overages string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update organization settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &turso.OrganizationUpdateRequest{}

			switch overages {
			case "":
			case "on":
				enabled := true
				request.Overages = &enabled
			case "off":
				disabled := false
				request.Overages = &disabled
			default:
				return fmt.Errorf("--overages must be 'on' or 'off', got %q", overages) //nolint:err113
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			organization, err := client.Organizations().Update(context.Background(), "", request)
			if err != nil {
				return fmt.Errorf("failed to update organization: %w", err)
			}

			fmt.Printf("Updated organization '%s'\n", organization.Slug)

			return nil
		},
	}

	cmd.Flags().StringVar(&overages, "overages", "", "allow usage overages (on/off)")

	return cmd
}

func newOrgsUsageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show aggregate usage for the organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			usage, err := client.Organizations().Usage(context.Background(), "")
			if err != nil {
				return fmt.Errorf("failed to get organization usage: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(usage)
			case OutputFormatYAML:
				return StandardYAMLRenderer(usage)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Rows Read", "Rows Written", "Storage Bytes", "Databases")

				_ = table.Append(
					fmt.Sprintf("%d", usage.Usage.RowsRead),
					fmt.Sprintf("%d", usage.Usage.RowsWritten),
					fmt.Sprintf("%d", usage.Usage.StorageBytes),
					fmt.Sprintf("%d", len(usage.Databases)),
				)

				_ = table.Render()

				return nil
			}
		},
	}
}

func newOrgsMembersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage organization members",
	}

	cmd.AddCommand(newOrgsMembersListCommand())
	cmd.AddCommand(newOrgsMembersAddCommand())
	cmd.AddCommand(newOrgsMembersRemoveCommand())

	return cmd
}

func newOrgsMembersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List organization members",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			members, err := client.Organizations().ListMembers(context.Background(), "")
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(members)
			case OutputFormatYAML:
				return StandardYAMLRenderer(members)
			default:
				if len(members) == 0 {
					fmt.Println("No members found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Username", "Email", "Role")

				for _, member := range members {
					_ = table.Append(member.Username, member.Email, member.Role)
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func newOrgsMembersAddCommand() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "add USERNAME",
		Short: "Add a member to the organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Organizations().AddMember(context.Background(), "", args[0], role)
			if err != nil {
				return fmt.Errorf("failed to add member: %w", err)
			}

			fmt.Printf("Added '%s' as %s\n", args[0], role)

			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "member", "role (admin or member)")

	return cmd
}

func newOrgsMembersRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove USERNAME",
		Short: "Remove a member from the organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Organizations().RemoveMember(context.Background(), "", args[0])
			if err != nil {
				return fmt.Errorf("failed to remove member: %w", err)
			}

			fmt.Printf("Removed '%s'\n", args[0])

			return nil
		},
	}
}

func newOrgsInvitesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invites",
		Short: "Manage pending invites",
	}

	cmd.AddCommand(newOrgsInvitesListCommand())
	cmd.AddCommand(newOrgsInvitesCreateCommand())
	cmd.AddCommand(newOrgsInvitesDeleteCommand())

	return cmd
}

func newOrgsInvitesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending invites",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			invites, err := client.Organizations().ListInvites(context.Background(), "")
			if err != nil {
				return fmt.Errorf("failed to list invites: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(invites)
			case OutputFormatYAML:
				return StandardYAMLRenderer(invites)
			default:
				if len(invites) == 0 {
					fmt.Println("No pending invites")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Email", "Role", "Accepted", "Created")

				for _, invite := range invites {
					_ = table.Append(
						invite.Email,
						invite.Role,
						formatBool(invite.Accepted),
						invite.CreatedAt.Format(timestampFormat),
					)
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func newOrgsInvitesCreateCommand() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "create EMAIL",
		Short: "Invite someone to the organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			invite, err := client.Organizations().CreateInvite(context.Background(), "", args[0], role)
			if err != nil {
				return fmt.Errorf("failed to create invite: %w", err)
			}

			fmt.Printf("Invited '%s' as %s\n", invite.Email, invite.Role)

			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "member", "role (admin or member)")

	return cmd
}

func newOrgsInvitesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete EMAIL",
		Short: "Withdraw a pending invite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Organizations().DeleteInvite(context.Background(), "", args[0])
			if err != nil {
				return fmt.Errorf("failed to delete invite: %w", err)
			}

			fmt.Printf("Withdrew invite for '%s'\n", args[0])

			return nil
		},
	}
}
