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

// NewGroupsCommand creates the groups command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "group",
		Aliases: []string{"groups"},
		Short:   "Manage placement groups",
		Long:    "List, create, and reshape the placement groups databases run in",
	}

	cmd.AddCommand(newGroupsListCommand())
	cmd.AddCommand(newGroupsShowCommand())
	cmd.AddCommand(newGroupsCreateCommand())
	cmd.AddCommand(newGroupsDestroyCommand())
	cmd.AddCommand(newGroupsAddLocationCommand())
	cmd.AddCommand(newGroupsRemoveLocationCommand())
	cmd.AddCommand(newGroupsTransferCommand())
	cmd.AddCommand(newGroupsCreateTokenCommand())
	cmd.AddCommand(newGroupsInvalidateTokensCommand())

	return cmd
}

func newGroupsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List placement groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			groups, err := client.Groups().List(context.Background(), "")
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}

			return outputGroups(groups)
		},
	}
}

func outputGroups(groups []turso.Group) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(groups)
	case OutputFormatYAML:
		return StandardYAMLRenderer(groups)
	default:
		if len(groups) == 0 {
			fmt.Println("No groups found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Primary", "Locations", "Version", "Archived")

		for _, group := range groups {
			_ = table.Append(
				group.Name,
				group.Primary,
				strings.Join(group.Locations, ", "),
				group.Version,
				formatBool(group.Archived),
			)
		}

		_ = table.Render()

		return nil
	}
}

func outputGroup(group *turso.Group) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(group)
	case OutputFormatYAML:
		return StandardYAMLRenderer(group)
	default:
		return outputGroups([]turso.Group{*group})
	}
}

func newGroupsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show group details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			group, err := client.Groups().Get(context.Background(), "", args[0])
			if err != nil {
				return fmt.Errorf("failed to get group: %w", err)
			}

			return outputGroup(group)
		},
	}
}

func newGroupsCreateCommand() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a placement group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if location == "" {
				return ErrLocationRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			group, err := client.Groups().Create(context.Background(), "", &turso.GroupCreateRequest{
				Name:     args[0],
				Location: location,
			})
			if err != nil {
				return fmt.Errorf("failed to create group: %w", err)
			}

			fmt.Printf("Created group '%s' at '%s'\n", group.Name, group.Primary)

			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "primary location code, e.g. fra")

	return cmd
}

func newGroupsDestroyCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "destroy NAME",
		Short: "Destroy a placement group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("destroying '%s' is irreversible; re-run with --yes to confirm", args[0]) //nolint:err113
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			group, err := client.Groups().Delete(context.Background(), "", args[0])
			if err != nil {
				return fmt.Errorf("failed to destroy group: %w", err)
			}

			fmt.Printf("Destroyed group '%s'\n", group.Name)

			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the destruction")

	return cmd
}

func newGroupsAddLocationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-location NAME LOCATION",
		Short: "Replicate a group to another location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			group, err := client.Groups().AddLocation(context.Background(), "", args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to add group location: %w", err)
			}

			fmt.Printf("Group '%s' now replicates to: %s\n", group.Name, strings.Join(group.Locations, ", "))

			return nil
		},
	}
}

func newGroupsRemoveLocationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-location NAME LOCATION",
		Short: "Remove a replica location from a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			group, err := client.Groups().RemoveLocation(context.Background(), "", args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to remove group location: %w", err)
			}

			fmt.Printf("Group '%s' now replicates to: %s\n", group.Name, strings.Join(group.Locations, ", "))

			return nil
		},
	}
}

func newGroupsTransferCommand() *cobra.Command {
	var targetOrg string

	cmd := &cobra.Command{
		Use:   "transfer NAME",
		Short: "Transfer a group to another organization",
		Long:  "Transfer a group and all of its databases to another organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if targetOrg == "" {
				return ErrTargetOrgRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			group, err := client.Groups().Transfer(context.Background(), "", args[0], targetOrg)
			if err != nil {
				return fmt.Errorf("failed to transfer group: %w", err)
			}

			fmt.Printf("Transferred group '%s' to organization '%s'\n", group.Name, targetOrg)

			return nil
		},
	}

	cmd.Flags().StringVar(&targetOrg, "to", "", "destination organization slug")

	return cmd
}

func newGroupsCreateTokenCommand() *cobra.Command {
	var (
		expiration    string
		authorization string
	)

	cmd := &cobra.Command{
		Use:   "create-token NAME",
		Short: "Mint an access token valid for every database in a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			token, err := client.Groups().CreateToken(context.Background(), "", args[0], &turso.DatabaseTokenRequest{
				Expiration:    expiration,
				Authorization: authorization,
			})
			if err != nil {
				return fmt.Errorf("failed to create group token: %w", err)
			}

			fmt.Println(token)

			return nil
		},
	}

	cmd.Flags().StringVarP(&expiration, "expiration", "e", "", "token lifetime, e.g. 2w1d30m or never")
	cmd.Flags().StringVarP(&authorization, "authorization", "a", "", "full-access or read-only")

	return cmd
}

func newGroupsInvalidateTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate-tokens NAME",
		Short: "Invalidate every access token minted for a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Groups().InvalidateTokens(context.Background(), "", args[0])
			if err != nil {
				return fmt.Errorf("failed to invalidate group tokens: %w", err)
			}

			fmt.Printf("Invalidated all tokens for group '%s'\n", args[0])

			return nil
		},
	}
}
