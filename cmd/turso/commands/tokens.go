package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTokensCommand creates the API tokens command group.
func NewTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "token",
		Aliases: []string{"tokens", "api-tokens"},
		Short:   "Manage platform API tokens",
		Long:    "List, mint, revoke, and validate platform API tokens",
	}

	cmd.AddCommand(newTokensListCommand())
	cmd.AddCommand(newTokensCreateCommand())
	cmd.AddCommand(newTokensRevokeCommand())
	cmd.AddCommand(newTokensValidateCommand())

	return cmd
}

func newTokensListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List API tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tokens, err := client.APITokens().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list API tokens: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(tokens)
			case OutputFormatYAML:
				return StandardYAMLRenderer(tokens)
			default:
				if len(tokens) == 0 {
					fmt.Println("No API tokens found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name")

				for _, token := range tokens {
					_ = table.Append(token.ID, token.Name)
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func newTokensCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Mint a new API token",
		Long:  "Mint a new API token. The token value is shown once and cannot be recovered.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			token, err := client.APITokens().Create(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to create API token: %w", err)
			}

			fmt.Println(token.Token)

			return nil
		},
	}
}

func newTokensRevokeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke NAME",
		Short: "Revoke an API token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.APITokens().Revoke(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to revoke API token: %w", err)
			}

			fmt.Printf("Revoked API token '%s'\n", args[0])

			return nil
		},
	}
}

func newTokensValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the current API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			validation, err := client.APITokens().Validate(context.Background())
			if err != nil {
				return fmt.Errorf("failed to validate API token: %w", err)
			}

			if validation.Exp < 0 {
				fmt.Println("Token is valid and never expires")

				return nil
			}

			fmt.Printf("Token is valid until %s\n", time.Unix(validation.Exp, 0).Format(timestampFormat))

			return nil
		},
	}
}
