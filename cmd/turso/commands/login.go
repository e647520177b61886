package commands

import (
	"context"
	"fmt"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vitalis/turso/pkg/turso"
	"github.com/vitalis/turso/pkg/tursoclient"
)

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate the CLI",
	}

	cmd.AddCommand(newAuthLoginCommand())
	cmd.AddCommand(newAuthLogoutCommand())

	return cmd
}

func newAuthLoginCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API token for future commands",
		Long:  "Validate an API token against the platform and persist it to the CLI config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				fmt.Print("API token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))

				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			client, err := tursoclient.New(&turso.Config{APIToken: token})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			validation, err := client.APITokens().Validate(context.Background())
			if err != nil {
				return fmt.Errorf("token validation failed: %w", err)
			}

			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			config.Token = token

			if err := saveCLIConfig(config); err != nil {
				return err
			}

			if validation.Exp < 0 {
				fmt.Println("Logged in (token never expires)")
			} else {
				fmt.Printf("Logged in (token valid until %s)\n", time.Unix(validation.Exp, 0).Format(timestampFormat))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "API token (prompted when omitted)")

	return cmd
}

func newAuthLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			config.Token = ""

			if err := saveCLIConfig(config); err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
