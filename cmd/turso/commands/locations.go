package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewLocationsCommand creates the locations command.
func NewLocationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List available locations",
		Long:  "List every location the platform can place databases in",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			locations, err := client.Locations().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list locations: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(locations)
			case OutputFormatYAML:
				return StandardYAMLRenderer(locations)
			default:
				if len(locations) == 0 {
					fmt.Println("No locations found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Code", "Name")

				for _, location := range locations {
					_ = table.Append(location.Code, location.Name)
				}

				_ = table.Render()

				return nil
			}
		},
	}
}
