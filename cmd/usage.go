package cmd

import (
	"fmt"

	"leakjar-cli/internal/output"

	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show API usage statistics and remaining quota",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		usage, err := client.Usage(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetching usage: %w", err)
		}
		return output.WriteJSON(cmd.OutOrStdout(), usage)
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
