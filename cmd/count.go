package cmd

import (
	"fmt"

	"leakjar-cli/internal/api"
	"leakjar-cli/internal/output"

	"github.com/spf13/cobra"
)

var (
	countFrom string
	countTo   string
	countType string
)

var countCmd = &cobra.Command{
	Use:   "count [domain]",
	Short: "Count leaked records for a domain without fetching them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		count, err := client.LeakedDataCount(cmd.Context(), api.LeakQuery{
			Domain:   args[0],
			DateFrom: countFrom,
			DateTo:   countTo,
			Type:     countType,
		})
		if err != nil {
			return fmt.Errorf("counting leaked data: %w", err)
		}
		return output.WriteJSON(cmd.OutOrStdout(), count)
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().StringVar(&countFrom, "from", "", "Only records collected on or after this date (YYYY-MM-DD)")
	countCmd.Flags().StringVar(&countTo, "to", "", "Only records collected on or before this date (YYYY-MM-DD)")
	countCmd.Flags().StringVar(&countType, "type", "", "Record type filter")
}
