package cmd

import (
	"fmt"
	"strings"

	"leakjar-cli/internal/output"

	"github.com/spf13/cobra"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the verified domains available to your API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		domains, err := client.VerifiedDomains(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing domains: %w", err)
		}
		return output.WriteJSON(cmd.OutOrStdout(), domains)
	},
}

var domainsAllCmd = &cobra.Command{
	Use:   "all",
	Short: "List every domain with verification status and statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		domains, err := client.AllDomains(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing all domains: %w", err)
		}
		return output.WriteJSON(cmd.OutOrStdout(), domains)
	},
}

var domainsCheckCmd = &cobra.Command{
	Use:   "check [domain]",
	Short: "Check whether a domain can be queried with your API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		access, err := client.CheckDomainAccess(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("checking domain access: %w", err)
		}

		if access.Accessible {
			printLine(cmd, "%s is accessible.", args[0])
			return nil
		}
		printLine(cmd, "%s is not accessible with this API key.", args[0])
		if len(access.AccessibleDomains) > 0 {
			printLine(cmd, "Accessible domains: %s", strings.Join(access.AccessibleDomains, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(domainsCmd)
	domainsCmd.AddCommand(domainsAllCmd)
	domainsCmd.AddCommand(domainsCheckCmd)
}
