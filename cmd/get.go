package cmd

import (
	"fmt"
	"strings"

	"leakjar-cli/internal/output"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [path] [key=value...]",
	Short: "Perform an authenticated GET against any API path",
	Long: `Perform an authenticated GET against any API path and print the JSON response.
Examples:
  leakjar get /usage
  leakjar get /leaked-data domain=example.com limit=10`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(args[1:])
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		body, err := client.Get(cmd.Context(), ensureLeadingSlash(args[0]), params)
		if err != nil {
			return err
		}
		return output.WriteJSON(cmd.OutOrStdout(), body)
	},
}

func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (want key=value)", pair)
		}
		params[key] = value
	}
	return params, nil
}

func ensureLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

func init() {
	rootCmd.AddCommand(getCmd)
}
