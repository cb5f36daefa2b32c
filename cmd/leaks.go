package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"leakjar-cli/internal/api"
	"leakjar-cli/internal/output"

	"github.com/spf13/cobra"
)

var (
	leaksLimit    int
	leaksOffset   int
	leaksFrom     string
	leaksTo       string
	leaksType     string
	leaksAll      bool
	leaksPageSize int
	leaksMax      int
	leaksOutput   string
	leaksColumn   string
	leaksOutFile  string
	leaksSilent   bool
	leaksSummary  bool
)

var leaksCmd = &cobra.Command{
	Use:   "leaks [domain]",
	Short: "Look up leaked credentials for a domain",
	Long: `Look up leaked credentials for a verified domain.

By default a single page is fetched (--limit, --offset). With --all every page is
fetched in sequence until the API reports no more data or --max records are collected.`,
	Example: `  leakjar leaks example.com --limit 50
  leakjar leaks example.com --all --max 5000 -o csv -f example.csv
  leakjar leaks example.com --all --column email_domain -o text`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(leaksOutput)
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		q := api.LeakQuery{
			Domain:   args[0],
			Limit:    leaksLimit,
			Offset:   leaksOffset,
			DateFrom: leaksFrom,
			DateTo:   leaksTo,
			Type:     leaksType,
		}

		var records []api.LeakedRecord
		if leaksAll {
			if leaksMax > 0 {
				progress(cmd, leaksSilent, "Fetching up to %d records...\n", leaksMax)
			} else {
				progress(cmd, leaksSilent, "Fetching all records...\n")
			}
			records, err = client.FetchAll(cmd.Context(), q, api.FetchOptions{
				PageSize:   leaksPageSize,
				MaxRecords: leaksMax,
				OnPage: func(_ *api.LeakedDataPage, fetched int) {
					progress(cmd, leaksSilent, "\rFetched %d records...", fetched)
				},
			})
			if err != nil {
				return fmt.Errorf("fetching leaked data: %w", err)
			}
			progress(cmd, leaksSilent, "\nDone.\n")
		} else {
			page, err := client.LeakedData(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("fetching leaked data: %w", err)
			}
			if !page.Success {
				return fmt.Errorf("leaked data request for %s was not successful: %s", q.Domain, page.Error)
			}
			records = page.Data
			progress(cmd, leaksSilent, "Showing %d of %d records (offset %d, more available: %t)\n",
				len(records), int(page.Pagination.Total), page.Pagination.Offset, page.Pagination.HasMore)
		}

		render := func(w io.Writer) error {
			return renderRecords(w, records, format, leaksColumn, leaksSummary)
		}

		if leaksOutFile != "" {
			path := output.ResolvePath(leaksOutFile)
			if err := output.WriteFile(path, render); err != nil {
				return err
			}
			reportSaved(cmd, leaksSilent, path)
			return nil
		}
		if leaksSilent {
			return nil
		}
		return render(cmd.OutOrStdout())
	},
}

// renderRecords writes the summary, a single column, or the full records.
func renderRecords(w io.Writer, records []api.LeakedRecord, format output.Format, column string, summary bool) error {
	if summary {
		return output.WriteJSON(w, output.Summarize(records))
	}
	if column != "" {
		values, err := output.ColumnValues(records, column)
		if err != nil {
			return err
		}
		return output.WriteColumn(w, values, format)
	}
	return output.WriteRecords(w, records, format)
}

// reportSaved tells the user where a file went. Silent mode still prints the
// absolute path to stdout for scripting.
func reportSaved(cmd *cobra.Command, silent bool, path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	if silent {
		printLine(cmd, "%s", absPath)
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Saved output to %s\n", absPath)
}

func init() {
	rootCmd.AddCommand(leaksCmd)
	leaksCmd.Flags().IntVar(&leaksLimit, "limit", api.DefaultPageSize, "Records per page for a single page fetch (max 1000)")
	leaksCmd.Flags().IntVar(&leaksOffset, "offset", 0, "Number of records to skip")
	leaksCmd.Flags().StringVar(&leaksFrom, "from", "", "Only records collected on or after this date (YYYY-MM-DD)")
	leaksCmd.Flags().StringVar(&leaksTo, "to", "", "Only records collected on or before this date (YYYY-MM-DD)")
	leaksCmd.Flags().StringVar(&leaksType, "type", "", "Record type filter")
	leaksCmd.Flags().BoolVar(&leaksAll, "all", false, "Fetch every page")
	leaksCmd.Flags().IntVar(&leaksPageSize, "page-size", api.DefaultPageSize, "Page size per request with --all (max 1000)")
	leaksCmd.Flags().IntVar(&leaksMax, "max", 10000, "Max records to fetch with --all (0 means no limit)")
	leaksCmd.Flags().StringVarP(&leaksOutput, "output", "o", "json", "Output format: json, csv, text")
	leaksCmd.Flags().StringVar(&leaksColumn, "column", "", "Output only one column (email, username, domain, email_domain), de-duplicated")
	leaksCmd.Flags().StringVarP(&leaksOutFile, "file", "f", "", "Output file path (relative paths are saved under 'result/')")
	leaksCmd.Flags().BoolVar(&leaksSilent, "silent", false, "Suppress console output")
	leaksCmd.Flags().BoolVar(&leaksSummary, "summary", false, "Print a summary of the records instead of the records")
}
