package cmd

import (
	"fmt"
	"io"
	"time"

	"leakjar-cli/internal/api"
	"leakjar-cli/internal/output"

	"github.com/spf13/cobra"
)

var (
	exportFrom     string
	exportTo       string
	exportType     string
	exportPageSize int
	exportMax      int
	exportFormat   string
	exportOutFile  string
	exportCompress bool
	exportSilent   bool
)

var exportCmd = &cobra.Command{
	Use:   "export [domain]",
	Short: "Export every leaked record for a domain to a file",
	Long: `Fetches every page of leaked records for a domain and writes them to the local
'result' directory, either as a JSON document with export metadata and a data summary
or as CSV. With --compress the file is stored in a ZIP archive.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		if format == output.FormatText {
			return fmt.Errorf("export supports json or csv, not %s", format)
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		q := api.LeakQuery{
			Domain:   args[0],
			DateFrom: exportFrom,
			DateTo:   exportTo,
			Type:     exportType,
		}
		progress(cmd, exportSilent, "Starting export for '%s'...\n", q.Domain)

		pages := 0
		records, err := client.FetchAll(cmd.Context(), q, api.FetchOptions{
			PageSize:   exportPageSize,
			MaxRecords: exportMax,
			OnPage: func(page *api.LeakedDataPage, fetched int) {
				pages++
				progress(cmd, exportSilent, "\rPage %d: %d records (cumulative: %d)", pages, len(page.Data), fetched)
			},
		})
		if err != nil {
			return fmt.Errorf("exporting leaked data: %w", err)
		}
		progress(cmd, exportSilent, "\n")

		if len(records) == 0 {
			progress(cmd, exportSilent, "No data to export.\n")
			return nil
		}

		now := time.Now()
		name := exportOutFile
		if name == "" {
			name = output.ExportFileName(q.Domain, format, now)
		}
		path := output.ResolvePath(name)

		err = output.WriteFile(path, func(w io.Writer) error {
			if format == output.FormatCSV {
				return output.WriteCSV(w, records)
			}
			return output.WriteJSON(w, output.NewExport(output.ExportParams{
				Query:          q,
				BaseURL:        client.BaseURL(),
				PageSize:       exportPageSize,
				MaxRecords:     exportMax,
				PagesProcessed: pages,
				Now:            now,
			}, records))
		})
		if err != nil {
			return err
		}

		if exportCompress {
			if path, err = output.Compress(path); err != nil {
				return fmt.Errorf("compressing export: %w", err)
			}
		}

		progress(cmd, exportSilent, "Exported %d records.\n", len(records))
		reportSaved(cmd, exportSilent, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Only records collected on or after this date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Only records collected on or before this date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportType, "type", "", "Record type filter")
	exportCmd.Flags().IntVar(&exportPageSize, "page-size", api.DefaultPageSize, "Page size per request (max 1000)")
	exportCmd.Flags().IntVar(&exportMax, "max", 0, "Max records to export (0 means all)")
	exportCmd.Flags().StringVarP(&exportFormat, "output", "o", "json", "Export format: json, csv")
	exportCmd.Flags().StringVarP(&exportOutFile, "file", "f", "", "Output file path (default is a timestamped file under 'result/')")
	exportCmd.Flags().BoolVar(&exportCompress, "compress", false, "Store the export in a ZIP archive")
	exportCmd.Flags().BoolVar(&exportSilent, "silent", false, "Suppress progress output")
}
