package output

import (
	"time"

	"leakjar-cli/internal/api"
)

const apiVersion = "v1"

// ExportInfo describes how an export was produced.
type ExportInfo struct {
	Domain           string `json:"domain"`
	SafeDomainName   string `json:"safe_domain_name"`
	ExportTimestamp  string `json:"export_timestamp"`
	TotalRecords     int    `json:"total_records"`
	RequestedRecords int    `json:"requested_records,omitempty"`
	PageSize         int    `json:"page_size"`
	PagesProcessed   int    `json:"pages_processed"`
	APIEndpoint      string `json:"api_endpoint"`
	DateFilter       string `json:"date_filter"`
	APIVersion       string `json:"api_version"`
}

// Export is the JSON document written by the export command.
type Export struct {
	ExportInfo  ExportInfo         `json:"export_info"`
	DataSummary DataSummary        `json:"data_summary"`
	Records     []api.LeakedRecord `json:"records"`
}

// ExportParams carries the request side of an export.
type ExportParams struct {
	Query          api.LeakQuery
	BaseURL        string
	PageSize       int
	MaxRecords     int
	PagesProcessed int
	Now            time.Time
}

// NewExport builds the export envelope for records.
func NewExport(p ExportParams, records []api.LeakedRecord) *Export {
	if records == nil {
		records = []api.LeakedRecord{}
	}
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}

	return &Export{
		ExportInfo: ExportInfo{
			Domain:           p.Query.Domain,
			SafeDomainName:   SanitizeFilename(p.Query.Domain),
			ExportTimestamp:  now.UTC().Format(time.RFC3339),
			TotalRecords:     len(records),
			RequestedRecords: p.MaxRecords,
			PageSize:         p.PageSize,
			PagesProcessed:   p.PagesProcessed,
			APIEndpoint:      p.BaseURL + "/leaked-data",
			DateFilter:       dateFilter(p.Query),
			APIVersion:       apiVersion,
		},
		DataSummary: Summarize(records),
		Records:     records,
	}
}

func dateFilter(q api.LeakQuery) string {
	switch {
	case q.DateFrom != "" && q.DateTo != "":
		return q.DateFrom + " to " + q.DateTo
	case q.DateFrom != "":
		return q.DateFrom + " onwards"
	case q.DateTo != "":
		return "until " + q.DateTo
	default:
		return "No filter"
	}
}

// ExportFileName returns the default file name for an export of domain.
func ExportFileName(domain string, format Format, now time.Time) string {
	ext := ".json"
	if format == FormatCSV {
		ext = ".csv"
	}
	return "leaked-data-export_" + SanitizeFilename(domain) + "_" + now.UTC().Format("2006-01-02T15-04-05") + ext
}
