// Package output renders leaked records for the console and for files.
package output

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"leakjar-cli/internal/api"
)

// Format is a rendering format for records.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
)

// ParseFormat accepts json, csv or text in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatText:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, csv or text)", s)
	}
}

// CSVHeader is the column order used by every CSV writer in this package.
var CSVHeader = []string{"email", "username", "domain", "date_collected", "has_password"}

func csvRow(r api.LeakedRecord) []string {
	return []string{r.Email, r.Username, r.Domain, r.DateCollected, strconv.FormatBool(r.HasPassword)}
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteCSV writes the header and one row per record.
func WriteCSV(w io.Writer, records []api.LeakedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(csvRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteText writes one tab separated line per record.
func WriteText(w io.Writer, records []api.LeakedRecord) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		pw := "no"
		if r.HasPassword {
			pw = "yes"
		}
		fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%s\n", r.Email, r.Username, r.Domain, r.DateCollected, pw)
	}
	return bw.Flush()
}

// WriteRecords renders records in the given format. JSON output is the bare array.
func WriteRecords(w io.Writer, records []api.LeakedRecord, format Format) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatText:
		return WriteText(w, records)
	default:
		if records == nil {
			records = []api.LeakedRecord{}
		}
		return WriteJSON(w, records)
	}
}

// Column names accepted by ColumnValues.
const (
	ColumnEmail       = "email"
	ColumnUsername    = "username"
	ColumnDomain      = "domain"
	ColumnEmailDomain = "email_domain"
)

func columnValue(r api.LeakedRecord, column string) string {
	switch column {
	case ColumnEmail:
		return r.Email
	case ColumnUsername:
		return r.Username
	case ColumnDomain:
		return r.Domain
	case ColumnEmailDomain:
		if at := strings.LastIndex(r.Email, "@"); at >= 0 && at < len(r.Email)-1 {
			return strings.ToLower(r.Email[at+1:])
		}
	}
	return ""
}

// ColumnValues returns the sorted, de-duplicated non-empty values of one column.
func ColumnValues(records []api.LeakedRecord, column string) ([]string, error) {
	column = strings.ToLower(strings.TrimSpace(column))
	switch column {
	case ColumnEmail, ColumnUsername, ColumnDomain, ColumnEmailDomain:
	default:
		return nil, fmt.Errorf("unknown column %q (want email, username, domain or email_domain)", column)
	}

	seen := make(map[string]bool)
	values := []string{}
	for _, r := range records {
		val := columnValue(r, column)
		if val != "" && !seen[val] {
			seen[val] = true
			values = append(values, val)
		}
	}
	sort.Strings(values)
	return values, nil
}

// WriteColumn prints a single column as a JSON array or as plain lines.
func WriteColumn(w io.Writer, values []string, format Format) error {
	if format == FormatJSON {
		return WriteJSON(w, values)
	}
	bw := bufio.NewWriter(w)
	for _, v := range values {
		fmt.Fprintln(bw, v)
	}
	return bw.Flush()
}
