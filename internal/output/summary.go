package output

import (
	"sort"
	"time"

	"leakjar-cli/internal/api"
)

// DateRange is the earliest and latest collection date, formatted YYYY-MM-DD.
type DateRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

// DataSummary aggregates a set of records.
type DataSummary struct {
	RecordsWithEmails    int        `json:"records_with_emails"`
	RecordsWithUsernames int        `json:"records_with_usernames"`
	RecordsWithPasswords int        `json:"records_with_passwords"`
	UniqueSources        []string   `json:"unique_sources"`
	UniqueDomains        []string   `json:"unique_domains"`
	DateRange            *DateRange `json:"date_range"`
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Summarize counts populated fields and collects sources, domains and the date range.
// Dates that cannot be parsed are left out of the range.
func Summarize(records []api.LeakedRecord) DataSummary {
	s := DataSummary{
		UniqueSources: []string{},
		UniqueDomains: []string{},
	}
	sources := make(map[string]bool)
	domains := make(map[string]bool)
	var earliest, latest time.Time

	for _, r := range records {
		if r.Email != "" {
			s.RecordsWithEmails++
		}
		if r.Username != "" {
			s.RecordsWithUsernames++
		}
		if r.HasPassword {
			s.RecordsWithPasswords++
		}
		if r.Source != "" && !sources[r.Source] {
			sources[r.Source] = true
			s.UniqueSources = append(s.UniqueSources, r.Source)
		}
		if r.Domain != "" && !domains[r.Domain] {
			domains[r.Domain] = true
			s.UniqueDomains = append(s.UniqueDomains, r.Domain)
		}
		if t, ok := parseDate(r.DateCollected); ok {
			if earliest.IsZero() || t.Before(earliest) {
				earliest = t
			}
			if latest.IsZero() || t.After(latest) {
				latest = t
			}
		}
	}

	sort.Strings(s.UniqueSources)
	sort.Strings(s.UniqueDomains)
	if !earliest.IsZero() {
		s.DateRange = &DateRange{
			Earliest: earliest.UTC().Format(time.DateOnly),
			Latest:   latest.UTC().Format(time.DateOnly),
		}
	}
	return s
}
