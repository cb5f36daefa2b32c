package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexInt decodes JSON numbers as well as numbers rendered as strings
// ("42"), which the count endpoints return.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("parse number %q: %w", s, err)
		}
		*n = FlexInt(v)
		return nil
	}
	var v json.Number
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	i, err := v.Int64()
	if err != nil {
		f, ferr := v.Float64()
		if ferr != nil {
			return err
		}
		i = int64(f)
	}
	*n = FlexInt(i)
	return nil
}

// LeakQuery holds the parameters of a /leaked-data request.
type LeakQuery struct {
	Domain string
	// Limit is clamped to MaxPageSize; zero or negative means DefaultPageSize.
	Limit  int
	Offset int
	// DateFrom and DateTo are passed through unvalidated (the API expects YYYY-MM-DD).
	DateFrom string
	DateTo   string
	// Type filters by data type (email, username, password). Passed through unvalidated.
	Type string
}

// LeakedRecord is one leaked credential entry. Every field may be absent.
type LeakedRecord struct {
	Email         string `json:"email,omitempty"`
	Username      string `json:"username,omitempty"`
	Domain        string `json:"domain,omitempty"`
	DateCollected string `json:"date_collected,omitempty"`
	HasPassword   bool   `json:"has_password"`
	Source        string `json:"source,omitempty"`
	URL           string `json:"url,omitempty"`
}

// Pagination is the paging metadata attached to a leaked data page.
type Pagination struct {
	Total   FlexInt `json:"total"`
	Limit   int     `json:"limit"`
	Offset  int     `json:"offset"`
	HasMore bool    `json:"has_more"`
}

type DomainInfo struct {
	Domain     string `json:"domain"`
	Type       string `json:"type,omitempty"`
	IsVerified bool   `json:"is_verified"`
	DomainID   string `json:"domain_id,omitempty"`
}

type ResponseMeta struct {
	ResponseTimeMS       int    `json:"response_time_ms,omitempty"`
	APIKeyID             string `json:"api_key_id,omitempty"`
	UserID               string `json:"user_id,omitempty"`
	TotalDomains         int    `json:"total_domains,omitempty"`
	VerifiedDomains      int    `json:"verified_domains,omitempty"`
	PendingVerification  int    `json:"pending_verification,omitempty"`
	APIAccessibleDomains int    `json:"api_accessible_domains,omitempty"`
}

// LeakedDataPage is a single page returned by /leaked-data.
type LeakedDataPage struct {
	Success    bool           `json:"success"`
	Data       []LeakedRecord `json:"data"`
	Pagination Pagination     `json:"pagination"`
	DomainInfo *DomainInfo    `json:"domain_info,omitempty"`
	Meta       *ResponseMeta  `json:"meta,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// CountFilters echoes the filters applied to a count request.
type CountFilters struct {
	DateFrom *string `json:"date_from"`
	DateTo   *string `json:"date_to"`
	Type     *string `json:"type"`
}

// LeakCount is returned by /leaked-data/count.
type LeakCount struct {
	Success        bool         `json:"success"`
	Domain         string       `json:"domain"`
	Total          FlexInt      `json:"total"`
	Filters        CountFilters `json:"filters"`
	PaginationInfo struct {
		TotalPages      int `json:"total_pages"`
		MaxLimitPerPage int `json:"max_limit_per_page"`
	} `json:"pagination_info"`
}

// UsageCounter is a request counter checked against a limit.
type UsageCounter struct {
	Requests   int `json:"requests"`
	Limit      int `json:"limit"`
	Percentage int `json:"percentage"`
}

type DailyUsage struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type UsagePeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type APIKeyInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Tier     string `json:"tier"`
	LastUsed string `json:"last_used,omitempty"`
}

// Quota is read from the X-RateLimit-* response headers of /usage.
type Quota struct {
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	Reset     string `json:"reset,omitempty"`
}

// Usage is returned by /usage.
type Usage struct {
	CurrentMonth struct {
		Requests        int         `json:"requests"`
		Limit           int         `json:"limit"`
		RecordsAccessed int         `json:"records_accessed"`
		DomainsQueried  int         `json:"domains_queried"`
		Period          UsagePeriod `json:"period"`
	} `json:"current_month"`
	Daily     UsageCounter `json:"daily"`
	Monthly   UsageCounter `json:"monthly"`
	RateLimit struct {
		PerMinute int `json:"per_minute"`
	} `json:"rate_limit"`
	DailyUsage []DailyUsage `json:"daily_usage"`
	AllTime    struct {
		TotalRequests        int    `json:"total_requests"`
		TotalRecordsAccessed int    `json:"total_records_accessed"`
		AccountCreated       string `json:"account_created,omitempty"`
	} `json:"all_time"`
	APIKey *APIKeyInfo `json:"api_key"`

	Quota *Quota `json:"quota,omitempty"`
}

// VerifiedDomain is an entry of /domains.
type VerifiedDomain struct {
	ID            string `json:"id"`
	Domain        string `json:"domain"`
	Type          string `json:"type"`
	VerifiedAt    string `json:"verified_at,omitempty"`
	APIAccessible bool   `json:"api_accessible"`
}

type VerifiedDomains struct {
	Success bool             `json:"success"`
	Data    []VerifiedDomain `json:"data"`
	Meta    *ResponseMeta    `json:"meta,omitempty"`
	Note    string           `json:"note,omitempty"`
}

// DomainStatus is an entry of /domains/all.
type DomainStatus struct {
	ID                string `json:"id"`
	Domain            string `json:"domain"`
	Type              string `json:"type"`
	CompanyName       string `json:"company_name,omitempty"`
	Description       string `json:"description,omitempty"`
	IsVerified        bool   `json:"is_verified"`
	VerifiedAt        string `json:"verified_at,omitempty"`
	Visibility        string `json:"visibility,omitempty"`
	MonitoringEnabled bool   `json:"monitoring_enabled"`
	OwnershipType     string `json:"ownership_type"`
	AccessLevel       string `json:"access_level"`
	APIAccessible     bool   `json:"api_accessible"`
	CreatedAt         string `json:"created_at,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
}

type DomainStats struct {
	Total             int            `json:"total"`
	Verified          int            `json:"verified"`
	Pending           int            `json:"pending"`
	MonitoringEnabled int            `json:"monitoring_enabled"`
	APIAccessible     int            `json:"api_accessible"`
	ByType            map[string]int `json:"by_type"`
	ByOwnership       struct {
		Direct       int `json:"direct"`
		Organization int `json:"organization"`
	} `json:"by_ownership"`
}

type DomainHelp struct {
	VerificationInfo      string   `json:"verification_info,omitempty"`
	ContactSupport        string   `json:"contact_support,omitempty"`
	APIAccessRequirements []string `json:"api_access_requirements,omitempty"`
}

type AllDomains struct {
	Success bool           `json:"success"`
	Data    []DomainStatus `json:"data"`
	Stats   DomainStats    `json:"stats"`
	Meta    *ResponseMeta  `json:"meta,omitempty"`
	Note    string         `json:"note,omitempty"`
	Help    DomainHelp     `json:"help"`
}

// DomainAccess reports whether a domain can be queried with the current token.
type DomainAccess struct {
	Accessible        bool            `json:"accessible"`
	AccessibleDomains []string        `json:"accessible_domains"`
	DomainInfo        *VerifiedDomain `json:"domain_info,omitempty"`
}

// errorBody is the JSON shape of a failed response.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Message string `json:"message"`
}
