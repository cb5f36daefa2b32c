package api

import (
	"context"
	"iter"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 1000
)

const (
	leakedDataPath      = "/leaked-data"
	leakedDataCountPath = "/leaked-data/count"
)

// FetchOptions controls FetchAll.
type FetchOptions struct {
	// PageSize is the per-request limit and the offset increment.
	PageSize int
	// MaxRecords truncates the aggregate. Zero means no cap.
	MaxRecords int
	// OnPage, if set, is called after each page is appended.
	OnPage func(page *LeakedDataPage, fetched int)
}

// clampLimit applies the API's default and maximum page size.
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

func validateDomain(domain string) error {
	if strings.TrimSpace(domain) == "" {
		return &ValidationError{Field: "domain", Message: "domain parameter is required"}
	}
	return nil
}

func (q LeakQuery) filterParams() map[string]string {
	params := map[string]string{"domain": q.Domain}
	if q.DateFrom != "" {
		params["date_from"] = q.DateFrom
	}
	if q.DateTo != "" {
		params["date_to"] = q.DateTo
	}
	if q.Type != "" {
		params["type"] = q.Type
	}
	return params
}

// queryParams validates q and builds the /leaked-data query string values.
func (q LeakQuery) queryParams() (map[string]string, error) {
	if err := validateDomain(q.Domain); err != nil {
		return nil, err
	}
	if q.Offset < 0 {
		return nil, &ValidationError{Field: "offset", Message: "offset must be >= 0"}
	}

	params := q.filterParams()
	params["limit"] = strconv.Itoa(clampLimit(q.Limit))
	params["offset"] = strconv.Itoa(q.Offset)
	return params, nil
}

// LeakedData fetches a single page of leaked records.
func (c *Client) LeakedData(ctx context.Context, q LeakQuery) (*LeakedDataPage, error) {
	params, err := q.queryParams()
	if err != nil {
		return nil, err
	}

	var page LeakedDataPage
	if _, err := c.get(ctx, leakedDataPath, params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// LeakedDataCount returns how many records match q. Limit and Offset are ignored.
func (c *Client) LeakedDataCount(ctx context.Context, q LeakQuery) (*LeakCount, error) {
	if err := validateDomain(q.Domain); err != nil {
		return nil, err
	}

	var count LeakCount
	if _, err := c.get(ctx, leakedDataCountPath, q.filterParams(), &count); err != nil {
		return nil, err
	}
	return &count, nil
}

// Pages returns an iterator over the pages matching q, starting at q.Offset
// and advancing by the effective page size. Iteration ends when the server
// reports no more pages, or silently when a page is unsuccessful or empty;
// such a page is not yielded. Request errors are yielded once and end iteration.
func (c *Client) Pages(ctx context.Context, q LeakQuery, pageSize int) iter.Seq2[*LeakedDataPage, error] {
	return func(yield func(*LeakedDataPage, error) bool) {
		size := clampLimit(pageSize)
		offset := q.Offset

		for {
			pq := q
			pq.Limit = size
			pq.Offset = offset

			page, err := c.LeakedData(ctx, pq)
			if err != nil {
				yield(nil, err)
				return
			}

			if !page.Success {
				c.logger.Warn().
					Str("domain", q.Domain).
					Int("offset", offset).
					Str("error", page.Error).
					Msg("Stopping pagination on unsuccessful page")
				return
			}
			if len(page.Data) == 0 {
				c.logger.Debug().Str("domain", q.Domain).Int("offset", offset).Msg("Stopping pagination on empty page")
				return
			}

			pagesFetched.Inc()
			recordsFetched.Add(float64(len(page.Data)))

			if !yield(page, nil) {
				return
			}

			if !page.Pagination.HasMore {
				return
			}

			offset += size

			if err := sleepContext(ctx, c.pageDelay); err != nil {
				yield(nil, err)
				return
			}
		}
	}
}

// Records flattens Pages into an iterator over individual records.
func (c *Client) Records(ctx context.Context, q LeakQuery, pageSize int) iter.Seq2[LeakedRecord, error] {
	return func(yield func(LeakedRecord, error) bool) {
		for page, err := range c.Pages(ctx, q, pageSize) {
			if err != nil {
				yield(LeakedRecord{}, err)
				return
			}
			for _, record := range page.Data {
				if !yield(record, nil) {
					return
				}
			}
		}
	}
}

// FetchAll aggregates every page matching q into one slice, in arrival order.
// A request error aborts the whole fetch; an empty or unsuccessful page ends
// it with the records gathered so far.
func (c *Client) FetchAll(ctx context.Context, q LeakQuery, opts FetchOptions) ([]LeakedRecord, error) {
	if _, err := q.queryParams(); err != nil {
		return nil, err
	}

	records := []LeakedRecord{}
	for page, err := range c.Pages(ctx, q, opts.PageSize) {
		if err != nil {
			return nil, err
		}

		records = append(records, page.Data...)
		if opts.OnPage != nil {
			opts.OnPage(page, len(records))
		}

		if opts.MaxRecords > 0 && len(records) >= opts.MaxRecords {
			records = records[:opts.MaxRecords]
			break
		}
	}

	c.logger.Debug().
		Str("domain", q.Domain).
		Int("records", len(records)).
		Msg("Paginated fetch complete")

	return records, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
