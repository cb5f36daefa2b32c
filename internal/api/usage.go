package api

import (
	"context"
	"strconv"
)

const usagePath = "/usage"

// Usage returns request counters, rate limits and daily history for the token.
// The quota advertised in the X-RateLimit-* headers is attached when present.
func (c *Client) Usage(ctx context.Context) (*Usage, error) {
	var usage Usage
	resp, err := c.get(ctx, usagePath, nil, &usage)
	if err != nil {
		return nil, err
	}

	header := resp.Header()
	if limit := header.Get("X-RateLimit-Limit"); limit != "" {
		quota := &Quota{Reset: header.Get("X-RateLimit-Reset")}
		quota.Limit, _ = strconv.Atoi(limit)
		quota.Remaining, _ = strconv.Atoi(header.Get("X-RateLimit-Remaining"))
		usage.Quota = quota
	}
	return &usage, nil
}
