package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Usage(t *testing.T) {
	t.Run("decodes counters and quota headers", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/usage", r.URL.Path)
			w.Header().Set("X-RateLimit-Limit", "10000")
			w.Header().Set("X-RateLimit-Remaining", "9876")
			w.Header().Set("X-RateLimit-Reset", "2024-06-30T00:00:00.000Z")
			writeJSON(t, w, http.StatusOK, `{
				"current_month": {"requests": 124, "limit": 10000, "records_accessed": 5400, "domains_queried": 3,
					"period": {"start": "2024-06-01T00:00:00.000Z", "end": "2024-06-30T00:00:00.000Z"}},
				"daily": {"requests": 20, "limit": 500, "percentage": 4},
				"monthly": {"requests": 124, "limit": 10000, "percentage": 1},
				"rate_limit": {"per_minute": 100},
				"daily_usage": [{"date": "2024-06-10", "count": 12}, {"date": "2024-06-11", "count": 8}],
				"all_time": {"total_requests": 900, "total_records_accessed": 41000, "account_created": "2024-01-01T00:00:00Z"},
				"api_key": {"id": "key-1", "name": "ci", "tier": "basic"}
			}`)
		})

		usage, err := client.Usage(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 124, usage.CurrentMonth.Requests)
		assert.Equal(t, 20, usage.Daily.Requests)
		assert.Equal(t, 4, usage.Daily.Percentage)
		assert.Equal(t, 100, usage.RateLimit.PerMinute)
		require.Len(t, usage.DailyUsage, 2)
		assert.Equal(t, "2024-06-11", usage.DailyUsage[1].Date)
		assert.Equal(t, 900, usage.AllTime.TotalRequests)
		require.NotNil(t, usage.APIKey)
		assert.Equal(t, "basic", usage.APIKey.Tier)

		require.NotNil(t, usage.Quota)
		assert.Equal(t, 10000, usage.Quota.Limit)
		assert.Equal(t, 9876, usage.Quota.Remaining)
		assert.Equal(t, "2024-06-30T00:00:00.000Z", usage.Quota.Reset)
	})

	t.Run("no quota headers and no key", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, `{"daily": {"requests": 0, "limit": 500}, "daily_usage": [], "api_key": null}`)
		})

		usage, err := client.Usage(context.Background())
		require.NoError(t, err)
		assert.Nil(t, usage.Quota)
		assert.Nil(t, usage.APIKey)
		assert.Empty(t, usage.DailyUsage)
	})
}
