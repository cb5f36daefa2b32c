package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL   = "http://localhost:3000/api/v1"
	DefaultTimeout   = 30 * time.Second
	DefaultPageDelay = 100 * time.Millisecond
	DefaultUserAgent = "leakjar-cli/1.0"
)

// Config holds everything a Client needs. It is passed in explicitly;
// the client never reads global state.
type Config struct {
	// Token is sent as "Authorization: Bearer <Token>" on every request.
	Token   string
	BaseURL string
	Timeout time.Duration
	// PageDelay is slept between successive page requests. Zero disables it.
	PageDelay time.Duration
	UserAgent string
	Logger    *zerolog.Logger
}

// DefaultConfig returns a configuration with the stock base URL, timeout and page delay.
func DefaultConfig(token string) Config {
	return Config{
		Token:     token,
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		PageDelay: DefaultPageDelay,
		UserAgent: DefaultUserAgent,
	}
}

// Client is the LeakJar API client.
type Client struct {
	restyClient *resty.Client
	pageDelay   time.Duration
	logger      zerolog.Logger
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, ErrNoToken
	}
	if cfg.BaseURL == "" {
		return nil, ErrNoBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	pageDelay := cfg.PageDelay
	if pageDelay < 0 {
		pageDelay = 0
	}

	logger := log.With().Str("component", "leakjar-client").Logger()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	client.SetTimeout(timeout)
	client.SetAuthToken(cfg.Token)
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", userAgent)
	client.SetLogger(restyLogger{logger: logger})

	return &Client{
		restyClient: client,
		pageDelay:   pageDelay,
		logger:      logger,
	}, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.restyClient.BaseURL
}

// Get issues an authenticated GET to BaseURL+path and returns the decoded JSON body.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (map[string]any, error) {
	var body map[string]any
	if _, err := c.request(ctx, genericEndpoint, path, params, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// genericEndpoint is the metrics label for caller supplied paths.
const genericEndpoint = "generic"

// get performs the request, maps failures to TransportError / APIError and
// decodes a successful body into out when out is non-nil.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out any) (*resty.Response, error) {
	return c.request(ctx, endpoint, endpoint, params, out)
}

// request is get with a separate metrics label for endpoint.
func (c *Client) request(ctx context.Context, label, endpoint string, params map[string]string, out any) (*resty.Response, error) {
	requestID := uuid.NewString()
	start := time.Now()

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("request_id", requestID).
		Interface("params", params).
		Msg("Sending request")

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetQueryParams(params).
		Get(endpoint)

	requestDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

	if err != nil {
		errorsTotal.WithLabelValues(string(KindTransport)).Inc()
		requestsTotal.WithLabelValues(label, "transport_error").Inc()
		c.logger.Debug().Err(err).Str("endpoint", endpoint).Str("request_id", requestID).Msg("Request failed")
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	requestsTotal.WithLabelValues(label, strconv.Itoa(resp.StatusCode())).Inc()
	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("Received response")

	if !resp.IsSuccess() {
		errorsTotal.WithLabelValues(string(KindAPI)).Inc()
		return resp, newAPIError(endpoint, resp)
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return resp, fmt.Errorf("decode %s response: %w", endpoint, err)
		}
	}
	return resp, nil
}

func newAPIError(endpoint string, resp *resty.Response) *APIError {
	status := resp.Status()
	if status == "" {
		status = strconv.Itoa(resp.StatusCode())
	}
	apiErr := &APIError{
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode(),
		Status:     status,
		Message:    status,
	}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Details = body.Details
		if apiErr.Details == "" {
			apiErr.Details = body.Message
		}
	}
	return apiErr
}

// restyLogger routes resty's internal warnings through zerolog.
type restyLogger struct {
	logger zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}
