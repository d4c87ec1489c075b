package space

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/pgmarc/space-go/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// Client talks to a SPACE deployment. It is safe for concurrent use; the
// domain builders it consumes and produces are not.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	apiKey     string
	log        *slog.Logger

	contracts *ContractsEndpoint
	features  *FeaturesEndpoint
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Useful for custom
// transports, proxies, or testing.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger request metadata is reported to at debug
// level. By default nothing is logged.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a client for the deployment cfg points at.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: cfg.BaseURL(),
		apiKey:  cfg.APIKey,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.contracts = &ContractsEndpoint{client: c}
	c.features = &FeaturesEndpoint{client: c}
	return c, nil
}

// Contracts returns the /contracts endpoint wrapper.
func (c *Client) Contracts() *ContractsEndpoint { return c.contracts }

// Features returns the /features endpoint wrapper.
func (c *Client) Features() *FeaturesEndpoint { return c.features }

// do executes one request against the service and returns the status code
// and the full response body. Transport failures are returned as-is; status
// interpretation is left to the endpoint wrappers.
func (c *Client) do(ctx context.Context, method string, endpoint *url.URL, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return 0, nil, err
	}
	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "space request failed",
			logger.Method(method),
			logger.Endpoint(endpoint.Path),
			logger.RequestID(requestID),
			logger.Error(err),
		)
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	c.log.DebugContext(ctx, "space request completed",
		logger.Method(method),
		logger.Endpoint(endpoint.Path),
		logger.RequestID(requestID),
		logger.StatusCode(resp.StatusCode),
		logger.Duration(time.Since(start)),
	)
	return resp.StatusCode, data, nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
