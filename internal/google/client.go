package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"termsearch/pkg/logging"
)

const (
	// DefaultEndpoint is the Custom Search JSON API v1 endpoint.
	DefaultEndpoint = "https://www.googleapis.com/customsearch/v1"

	subsystem = "GoogleClient"
)

// Searcher performs one search request. The executor depends on this
// interface rather than on *Client so tests can substitute it.
type Searcher interface {
	Search(ctx context.Context, q Query) (*Response, error)
}

// Client talks to the Custom Search JSON API.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Options configures a Client. Zero values select defaults.
type Options struct {
	Endpoint string
	Timeout  time.Duration
	// HTTPClient overrides the transport entirely, Timeout is then ignored.
	HTTPClient *http.Client
}

// NewClient creates a new Custom Search client.
func NewClient(opts Options) *Client {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Search performs exactly one request. Transport and decoding failures are
// returned as *RequestError, non-2xx answers as *APIError.
func (c *Client) Search(ctx context.Context, q Query) (*Response, error) {
	reqURL, err := c.buildRequestURL(q)
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("building request URL: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	logging.Debug(subsystem, "requesting results for %q (safe=%v)", q.Text, q.Safe)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: redactURL(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &RequestError{Err: fmt.Errorf("decoding response: %w", err)}
	}

	out := payload.toResponse()
	logging.Debug(subsystem, "received %d items (%s total)", len(out.Items), out.TotalResults)
	return out, nil
}

func (c *Client) buildRequestURL(q Query) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	safe := "off"
	if q.Safe {
		safe = "active"
	}
	params := u.Query()
	params.Set("key", q.APIKey)
	params.Set("cx", q.CX)
	params.Set("q", q.Text)
	params.Set("safe", safe)
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// redactURL strips the request URL from transport errors so the API key
// never ends up on screen or in logs.
func redactURL(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
