package serpapi

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const apiBaseURL = "https://serpapi.com"

// ClientOpts configures a SerpApi client. APIKey is required for real use;
// BaseURL is overridable for tests.
type ClientOpts struct {
	BaseURL string
	APIKey  string
}

// Client is a thin SerpApi HTTP client with one method per search engine.
// Each method decodes the engine-specific response shape; nothing outside
// this package builds SerpApi requests.
type Client struct {
	httpClient *resty.Client
	apiKey     string
}

func NewClient(opts ClientOpts) *Client {
	c := Client{apiKey: opts.APIKey}
	baseURL := apiBaseURL
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}
	c.httpClient = resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &c
}

func (c *Client) req(ctx context.Context, result any) *resty.Request {
	request := c.httpClient.
		NewRequest().
		SetContext(ctx).
		SetQueryParam("api_key", c.apiKey)

	if result != nil {
		request.SetResult(result)
	}

	return request
}

// handleError is a generic error handler for failing responses (>399 status
// code). Without this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}

	return res, nil
}

// apiError converts the error field SerpApi embeds in 200 responses into a
// Go error.
func apiError(message string) error {
	if message == "" {
		return nil
	}
	return fmt.Errorf("serpapi: %s", message)
}
