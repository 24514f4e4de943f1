package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 1 << 10

// HTTPClient is a Client for the JSON progress API:
//
//	GET  {base}/api/progress/{set}  -> {"completed": [...]}
//	POST {base}/api/progress/{set}  <- Delta, -> {"completed": [...]}
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// HTTPOption configures an HTTPClient.
type HTTPOption func(*HTTPClient)

// WithTimeout bounds each request, including reading the response.
func WithTimeout(d time.Duration) HTTPOption {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) { c.http = hc }
}

// NewHTTPClient creates a client for the backend at baseURL.
func NewHTTPClient(baseURL string, opts ...HTTPOption) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type progressResponse struct {
	Completed []string `json:"completed"`
}

func (c *HTTPClient) GetProgress(ctx context.Context, set string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(set), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return c.do(req)
}

func (c *HTTPClient) PostProgress(ctx context.Context, set string, d Delta) ([]string, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal delta: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(set), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *HTTPClient) endpoint(set string) string {
	return c.baseURL + "/api/progress/" + url.PathEscape(set)
}

func (c *HTTPClient) do(req *http.Request) ([]string, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}

	var pr progressResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, &ErrRejected{StatusCode: resp.StatusCode, Body: fmt.Sprintf("decode response: %v", err)}
	}
	if pr.Completed == nil {
		pr.Completed = []string{}
	}
	return pr.Completed, nil
}

func statusError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	body := strings.TrimSpace(string(b))

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return &ErrUnavailable{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}
	return &ErrRejected{StatusCode: resp.StatusCode, Body: body}
}

// parseRetryAfter reads the delay-seconds form of Retry-After.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
