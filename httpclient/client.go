// Package httpclient is a small request/response helper for callers that
// talk to one HTTP endpoint repeatedly: it carries a base URL, a default
// content type, and preset headers, and turns non-2xx responses into
// typed errors. It deliberately adds no retry or transport policy.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const defaultContentType = "application/json"

// Client sends requests against a base URL. The zero value is usable and
// targets absolute request URLs.
type Client struct {
	// BaseURL is prepended to relative request paths.
	BaseURL string
	// ContentType is sent with every request that has a body; empty means
	// application/json.
	ContentType string
	// Headers are added to every request.
	Headers map[string]string
	// HTTPClient overrides http.DefaultClient when set.
	HTTPClient *http.Client
}

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d: %s", e.Code, e.Body)
}

// Send performs a request and returns the response body as a string.
func (c *Client) Send(ctx context.Context, method, path string, body io.Reader) (string, error) {
	data, err := c.do(ctx, method, path, body)
	return string(data), err
}

// SendBinary performs a request and returns the raw response body, for
// payloads such as images that must not pass through string conversion.
func (c *Client) SendBinary(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	return c.do(ctx, method, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path), body)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		ct := c.ContentType
		if ct == "" {
			ct = defaultContentType
		}
		req.Header.Set("Content-Type", ct)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "sending %s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

func (c *Client) requestURL(path string) string {
	if c.BaseURL == "" {
		return path
	}
	return strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}
