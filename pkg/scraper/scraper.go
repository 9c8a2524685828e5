// Package scraper provides functionality to fetch record pages from URLs
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
)

// DefaultRecordsURL is the IPF raw world records page on OpenPowerlifting
const DefaultRecordsURL = "https://www.openpowerlifting.org/records/raw/ipf"

const userAgent = "records-dashboard/1.0"

// Client downloads pages over HTTP
type Client struct {
	http *resty.Client
}

// NewClient creates a client whose requests time out after timeout
func NewClient(timeout time.Duration) *Client {
	c := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")
	return &Client{http: c}
}

// FetchURL downloads the HTML content from a URL and returns it as UTF-8 text
func (c *Client) FetchURL(ctx context.Context, url string) (string, error) {
	slog.InfoContext(ctx, "fetching URL", "url", url)

	// Send the request
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("error fetching URL: %w", err)
	}

	// Check the response status code
	slog.InfoContext(ctx, "HTTP status", "code", resp.StatusCode(), "status", resp.Status())
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("non-200 status code: %d %s", resp.StatusCode(), resp.Status())
	}

	contentType := resp.Header().Get("Content-Type")
	slog.DebugContext(ctx, "response received",
		"content_type", contentType,
		"bytes", len(resp.Body()),
		"elapsed", resp.Time(),
	)

	// Convert the body to UTF-8 using the declared or sniffed charset
	decoded, err := charset.NewReader(bytes.NewReader(resp.Body()), contentType)
	if err != nil {
		return "", fmt.Errorf("error decoding response body: %w", err)
	}
	body, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}
	return string(body), nil
}

// SaveContentToFile saves content to a file
func SaveContentToFile(filename string, content string) error {
	return os.WriteFile(filename, []byte(content), 0644)
}
