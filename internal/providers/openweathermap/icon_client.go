package openweathermap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Icon images: http://openweathermap.org/img/wn/10d.png
const (
	baseIconURL = "http://openweathermap.org/img/wn"
)

// IconClient downloads condition icons
type IconClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewIconClient creates an icon client. An empty base uses the public icon host.
func NewIconClient(httpClient *http.Client, base string) *IconClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if base == "" {
		base = baseIconURL
	}
	return &IconClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(base, "/"),
	}
}

// IconURL returns the PNG location for a condition code such as "01d".
func (c *IconClient) IconURL(code string) string {
	return c.baseURL + "/" + url.PathEscape(code) + ".png"
}

// GetIcon downloads the PNG bytes for a condition code.
func (c *IconClient) GetIcon(ctx context.Context, code string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.IconURL(code), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	return data, nil
}
