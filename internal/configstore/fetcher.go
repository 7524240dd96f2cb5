package configstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/admybrand/dashboard-backend/internal/models"
)

// Fetch failure classes. Load treats all of them the same way; they exist so
// logs and tests can tell them apart.
var (
	ErrFetchTransport = errors.New("config source unreachable")
	ErrFetchStatus    = errors.New("config source returned non-success status")
	ErrFetchDecode    = errors.New("config source returned malformed body")
)

const (
	maxConfigBodySize   = 10 << 20
	defaultFetchTimeout = 30 * time.Second
)

// Fetcher retrieves a complete AppConfig from somewhere outside the process.
type Fetcher interface {
	Fetch(ctx context.Context) (models.AppConfig, error)
	Source() string
}

// HTTPFetcher reads AppConfig as JSON from a URL.
type HTTPFetcher struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// NewHTTPFetcher creates a fetcher for url. A non-positive timeout falls back
// to defaultFetchTimeout so a hung source never pins a fetch forever.
func NewHTTPFetcher(url string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &HTTPFetcher{
		url:     url,
		client:  &http.Client{},
		timeout: timeout,
	}
}

// Source returns the URL being fetched.
func (f *HTTPFetcher) Source() string {
	return f.url
}

// Fetch performs one GET against the source.
func (f *HTTPFetcher) Fetch(ctx context.Context) (models.AppConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return models.AppConfig{}, fmt.Errorf("%w: %v", ErrFetchTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return models.AppConfig{}, fmt.Errorf("%w: %v", ErrFetchTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.AppConfig{}, fmt.Errorf("%w: %d", ErrFetchStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxConfigBodySize))
	if err != nil {
		return models.AppConfig{}, fmt.Errorf("%w: %v", ErrFetchTransport, err)
	}

	var cfg *models.AppConfig
	if err := json.Unmarshal(body, &cfg); err != nil {
		return models.AppConfig{}, fmt.Errorf("%w: %v", ErrFetchDecode, err)
	}
	if cfg == nil {
		return models.AppConfig{}, fmt.Errorf("%w: empty document", ErrFetchDecode)
	}

	return *cfg, nil
}
