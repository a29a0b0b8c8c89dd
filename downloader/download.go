package downloader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/healthwrapped/models"
)

const DefaultURL = "http://127.0.0.1:8000/wrapped"

// ErrFetch marks every failure to obtain the snapshot: transport errors,
// unexpected status codes and undecodable bodies alike.
var ErrFetch = errors.New("failed to fetch wrapped data")

// WrappedDownloader fetches the year-in-review snapshot from the
// aggregation service.
type WrappedDownloader struct {
	URL    string
	client *http.Client
}

// New creates a downloader for url. A nil client uses http.DefaultClient.
func New(url string, client *http.Client) *WrappedDownloader {
	if url == "" {
		url = DefaultURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &WrappedDownloader{URL: url, client: client}
}

// Download issues a single GET and decodes the body. There is no retry.
func (wd *WrappedDownloader) Download(ctx context.Context) (*models.WrappedData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wd.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request for %s: %w", ErrFetch, wd.URL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := wd.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request for %s failed: %w", ErrFetch, wd.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s answered %d %s", ErrFetch, wd.URL, resp.StatusCode, string(bodyBytes))
	}

	var data models.WrappedData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: failed to parse wrapped JSON from %s: %w", ErrFetch, wd.URL, err)
	}
	return &data, nil
}
