package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/webext-tools/png-saver/internal/entity"
)

// Fetcher retrieves the raw bytes behind an image URL. The network layer's
// normal permission model applies; there is no retry or resiliency layer,
// a failed request propagates as entity.ErrFetch.
type Fetcher interface {
	Fetch(url string) ([]byte, string, error)
}

type httpFetcher struct {
	client *http.Client
}

func New(timeout time.Duration) Fetcher {
	return &httpFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the response body and the declared content type.
func (f *httpFetcher) Fetch(url string) ([]byte, string, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", fmt.Errorf("%w: unexpected status %s", entity.ErrFetch, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: reading body: %v", entity.ErrFetch, err)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
