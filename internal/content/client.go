// Package content holds HTTP clients for the remote content providers
// (Quran, hadith collections, athkar, prayer times). Providers are treated
// as read-only collaborators: a timeout, a non-2xx status or a malformed
// payload is reported as ErrProviderUnavailable and handled per domain,
// never retried.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrProviderUnavailable = errors.New("content provider unavailable")

// httpDoer is implemented by *http.Client.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// getJSON performs a GET request and decodes the JSON body into v.
func getJSON(ctx context.Context, client httpDoer, url string, headers map[string]string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for k, val := range headers {
		req.Header.Set(k, val)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode payload: %v", ErrProviderUnavailable, err)
	}

	return nil
}
