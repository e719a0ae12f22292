// Package fetcher provides plain HTTP fetching for the CLI and for tests
// that want to exercise the pipeline against real markup. It is the
// repository's sole network-facing package; the core packages (domtree,
// clean, mainloc, siblings, children, structure) never import it and
// never see a context.Context: the core stays purely synchronous, and
// fetching is explicitly a caller-side concern.
//
// It never executes JavaScript or drives a headless browser; this
// package is the boundary that keeps the rest of the module purely
// synchronous and DOM-only.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Options configures Fetch's behaviour.
type Options struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		UserAgent: "structhtml/1.0 (+structural HTML parser)",
		Timeout:   30 * time.Second,
	}
}

// Fetch performs a single GET request and returns the response body as a
// string. Transient network errors (everything short of a non-2xx
// status) are retried once.
func Fetch(ctx context.Context, url string, opts Options) (string, error) {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultOptions().UserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}

	client := &http.Client{Timeout: opts.Timeout}

	body, err := get(ctx, client, url, opts.UserAgent)
	if err != nil && !errors.Is(err, errStatus) {
		body, err = get(ctx, client, url, opts.UserAgent)
	}
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	return body, nil
}

// errStatus marks a non-2xx response, which Fetch does not retry.
var errStatus = errors.New("HTTP status")

func get(ctx context.Context, client *http.Client, url, userAgent string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w %s", errStatus, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	return string(data), nil
}
