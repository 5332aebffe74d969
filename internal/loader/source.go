package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// maxSourceSize bounds how much of a single source is read
const maxSourceSize = 32 << 20

// ErrStatus is wrapped by fetch errors for non-success HTTP responses
var ErrStatus = errors.New("unexpected status")

// Fetcher retrieves the raw content of one resolved source location
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context, location string) ([]byte, error)

// Fetch calls f
func (f FetcherFunc) Fetch(ctx context.Context, location string) ([]byte, error) {
	return f(ctx, location)
}

// locationFetcher reads http(s) URLs with an HTTP client and everything else
// from the filesystem
type locationFetcher struct {
	client *http.Client
}

// NewFetcher creates the default fetcher. A nil client uses http.DefaultClient.
func NewFetcher(client *http.Client) Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &locationFetcher{client: client}
}

func (f *locationFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if isRemote(location) {
		return f.fetchHTTP(ctx, location)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return data, nil
}

func (f *locationFetcher) fetchHTTP(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", location, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w %d for %s", ErrStatus, resp.StatusCode, location)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", location, err)
	}
	return data, nil
}

// Resolve turns a source identifier into a location relative to base.
// Absolute URLs and absolute paths are returned unchanged. A base URL
// without a trailing slash is treated as a directory unless its last
// segment looks like a file (e.g. index.html).
func Resolve(base, source string) (string, error) {
	if isRemote(source) || filepath.IsAbs(source) {
		return source, nil
	}
	if base == "" {
		return source, nil
	}

	if isRemote(base) {
		baseURL, err := url.Parse(base)
		if err != nil {
			return "", fmt.Errorf("invalid base url %q: %w", base, err)
		}
		if !strings.HasSuffix(baseURL.Path, "/") && path.Ext(baseURL.Path) == "" {
			baseURL.Path += "/"
		}
		ref, err := url.Parse(filepath.ToSlash(source))
		if err != nil {
			return "", fmt.Errorf("invalid source %q: %w", source, err)
		}
		return baseURL.ResolveReference(ref).String(), nil
	}

	return filepath.Join(base, filepath.FromSlash(source)), nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
