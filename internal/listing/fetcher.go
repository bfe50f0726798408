package listing

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Listing sites serve bot-hostile markup to unknown agents, so both fetchers
// present a fixed desktop browser identity.
const desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// NewFetcher selects the fetch strategy: "browser" renders the page in
// headless Chrome, anything else does a plain GET.
func NewFetcher(mode string, chromeBin string) Fetcher {
	if mode == "browser" {
		return NewBrowserFetcher(chromeBin)
	}
	return NewHTTPFetcher()
}

type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: 30 * time.Second}}
}

// Fetch returns the full response body as text. The body is unbounded here;
// truncation is the summarizer's concern.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", FetchError{Message: err.Error()}
	}
	req.Header.Set("User-Agent", desktopUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", FetchError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", FetchError{Status: resp.StatusCode, Message: resp.Status}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", FetchError{Message: err.Error()}
	}
	return string(body), nil
}
