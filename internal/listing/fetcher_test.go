package listing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPFetcher_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); !strings.Contains(got, "Mozilla/5.0") {
			t.Errorf("User-Agent = %q, want a desktop browser identity", got)
		}
		_, _ = w.Write([]byte("<html><body>a desk for sale</body></html>"))
	}))
	defer server.Close()

	body, err := NewHTTPFetcher().Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !strings.Contains(body, "a desk for sale") {
		t.Fatalf("body = %q, want listing markup", body)
	}
}

func TestHTTPFetcher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewHTTPFetcher().Fetch(context.Background(), server.URL)
	var fetchErr FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("err = %v, want FetchError", err)
	}
	if fetchErr.Status != http.StatusForbidden {
		t.Fatalf("Status = %d, want %d", fetchErr.Status, http.StatusForbidden)
	}
}

func TestHTTPFetcher_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewHTTPFetcher().Fetch(context.Background(), server.URL)
	var fetchErr FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("err = %v, want FetchError", err)
	}
	if fetchErr.Status != 0 {
		t.Fatalf("Status = %d, want 0 for transport failure", fetchErr.Status)
	}
}

func TestNewFetcher_SelectsByMode(t *testing.T) {
	if _, ok := NewFetcher("http", "").(*HTTPFetcher); !ok {
		t.Fatal("mode http should select HTTPFetcher")
	}
	if _, ok := NewFetcher("", "").(*HTTPFetcher); !ok {
		t.Fatal("empty mode should select HTTPFetcher")
	}
	if _, ok := NewFetcher("browser", "/usr/bin/chromium").(*BrowserFetcher); !ok {
		t.Fatal("mode browser should select BrowserFetcher")
	}
}
