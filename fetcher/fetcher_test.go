package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); !strings.Contains(got, "structhtml") {
			t.Errorf("unexpected User-Agent: %q", got)
		}
		w.Write([]byte("<html><body>hi</body></html>"))
	}))
	defer srv.Close()

	body, err := Fetch(context.Background(), srv.URL, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(body, "hi") {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestFetchNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), srv.URL, DefaultOptions()); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestFetchRespectsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.Write([]byte("too slow"))
	}))
	defer srv.Close()

	opts := Options{Timeout: 5 * time.Millisecond}
	if _, err := Fetch(context.Background(), srv.URL, opts); err == nil {
		t.Fatal("expected a timeout error")
	}
}

func TestDefaultOptionsFillsZeroValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	body, err := Fetch(context.Background(), srv.URL, Options{})
	if err != nil {
		t.Fatalf("unexpected error with zero-value options: %v", err)
	}
	if body != "ok" {
		t.Errorf("body = %q, want %q", body, "ok")
	}
}
