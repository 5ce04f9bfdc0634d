package ai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPTransportRoundTrip(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL, "sk-test", 2*time.Second)
	body, err := tr.RoundTrip(context.Background(), []byte(`{"model":"m"}`))
	if err != nil {
		t.Fatalf("RoundTrip() error: %v", err)
	}

	if string(body) != `{"ok":true}` {
		t.Errorf("body = %q", body)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q, expected bearer token", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if string(gotBody) != `{"model":"m"}` {
		t.Errorf("payload = %q", gotBody)
	}
}

func TestHTTPTransportNoKeyNoAuthHeader(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL, "", time.Second)
	if _, err := tr.RoundTrip(context.Background(), []byte("{}")); err != nil {
		t.Fatalf("RoundTrip() error: %v", err)
	}
	if sawAuth {
		t.Error("Authorization header sent without a key")
	}
}

func TestHTTPTransportNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL, "", time.Second)
	if _, err := tr.RoundTrip(context.Background(), []byte("{}")); err == nil {
		t.Error("RoundTrip() error = nil for 429 response")
	}
}

func TestHTTPTransportTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL, "", 50*time.Millisecond)
	if _, err := tr.RoundTrip(context.Background(), []byte("{}")); err == nil {
		t.Error("RoundTrip() error = nil for stalled server")
	}
}
