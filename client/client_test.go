package client

import (
	"net/http"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	c := New("http://example.com")
	if c.BaseURL() != "http://example.com" {
		t.Fatalf("base url = %q", c.BaseURL())
	}
	// Calls stall on an unresponsive service rather than failing after a
	// deadline; any bound comes from the request context or a custom client.
	if c.http.Timeout != 0 {
		t.Fatalf("timeout = %v, want none", c.http.Timeout)
	}
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: 3 * time.Second}
	c := New("http://example.com", WithHTTPClient(hc))
	if c.http != hc {
		t.Fatalf("custom http client not installed")
	}
}

func TestWithHTTPClientNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on nil http client")
		}
	}()
	New("http://example.com", WithHTTPClient(nil))
}

func TestWithDebugLoggingWrapsTransport(t *testing.T) {
	c := New("http://example.com", WithDebugLogging(true))
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatalf("transport not wrapped: %T", c.http.Transport)
	}
}
