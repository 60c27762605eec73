package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func containsHeader(headerValue, target string) bool {
	for part := range strings.SplitSeq(headerValue, ",") {
		if strings.EqualFold(strings.TrimSpace(part), target) {
			return true
		}
	}
	return false
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	called := false
	fn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	for _, origin := range []string{"http://example.com", "https://app.example.org:8443", "null"} {
		called = false
		req := httptest.NewRequest(http.MethodGet, "http://localhost/hello", nil)
		req.Header.Set("Origin", origin)
		resp := httptest.NewRecorder()

		CORS()(fn).ServeHTTP(resp, req)

		if !called {
			t.Fatalf("expected downstream handler to be called for origin %q", origin)
		}
		if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("expected Access-Control-Allow-Origin '*' for %q, got %q", origin, got)
		}
		if got := resp.Header().Get("Access-Control-Allow-Credentials"); got != "" {
			t.Fatalf("did not expect credentials header, got %q", got)
		}
		if got := resp.Header().Get("Access-Control-Expose-Headers"); got != "*" {
			t.Fatalf("expected all headers exposed, got %q", got)
		}
	}
}

func TestCORSHandlesPreflightWithoutCallingNext(t *testing.T) {
	called := false
	fn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "http://localhost/echo", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Custom-Header")
	resp := httptest.NewRecorder()

	CORS()(fn).ServeHTTP(resp, req)

	if called {
		t.Fatalf("expected preflight to be answered by the CORS middleware")
	}
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for preflight, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin '*', got %q", got)
	}
	if got := resp.Header().Get("Access-Control-Allow-Methods"); !containsHeader(got, http.MethodPost) {
		t.Fatalf("expected Access-Control-Allow-Methods to contain POST, got %q", got)
	}
	allowHeaders := resp.Header().Get("Access-Control-Allow-Headers")
	for _, h := range []string{"Content-Type", "X-Custom-Header"} {
		if !containsHeader(allowHeaders, h) {
			t.Fatalf("expected Access-Control-Allow-Headers to contain %q, got %q", h, allowHeaders)
		}
	}
}

func TestCORSWithoutOriginPassesThrough(t *testing.T) {
	fn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "http://localhost/health", nil)
	resp := httptest.NewRecorder()

	CORS()(fn).ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected downstream status, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS headers without Origin, got %q", got)
	}
}
