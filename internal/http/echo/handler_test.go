package echo

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/banner-server/internal/platform/api"
	applog "github.com/janisto/banner-server/internal/platform/logging"
	appmiddleware "github.com/janisto/banner-server/internal/platform/middleware"
	"github.com/janisto/banner-server/internal/platform/respond"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	Register(api.New(router, "EchoTest", "test"))
	return router
}

func postJSON(router chi.Router, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(chimiddleware.RequestIDHeader, "echo-post")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestEchoReturnsPayloadUnchanged(t *testing.T) {
	router := newTestRouter()

	messages := []string{
		"ping",
		"",
		"日本語 🚀 ünïcödé",
		`she said "hi"`,
		"line\nbreak\ttab",
		"<b>&amp;</b>",
		strings.Repeat("x", 4096),
	}
	for _, msg := range messages {
		reqBody, err := json.Marshal(map[string]string{"message": msg})
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		resp := postJSON(router, string(reqBody))

		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %q, got %d: %s", msg, resp.Code, resp.Body.String())
		}
		if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}

		var got map[string]any
		if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
			t.Fatalf("json unmarshal: %v", err)
		}
		if len(got) != 1 || got["message"] != msg {
			t.Fatalf("expected exactly {message: %q}, got %v", msg, got)
		}
	}
}

func TestEchoWritesMessageBytesVerbatim(t *testing.T) {
	router := newTestRouter()

	bodies := []string{
		`{"message":"<b>&amp;</b>"}`,
		`{"message":"she said \"hi\""}`,
		`{"message":"日本語 🚀"}`,
		`{"message":"line\nbreak\ttab"}`,
	}
	for _, body := range bodies {
		resp := postJSON(router, body)

		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d: %s", body, resp.Code, resp.Body.String())
		}
		if got := strings.TrimSpace(resp.Body.String()); got != body {
			t.Fatalf("expected %s, got %s", body, got)
		}
	}
}

func TestEchoRejectsUnsupportedMediaType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"message":"ping"}`))
	req.Header.Set("Content-Type", "text/plain")
	resp := httptest.NewRecorder()
	newTestRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body["error"] != "Unsupported media type" {
		t.Fatalf("unexpected error field %v", body["error"])
	}
}

func TestEchoIsIdempotent(t *testing.T) {
	router := newTestRouter()

	first := postJSON(router, `{"message":"again"}`)
	second := postJSON(router, first.Body.String())

	if second.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("expected identical bodies, got %q and %q", first.Body.String(), second.Body.String())
	}
}

func TestEchoDropsUnknownFields(t *testing.T) {
	resp := postJSON(newTestRouter(), `{"message":"keep","extra":true}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(got) != 1 || got["message"] != "keep" {
		t.Fatalf("unexpected body %v", got)
	}
}

func TestEchoRejectsBadRequests(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "not json", body: "hello there"},
		{name: "truncated json", body: `{"message":"abc`},
		{name: "missing message", body: `{}`},
		{name: "wrong type", body: `{"message":123}`},
		{name: "array", body: `["message"]`},
		{name: "null message", body: `{"message":null}`},
		{name: "invalid utf-8", body: "{\"message\":\"\xff\"}"},
		{name: "duplicate message", body: `{"message":"a","message":"b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(router, tt.body)

			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
			}
			if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %s", ct)
			}
			var body map[string]any
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("json unmarshal: %v", err)
			}
			if body["error"] != "Bad request" {
				t.Fatalf("unexpected error field %v", body["error"])
			}
			if msg, _ := body["message"].(string); msg == "" {
				t.Fatalf("expected message, got %v", body["message"])
			}
		})
	}
}

func TestEchoCBORRoundTrip(t *testing.T) {
	router := newTestRouter()

	reqBody, err := cbor.Marshal(map[string]string{"message": "CBOR"})
	if err != nil {
		t.Fatalf("cbor marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/cbor")
	req.Header.Set("Accept", "application/cbor")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Errorf("expected application/cbor, got %s", ct)
	}

	var payload Payload
	if err := cbor.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("cbor unmarshal: %v", err)
	}
	if payload.Message != "CBOR" {
		t.Fatalf("expected CBOR, got %q", payload.Message)
	}
}
