package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var testOrigins = []string{"http://localhost:5173", "https://jhasachin02.github.io"}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_AllowedOrigin(t *testing.T) {
	for _, origin := range testOrigins {
		var called bool
		h := CORS(testOrigins)(okHandler(&called))

		req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
		req.Header.Set("Origin", origin)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != origin {
			t.Errorf("origin %s: expected Access-Control-Allow-Origin %q, got %q", origin, origin, got)
		}
		if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("origin %s: expected credentials allowed, got %q", origin, got)
		}
		if !called {
			t.Errorf("origin %s: handler not called", origin)
		}
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	var called bool
	h := CORS(testOrigins)(okHandler(&called))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no Access-Control-Allow-Origin, got %q", got)
	}
	if !called {
		t.Fatalf("server should still process requests that bypass browser enforcement")
	}
}

func TestCORS_Preflight(t *testing.T) {
	var called bool
	h := CORS(testOrigins)(okHandler(&called))

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected preflight to allow origin, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPost) {
		t.Fatalf("expected POST in allowed methods, got %q", got)
	}
	if called {
		t.Fatalf("preflight should not reach the handler")
	}
}
