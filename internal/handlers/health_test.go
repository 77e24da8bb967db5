package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-relay/internal/models"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
}

func TestHealthHandler_Health(t *testing.T) {
	h := NewHealthHandler("Portfolio Chatbot API")
	h.now = fixedClock

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var payload models.StatusResponse
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Status != "OK" {
		t.Errorf("expected status OK, got %q", payload.Status)
	}
	if payload.Message != "Portfolio Chatbot API is running" {
		t.Errorf("unexpected message %q", payload.Message)
	}
	if payload.Timestamp != "2026-10-16T09:30:00.000Z" {
		t.Errorf("unexpected timestamp %q", payload.Timestamp)
	}
}

func TestHealthHandler_Root(t *testing.T) {
	h := NewHealthHandler("Portfolio Chatbot API")
	h.now = fixedClock

	rr := httptest.NewRecorder()
	h.Root(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var payload models.BannerResponse
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Status != "online" {
		t.Errorf("expected status online, got %q", payload.Status)
	}
	if payload.Endpoints.Health != "/api/health" || payload.Endpoints.Chat != "/api/chat (POST)" {
		t.Errorf("unexpected endpoints %+v", payload.Endpoints)
	}
	if payload.Message != "🚀 Portfolio Chatbot API is live!" {
		t.Errorf("unexpected banner %q", payload.Message)
	}
	if _, err := time.Parse(time.RFC3339Nano, payload.Timestamp); err != nil {
		t.Errorf("timestamp %q is not ISO-8601: %v", payload.Timestamp, err)
	}
}
