// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Aritra-2000/MBTI/models"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, models.SubmitResponse{OK: true})

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var resp models.SubmitResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !resp.OK {
		t.Error("expected ok:true")
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if resp.Error != "Invalid JSON" {
		t.Errorf("expected message in error field, got %q", resp.Error)
	}
	if strings.Contains(w.Body.String(), "duplicate") {
		t.Error("duplicate field should be omitted when false")
	}
}

func TestParseJSONBody(t *testing.T) {
	body := `{"name":"Alice","mbti":"INTJ","score":87}`
	r := httptest.NewRequest("POST", "/api/submit", strings.NewReader(body))
	w := httptest.NewRecorder()

	var req models.SubmitRequest
	if err := ParseJSONBody(w, r, &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Name != "Alice" || req.Mbti != "INTJ" || req.Score == nil || *req.Score != 87 {
		t.Errorf("unexpected parse result: %+v", req)
	}
}

func TestParseJSONBody_RejectsOversizedBody(t *testing.T) {
	// A body just past the 10MB cap.
	huge := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	r := httptest.NewRequest("POST", "/api/submit", strings.NewReader(huge))
	w := httptest.NewRecorder()

	var req models.SubmitRequest
	if err := ParseJSONBody(w, r, &req); err == nil {
		t.Error("expected an error for oversized body")
	}
}

func TestCORS_SetsHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := CORS(inner)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}

func TestCORS_AnswersPreflight(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	h := CORS(inner)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/api/submit", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", w.Code)
	}
	if called {
		t.Error("preflight should not reach the inner handler")
	}
}

func TestWithLogging_PassesThrough(t *testing.T) {
	h := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("expected logging wrapper to pass through, got %d", w.Code)
	}
}
