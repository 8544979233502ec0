// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Aritra-2000/MBTI/models"
	"github.com/Aritra-2000/MBTI/store"
)

// SetupTestStore creates a fresh sqlite-backed store under the test's temp
// directory. Same schema and dedup semantics as production, no external
// services needed.
func SetupTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	s, err := store.OpenSQL(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// SeedRecord persists a record directly, bypassing the HTTP layer.
func SeedRecord(t *testing.T, s store.Store, name, mbti string, score int, imageHash string) {
	t.Helper()

	err := s.Append(context.Background(), models.SubmissionRecord{
		Name:      name,
		Mbti:      mbti,
		Score:     score,
		ImageHash: imageHash,
		Date:      "2025-06-01",
	})
	if err != nil {
		t.Fatalf("Failed to seed record: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
