// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Aritra-2000/MBTI/mbti"
	"github.com/Aritra-2000/MBTI/models"
)

// submitTimeout bounds the network call so a dead backend fails instead of
// hanging; long enough for a base64 photo upload on a slow link.
const submitTimeout = 20 * time.Second

var (
	// ErrMissingName reports a submission without a submitter name.
	ErrMissingName = errors.New("name is required")

	// ErrMissingImage reports a submission without an image payload. No
	// network call is made in that case.
	ErrMissingImage = errors.New("image payload is required")
)

// APIError is a response the backend produced itself: the server was
// reachable but rejected the request.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server rejected submission (%d): %s", e.Status, e.Message)
}

// Submission is one candidate result to record.
//
// Mbti overrides the type code when set; otherwise the best guess extracted
// from Text is used, falling back to the unknown marker. Text is also where
// a user-edited transcript goes — the gateway never re-runs OCR.
type Submission struct {
	Name        string
	Text        string
	Mbti        string
	Score       int
	ImageBase64 string
}

// Result is the backend's verdict on a submission.
type Result struct {
	OK        bool
	Duplicate bool
}

// Client is the submission gateway to the MBTI backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: submitTimeout},
	}
}

// Submit sends one submission to the backend. Exactly one request per call;
// failures are returned, never retried — resubmission is the user's choice.
//
// A duplicate verdict is a normal outcome, reported through Result rather
// than an error: the sheet was already recorded and nothing was appended.
func (c *Client) Submit(ctx context.Context, sub Submission) (Result, error) {
	if sub.Name == "" {
		return Result{}, ErrMissingName
	}
	if sub.ImageBase64 == "" {
		return Result{}, ErrMissingImage
	}

	code := sub.Mbti
	if code == "" {
		extracted, ok := mbti.Extract(sub.Text)
		if ok {
			code = extracted
		} else {
			code = mbti.Unknown
		}
	}

	score := sub.Score
	body, err := json.Marshal(models.SubmitRequest{
		Name:        sub.Name,
		Mbti:        code,
		Score:       &score,
		ImageBase64: sub.ImageBase64,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/submit", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failure: the backend never saw the request.
		return Result{}, fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		return Result{OK: false, Duplicate: true}, nil

	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var ok models.SubmitResponse
		if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
			return Result{}, fmt.Errorf("failed to decode response: %w", err)
		}
		return Result{OK: ok.OK, Duplicate: ok.Duplicate}, nil

	default:
		msg := "Request failed"
		var errResp models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			msg = errResp.Error
		}
		return Result{}, &APIError{Status: resp.StatusCode, Message: msg}
	}
}
