// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// ServiceName identifies this backend in the health probe response.
const ServiceName = "mbti-backend"

// Request types

// SubmitRequest is the body of POST /api/submit. At least one of ImageHash
// and ImageBase64 must resolve to a usable fingerprint. Score is a pointer
// so a missing field can be told apart from a legitimate zero.
type SubmitRequest struct {
	Name        string `json:"name"`
	Mbti        string `json:"mbti"`
	Score       *int   `json:"score"`
	ImageHash   string `json:"imageHash,omitempty"`
	ImageBase64 string `json:"imageBase64,omitempty"`
}

// Response types

type SubmitResponse struct {
	OK        bool `json:"ok"`
	Duplicate bool `json:"duplicate"`
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

// ErrorResponse is the body of every non-2xx response. Duplicate is set
// only on the 409 conflict path.
type ErrorResponse struct {
	Error     string `json:"error"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// Domain types

// SubmissionRecord is one accepted submission, created exactly once and
// never updated or deleted. ImageHash is the dedup key: no two persisted
// records may share one.
type SubmissionRecord struct {
	Name      string `json:"name"`
	Mbti      string `json:"mbti"`
	Score     int    `json:"score"`
	ImageHash string `json:"image_hash"`
	Date      string `json:"date"` // calendar date, YYYY-MM-DD
}
