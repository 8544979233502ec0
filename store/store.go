// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"strconv"

	"github.com/Aritra-2000/MBTI/models"
)

// Store is the record store contract.
//
// Exists and Append are the primitive operations: lookup by fingerprint and
// unconditional append of one record. Composing them at the call site leaves
// a window where two concurrent submissions of the same fingerprint both
// pass the check, so the boundary service must go through InsertIfAbsent,
// which each backend makes atomic (a unique constraint for SQL, a
// single-writer mutex for Sheets).
type Store interface {
	// Exists reports whether some persisted record carries this exact
	// fingerprint. Header rows in tabular backends are never mistaken for
	// data: a column label cannot equal a 64-character hex digest.
	Exists(ctx context.Context, fingerprint string) (bool, error)

	// Append persists exactly one new record. It does not re-check
	// duplication.
	Append(ctx context.Context, rec models.SubmissionRecord) error

	// InsertIfAbsent appends the record only if its fingerprint is unseen.
	// Returns true when a record was persisted, false for a duplicate.
	InsertIfAbsent(ctx context.Context, rec models.SubmissionRecord) (inserted bool, err error)
}

// renderScore formats a completion score the way the spreadsheet stores it.
func renderScore(score int) string {
	return strconv.Itoa(score) + "%"
}
