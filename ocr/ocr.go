// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package ocr defines the recognition capability boundary: something that
// turns a sheet photo into text, asynchronously and fallibly. The rest of
// the pipeline (extractor, scorer, gateway) only ever sees the returned
// string, so engines can be swapped or faked without touching them.
package ocr

import (
	"context"
	"errors"
	"io"
)

// ErrRecognition wraps every engine failure. Recognition is retryable by
// the user (re-upload or resubmit); nothing in this package retries.
var ErrRecognition = errors.New("ocr recognition failed")

// Engine recognizes printed text in an image.
type Engine interface {
	Recognize(ctx context.Context, image io.Reader) (string, error)
}
