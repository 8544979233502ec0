// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package imagehash computes the content fingerprint used as the
// deduplication key for submitted answer-sheet photos.
//
// The fingerprint is the sha256 digest of the image's raw bytes, hex
// encoded. It depends only on byte content: the same photo always hashes to
// the same 64-character digest no matter how it was named, transported, or
// wrapped in a data URI.
package imagehash

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput reports an image payload that cannot be fingerprinted.
var ErrInvalidInput = errors.New("invalid base64 image input")

// Fingerprint hashes a base64-encoded image payload.
//
// The input may be a full data URI ("data:image/png;base64,....") or a bare
// base64 string; everything up to and including the first comma is treated
// as a format prefix and discarded, never hashed. Inputs shorter than 4
// characters or with an undecodable payload fail with ErrInvalidInput.
func Fingerprint(input string) (string, error) {
	if len(input) < 4 {
		return "", ErrInvalidInput
	}

	payload := input
	if idx := strings.IndexByte(input, ','); idx != -1 {
		payload = input[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
