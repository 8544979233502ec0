// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package imagehash

import (
	"errors"
	"testing"
)

func TestFingerprint_PrefixInsensitive(t *testing.T) {
	withPrefix, err := Fingerprint("data:image/png;base64,AAAA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bare, err := Fingerprint("AAAA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withPrefix != bare {
		t.Errorf("data URI prefix changed the digest: %s != %s", withPrefix, bare)
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	a, err := Fingerprint("SGVsbG8gV29ybGQ=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Fingerprint("SGVsbG8gV29ybGQ=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("same input hashed differently: %s != %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(a))
	}
}

func TestFingerprint_KnownDigest(t *testing.T) {
	// Empty payload after the comma decodes to zero bytes; the digest is
	// the well-known sha256 of the empty string.
	got, err := Fingerprint("data:image/png;base64,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFingerprint_TooShort(t *testing.T) {
	for _, input := range []string{"", "A", "AA", "AAA"} {
		if _, err := Fingerprint(input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Fingerprint(%q): expected ErrInvalidInput, got %v", input, err)
		}
	}
}

func TestFingerprint_MalformedBase64(t *testing.T) {
	if _, err := Fingerprint("not base64!!"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for malformed payload, got %v", err)
	}
}
