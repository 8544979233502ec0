// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mbti

import "testing"

func TestExtract_MostFrequentWins(t *testing.T) {
	code, ok := Extract("INTJ INTJ ENTP")
	if !ok {
		t.Fatal("expected a code, got none")
	}
	if code != "INTJ" {
		t.Errorf("expected INTJ, got %s", code)
	}
}

func TestExtract_TieGoesToFirstAppearance(t *testing.T) {
	code, ok := Extract("some noise INTJ more noise ENTP")
	if !ok {
		t.Fatal("expected a code, got none")
	}
	if code != "INTJ" {
		t.Errorf("expected INTJ on tie, got %s", code)
	}

	// Same counts, reversed order of appearance
	code, _ = Extract("ENTP then INTJ")
	if code != "ENTP" {
		t.Errorf("expected ENTP on tie, got %s", code)
	}
}

func TestExtract_CaseInsensitive(t *testing.T) {
	code, ok := Extract("result: intj (see sheet)")
	if !ok {
		t.Fatal("expected a code, got none")
	}
	if code != "INTJ" {
		t.Errorf("expected uppercase INTJ, got %s", code)
	}
}

func TestExtract_NoMatch(t *testing.T) {
	for _, text := range []string{"", "HELLO WORLD", "ABCD EFGH"} {
		if code, ok := Extract(text); ok {
			t.Errorf("Extract(%q): expected no match, got %s", text, code)
		}
	}
}

func TestExtract_WholeWordOnly(t *testing.T) {
	// A valid code embedded in a longer run of letters is not a match.
	if code, ok := Extract("INTJUNCTION"); ok {
		t.Errorf("expected no match for embedded code, got %s", code)
	}

	// But punctuation and string edges are valid boundaries.
	code, ok := Extract("type=ENFP.")
	if !ok || code != "ENFP" {
		t.Errorf("expected ENFP at punctuation boundary, got %q (ok=%v)", code, ok)
	}
}

func TestExtract_EmbeddedDoesNotOutvote(t *testing.T) {
	// Two embedded occurrences plus one real one: only the real one counts.
	code, ok := Extract("INTJX XINTJ ESTP")
	if !ok {
		t.Fatal("expected a code, got none")
	}
	if code != "ESTP" {
		t.Errorf("expected ESTP, got %s", code)
	}
}
