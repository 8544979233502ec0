// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mbti

import (
	"fmt"
	"strings"
	"testing"
)

// answerSheet builds recognized text with markers for questions [1, n],
// cycling through the allowed separator styles.
func answerSheet(n int) string {
	separators := []string{" A", ") B", ". C", ": D", "- A", "B"}
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%d%s ", i, separators[i%len(separators)])
	}
	return b.String()
}

func TestScore_EmptyText(t *testing.T) {
	if got := Score("", DefaultQuestions); got != 0 {
		t.Errorf("expected 0 for empty text, got %d", got)
	}
}

func TestScore_FullSheet(t *testing.T) {
	if got := Score(answerSheet(93), 93); got != 100 {
		t.Errorf("expected 100 for a full sheet, got %d", got)
	}
}

func TestScore_PartialSheet(t *testing.T) {
	// 47 of 93 distinct questions: 50.53%, rounds to 51.
	if got := Score(answerSheet(47), 93); got != 51 {
		t.Errorf("expected 51, got %d", got)
	}
}

func TestScore_DuplicateAnswersCountOnce(t *testing.T) {
	text := "12 A 12 B 12) C"
	if got := Score(text, 93); got != 1 {
		t.Errorf("expected one distinct question (1%%), got %d", got)
	}
}

func TestScore_ZeroExpectedQuestions(t *testing.T) {
	if got := Score(answerSheet(10), 0); got != 0 {
		t.Errorf("expected 0 for zero expected questions, got %d", got)
	}
	if got := Score(answerSheet(10), -5); got != 0 {
		t.Errorf("expected 0 for negative expected questions, got %d", got)
	}
}

func TestScore_ClampedAt100(t *testing.T) {
	// OCR noise producing more distinct numbers than the sheet holds must
	// not push the score past 100.
	if got := Score(answerSheet(150), 93); got != 100 {
		t.Errorf("expected clamp at 100, got %d", got)
	}
}

func TestScore_EmbeddedDigitsIgnored(t *testing.T) {
	// "x12 A" has no start/whitespace anchor before the digits; "3.14 B"
	// anchors at 3 but 14 is embedded.
	if got := Score("x12 A", 93); got != 0 {
		t.Errorf("expected 0 for embedded digits, got %d", got)
	}
}

func TestScore_SeparatorVariants(t *testing.T) {
	text := "1 A 2) B 3. C 4: D 5- A 6B"
	if got := Score(text, 6); got != 100 {
		t.Errorf("expected all six separator styles to match, got %d", got)
	}
}
