// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mbti

import (
	"math"
	"regexp"
	"strconv"
)

// DefaultQuestions is the expected answer-sheet length (the common 93-item
// form). Callers working with a different sheet pass their own count.
const DefaultQuestions = 93

// answerPattern matches one answered question: a 1-3 digit question number
// preceded by start-of-text or whitespace, optional separator punctuation,
// then a single answer letter. The leading anchor keeps digits embedded in
// larger numbers or words from starting a match.
var answerPattern = regexp.MustCompile(`(?i)(?:^|\s)(\d{1,3})\s*[).:\-]?\s*[ABCD]`)

// Score computes the completion percentage of an answer sheet from its
// recognized text.
//
// Each answer marker contributes its question number to a set, so a sheet
// with two detected answers for the same question still counts it once. The
// result is round(answered/expected*100) clamped to [0,100]; the clamp
// guards against OCR noise inventing more question numbers than the sheet
// holds. Empty text or a non-positive expected count yields 0.
func Score(text string, expectedQuestions int) int {
	if text == "" || expectedQuestions <= 0 {
		return 0
	}

	seen := make(map[int]struct{})
	for _, m := range answerPattern.FindAllStringSubmatch(text, -1) {
		q, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		seen[q] = struct{}{}
	}

	pct := float64(len(seen)) / float64(expectedQuestions) * 100
	pct = math.Min(100, math.Max(0, pct))
	return int(math.Round(pct))
}
