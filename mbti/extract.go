// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mbti

import (
	"regexp"
	"strings"
)

// Unknown is the fallback marker stored when no valid type code can be
// extracted from the recognized text.
const Unknown = "UNKNOWN"

// Codes lists the 16 valid type codes. Membership in this set is the only
// validity rule; the set itself encodes the axis combinations.
var Codes = []string{
	"ISTJ", "ISFJ", "INFJ", "INTJ",
	"ISTP", "ISFP", "INFP", "INTP",
	"ESTP", "ESFP", "ENFP", "ENTP",
	"ESTJ", "ESFJ", "ENFJ", "ENTJ",
}

// codePattern matches any valid code as a whole word, case-insensitively.
// The \b boundaries keep a code embedded in a longer run of letters (e.g.
// "INTJUNCTION") from counting as a match.
var codePattern = regexp.MustCompile(`(?i)\b(` + strings.Join(Codes, "|") + `)\b`)

// Extract scans recognized text for the most plausible type code.
//
// All whole-word occurrences are tallied case-insensitively; the code with
// the highest count wins. Ties go to the code that appears first in the
// text. The boolean is false when the text contains no valid code at all.
func Extract(text string) (string, bool) {
	matches := codePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return "", false
	}

	counts := make(map[string]int, len(matches))
	var order []string
	for _, m := range matches {
		code := strings.ToUpper(m)
		if counts[code] == 0 {
			order = append(order, code)
		}
		counts[code]++
	}

	best := ""
	bestCount := -1
	for _, code := range order {
		if counts[code] > bestCount {
			best = code
			bestCount = counts[code]
		}
	}
	return best, true
}
