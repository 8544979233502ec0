// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mbti derives a personality-type code and a completion score from the
raw text an OCR engine recognizes off a photographed answer sheet.

Both operations are pure single-pass scans over the text and are cheap
enough to re-run on every edit:

  - Extract finds all whole-word occurrences of the 16 valid type codes and
    returns the most frequent one (first appearance breaks ties).
  - Score counts distinct answered question numbers ("12 A", "12) B",
    "12. C" style markers) and converts the count into a percentage of the
    expected sheet length, clamped to [0,100].

OCR output is noisy free text, so both scanners are deliberately tolerant:
case-insensitive matching, optional separator punctuation, no assumption of
line structure.
*/
package mbti
