// Package normalize strips punctuation from text under a configurable
// apostrophe policy.
//
// Every counter in this module depends on the same normalization rules, so
// they live in one place: a rune survives [Strip] if it is a letter, a
// digit, or whitespace. Combining marks that Unicode classes as alphabetic
// (Arabic harakat and similar) survive as well, because the Arabic counters
// read them after normalization. Hyphens are always removed, so hyphenated
// compounds collapse to a single token when the result is split on
// whitespace.
package normalize

import (
	"strings"
	"unicode"
)

// Strip returns text with punctuation removed. When
// keepContractionApostrophes is true, an apostrophe directly between two
// letters is preserved (the contraction pattern in "they're" or "don't");
// every other apostrophe is removed along with the rest of the punctuation.
// U+2019, the typographic apostrophe, is treated the same as U+0027.
//
// Strip is idempotent and never lengthens its input.
func Strip(text string, keepContractionApostrophes bool) string {
	runes := []rune(text)

	var b strings.Builder
	b.Grow(len(text))
	for i, r := range runes {
		switch {
		case isWordRune(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case keepContractionApostrophes && isApostrophe(r):
			if i > 0 && i+1 < len(runes) && unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]) {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// isWordRune reports whether r survives punctuation removal regardless of
// the apostrophe policy. Other_Alphabetic admits the combining vowel marks
// the Arabic syllable counter needs.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}
