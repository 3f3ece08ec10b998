// Package count provides the primitive text measurements behind the
// readability formulas: characters, letters, words, sentences and
// syllables, plus the word selections derived from them.
//
// Counters accept raw text and apply [normalize.Strip] themselves where
// punctuation matters, so callers never pre-normalize. Counts are never
// negative and empty input never panics; zero denominators are the
// caller's concern.
package count

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/legible/normalize"
	"github.com/tsawler/legible/syllable"
)

// Chars returns the number of Unicode code points in text. When
// ignoreSpaces is true, whitespace is excluded.
func Chars(text string, ignoreSpaces bool) int {
	n := 0
	for _, r := range text {
		if ignoreSpaces && unicode.IsSpace(r) {
			continue
		}
		n++
	}
	return n
}

// Letters returns the number of alphabetic code points in text. Digits,
// marks and punctuation are excluded.
func Letters(text string) int {
	n := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// WordList splits text on whitespace and returns the tokens. With
// removePunctuation, punctuation is stripped first under the given
// apostrophe policy, so hyphenated compounds collapse into one token.
func WordList(text string, removePunctuation, keepApostrophes bool) []string {
	if removePunctuation {
		text = normalize.Strip(text, keepApostrophes)
	}
	return strings.Fields(text)
}

// Words counts the tokens of text under the same policy as [WordList].
func Words(text string, removePunctuation, keepApostrophes bool) int {
	return len(WordList(text, removePunctuation, keepApostrophes))
}

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

// Sentences counts the sentences of text. The text is segmented into
// runs of non-terminal characters followed by any number of terminal
// marks (. ! ?). Segments with at most two words read as abbreviations
// or fragments and are skipped, which keeps "Dr. Smith arrived." at one
// sentence. The result is floored at 1 so that degenerate text cannot
// produce a zero denominator downstream.
func Sentences(text string) int {
	n := 0
	for _, seg := range sentencePattern.FindAllString(text, -1) {
		if Words(seg, true, true) > 2 {
			n++
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

// Syllables counts the syllables of text with the given counter.
func Syllables(text string, counter syllable.Counter) int {
	return counter.Text(text)
}
