package syllable

import (
	"strings"
	"unicode"

	"github.com/tsawler/legible/normalize"
)

// Arabic diacritics and long-vowel letters.
const (
	fatha    = 'َ'
	damma    = 'ُ'
	kasra    = 'ِ'
	fathatan = 'ً'
	dammatan = 'ٌ'
	kasratan = 'ٍ'
	shadda   = 'ّ'

	alef        = 'ا'
	waw         = 'و'
	yeh         = 'ي'
	alefMaqsura = 'ى'
)

// ArabicDiacritic counts Arabic syllables from short-vowel marks. A fatha,
// damma or kasra followed by alef, waw or yeh is a long syllable (weight
// 2); one not so followed is a short syllable (weight 1). The stress marks
// fathatan, dammatan, kasratan and shadda each add weight 2.
//
// Unvocalized text carries no short-vowel marks at all. When the scan finds
// none, the short count falls back to the rune length of the input minus
// alef, alef maqsura, basic punctuation and spaces, minus two. The result
// never goes below zero.
type ArabicDiacritic struct{}

// Lang returns "ar".
func (ArabicDiacritic) Lang() string { return "ar" }

// Word counts the syllables of a single word.
func (ArabicDiacritic) Word(word string) int { return arabicCount(word) }

// Text counts the syllables of a whole text.
func (ArabicDiacritic) Text(text string) int { return arabicCount(text) }

func arabicCount(text string) int {
	// The short/long scan runs over the normalized words flattened into one
	// rune sequence, so a mark at the end of a word reads the first rune of
	// the next word as its successor.
	var flat []rune
	for _, w := range strings.Fields(normalize.Strip(text, false)) {
		flat = append(flat, []rune(w)...)
	}

	short, long := 0, 0
	for i, r := range flat {
		if r != fatha && r != damma && r != kasra {
			continue
		}
		if i+1 < len(flat) && isLongVowelLetter(flat[i+1]) {
			long++
		} else {
			short++
		}
	}

	// Stress marks are counted on the raw text, not the normalized form.
	stress := 0
	for _, r := range text {
		switch r {
		case fathatan, dammatan, kasratan, shadda:
			stress++
		}
	}

	if short == 0 {
		short = fallbackLength(text) - 2
	}

	total := short + 2*(long+stress)
	if total < 0 {
		total = 0
	}
	return total
}

// fallbackLength is the rune length of the text with alef, alef maqsura,
// the punctuation marks ? . ! , *, and whitespace removed.
func fallbackLength(text string) int {
	n := 0
	for _, r := range text {
		switch {
		case r == alef || r == alefMaqsura:
		case r == '?' || r == '.' || r == '!' || r == ',' || r == '*':
		case unicode.IsSpace(r):
		default:
			n++
		}
	}
	return n
}

func isLongVowelLetter(r rune) bool {
	return r == alef || r == waw || r == yeh
}
