// Package syllable counts syllables, dispatching per language between a
// vowel-group heuristic for Latin-script languages and diacritic rules for
// Arabic.
//
// The [Counter] interface is the seam between the two: callers select an
// implementation once per language tag via [ForLanguage] and never branch
// on the language again. A hyphenation-dictionary implementation can be
// dropped in behind the same interface.
//
// # Heuristic counting
//
// [Heuristic] counts runs of consecutive vowels per word, with final-e
// adjustments for English. It is an approximation: English orthography
// cannot be syllabified exactly without a dictionary, and the formulas
// consuming these counts are themselves statistical.
//
// # Arabic counting
//
// [ArabicDiacritic] reads the short-vowel marks (fatha, damma, kasra). A
// mark followed by a long-vowel letter (alef, waw, yeh) counts as one long
// syllable of weight 2, otherwise as one short syllable of weight 1. The
// stress marks (fathatan, dammatan, kasratan, shadda) add weight 2 each.
// Text without any short-vowel marking falls back to a length-based
// approximation, documented on the type.
package syllable

import (
	"strings"

	"github.com/tsawler/legible/normalize"
)

// Counter counts syllables for one language.
type Counter interface {
	// Lang returns the primary language subtag the counter was built for.
	Lang() string
	// Word counts the syllables of a single word.
	Word(word string) int
	// Text counts the syllables of a whole text.
	Text(text string) int
}

// ForLanguage returns the counter for a resolved primary language subtag.
// Arabic gets the diacritic counter; everything else gets the vowel-group
// heuristic with the language's vowel set.
func ForLanguage(root string) Counter {
	if root == "ar" {
		return ArabicDiacritic{}
	}
	return NewHeuristic(root)
}

// vowelTable maps primary language subtags to the runes the heuristic
// treats as vowels. Languages not listed use the English set.
var vowelTable = map[string]string{
	"en": "aeiouy",
	"de": "aeiouyäöü",
	"es": "aeiouáéíóúü",
	"fr": "aeiouyàâéèêëîïôùûü",
	"it": "aeiouàèéìíòóù",
	"nl": "aeiouy",
	"pl": "aeiouyąęó",
	"ru": "аеёиоуыэюя",
}

// Heuristic counts syllables as runs of consecutive vowels. English words
// additionally get the silent final-e and consonant+le adjustments. Every
// non-empty word counts at least one syllable.
type Heuristic struct {
	lang   string
	vowels string
}

// NewHeuristic returns a vowel-group counter for the given primary
// language subtag.
func NewHeuristic(lang string) Heuristic {
	vowels, ok := vowelTable[lang]
	if !ok {
		vowels = vowelTable["en"]
	}
	return Heuristic{lang: lang, vowels: vowels}
}

// Lang returns the language subtag the heuristic was built for.
func (h Heuristic) Lang() string { return h.lang }

// Word counts the syllables of a single word.
func (h Heuristic) Word(word string) int {
	w := []rune(normalize.Strip(strings.ToLower(word), false))
	if len(w) == 0 {
		return 0
	}

	groups := 0
	prevVowel := false
	for _, r := range w {
		v := h.isVowel(r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}

	if h.lang == "en" {
		if w[len(w)-1] == 'e' {
			groups-- // silent final e
		}
		if len(w) > 2 && w[len(w)-1] == 'e' && w[len(w)-2] == 'l' && !h.isVowel(w[len(w)-3]) {
			groups++ // consonant + le sounds its own syllable: table, little
		}
	}

	if groups < 1 {
		groups = 1
	}
	return groups
}

// Text counts the syllables of a whole text by summing per-word counts
// over the normalized, lowercased word list.
func (h Heuristic) Text(text string) int {
	total := 0
	for _, w := range strings.Fields(normalize.Strip(strings.ToLower(text), true)) {
		total += h.Word(w)
	}
	return total
}

func (h Heuristic) isVowel(r rune) bool {
	return strings.ContainsRune(h.vowels, r)
}
