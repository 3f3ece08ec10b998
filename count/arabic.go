package count

import (
	"strings"

	"github.com/tsawler/legible/syllable"
)

// ArabicSyllables counts the syllables of Arabic text, weighting long
// and stressed syllables double. See [syllable.ArabicDiacritic] for the
// rules, including the fallback for unvocalized text.
func ArabicSyllables(text string) int {
	return syllable.ArabicDiacritic{}.Text(text)
}

// ComplexArabicWords counts words carrying more than five short-vowel
// or stress marks. Words are taken from the raw text, marks and all.
func ComplexArabicWords(text string) int {
	n := 0
	for _, w := range strings.Fields(text) {
		marks := 0
		for _, r := range w {
			if isHarakat(r) {
				marks++
			}
		}
		if marks > 5 {
			n++
		}
	}
	return n
}

// ArabicLongWords counts words longer than five letters once the
// tashkeel marks and punctuation are stripped.
func ArabicLongWords(text string) int {
	var b strings.Builder
	for _, r := range text {
		if !isTashkeel(r) {
			b.WriteRune(r)
		}
	}
	n := 0
	for _, w := range WordList(b.String(), true, false) {
		if len([]rune(w)) > 5 {
			n++
		}
	}
	return n
}

// Faseeh counts words in classical literary style: more than five
// syllables and at least one of the faseeh letters (hamza on yeh or
// waw, thal, dhah) or the digraphs waw+alef and yeh+noon.
func Faseeh(text string) int {
	n := 0
	for _, w := range strings.Fields(text) {
		if ArabicSyllables(w) <= 5 {
			continue
		}
		if strings.ContainsAny(w, "ئؤذظ") ||
			strings.Contains(w, "وا") ||
			strings.Contains(w, "ين") {
			n++
		}
	}
	return n
}

// isHarakat reports the seven short-vowel and stress marks: fathatan,
// dammatan, kasratan, fatha, damma, kasra and shadda.
func isHarakat(r rune) bool {
	return r >= 'ً' && r <= 'ّ'
}

// isTashkeel additionally covers sukun, maddah, the inverted damma and
// the noon ghunna mark, the full mark set stripped before length checks.
func isTashkeel(r rune) bool {
	return (r >= 'ً' && r <= 'ٓ') || r == 'ٗ' || r == '٘'
}
