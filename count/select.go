package count

import "github.com/tsawler/legible/syllable"

// WordSet answers membership queries for a word list.
type WordSet interface {
	Contains(word string) bool
}

// Default thresholds for the length-based selections.
const (
	// DefaultMiniwordSize is the maximum length of a miniword.
	DefaultMiniwordSize = 3
	// DefaultLongWordLength is the length above which a word counts as
	// long.
	DefaultLongWordLength = 6
)

// PolysyllableWords counts words with more than three syllables.
func PolysyllableWords(text string, counter syllable.Counter) int {
	n := 0
	for _, w := range WordList(text, true, true) {
		if counter.Word(w) > 3 {
			n++
		}
	}
	return n
}

// MonosyllableWords counts words with exactly one syllable.
func MonosyllableWords(text string, counter syllable.Counter) int {
	n := 0
	for _, w := range WordList(text, true, true) {
		if counter.Word(w) == 1 {
			n++
		}
	}
	return n
}

// Miniwords counts words of at most maxSize code points. A non-positive
// maxSize selects [DefaultMiniwordSize].
func Miniwords(text string, maxSize int) int {
	if maxSize <= 0 {
		maxSize = DefaultMiniwordSize
	}
	n := 0
	for _, w := range WordList(text, true, true) {
		if len([]rune(w)) <= maxSize {
			n++
		}
	}
	return n
}

// LongWords counts words longer than limit code points. A non-positive
// limit selects [DefaultLongWordLength].
func LongWords(text string, limit int) int {
	if limit <= 0 {
		limit = DefaultLongWordLength
	}
	n := 0
	for _, w := range WordList(text, true, true) {
		if len([]rune(w)) > limit {
			n++
		}
	}
	return n
}

// IsDifficultWord reports whether word is absent from the easy list and
// has at least threshold syllables. Membership is exact: capitalized
// forms of easy words read as difficult, since the lists are lowercase
// and no proper-noun detection is attempted.
func IsDifficultWord(word string, counter syllable.Counter, easy WordSet, threshold int) bool {
	if easy.Contains(word) {
		return false
	}
	return counter.Word(word) >= threshold
}

// DifficultWords counts the difficult words of text. With unique,
// repeated words count once.
func DifficultWords(text string, counter syllable.Counter, easy WordSet, threshold int, unique bool) int {
	if unique {
		return len(ListDifficultWords(text, counter, easy, threshold))
	}
	n := 0
	for _, w := range WordList(text, true, true) {
		if IsDifficultWord(w, counter, easy, threshold) {
			n++
		}
	}
	return n
}

// ListDifficultWords returns the difficult words of text in first-seen
// order, de-duplicated.
func ListDifficultWords(text string, counter syllable.Counter, easy WordSet, threshold int) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, w := range WordList(text, true, true) {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if IsDifficultWord(w, counter, easy, threshold) {
			out = append(out, w)
		}
	}
	return out
}
