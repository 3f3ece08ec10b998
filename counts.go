package legible

import (
	"github.com/tsawler/legible/normalize"
)

// DefaultSyllableThreshold is the syllable count at or above which a word
// missing from the easy-word list counts as difficult.
const DefaultSyllableThreshold = 2

// keepApostrophes reports the normalization policy implied by the
// configured apostrophe preference.
func (s *Scorer) keepApostrophes() bool {
	return !s.opts.removeApostrophes
}

// RemovePunctuation returns text with punctuation stripped under the
// configured apostrophe policy. Hyphens are always removed.
//
// Example:
//
//	legible.New().RemovePunctuation("They're here!")                    // "They're here"
//	legible.New().RemoveApostrophes().RemovePunctuation("They're here!") // "Theyre here"
func (s *Scorer) RemovePunctuation(text string) string {
	return normalize.Strip(text, s.keepApostrophes())
}

// CharCount counts characters, optionally ignoring whitespace. Punctuation
// is counted.
func (s *Scorer) CharCount(text string, ignoreSpaces bool) int {
	return s.eng.Chars(text, ignoreSpaces)
}

// LetterCount counts alphabetic characters. Digits, punctuation, and
// whitespace are not counted.
func (s *Scorer) LetterCount(text string) int {
	return s.eng.Letters(text)
}

// LexiconCount counts words. With removePunctuation set, the text is
// stripped under the configured apostrophe policy first, so hyphenated
// compounds collapse to a single word.
func (s *Scorer) LexiconCount(text string, removePunctuation bool) int {
	return s.eng.Words(text, removePunctuation, s.keepApostrophes())
}

// MiniwordCount counts words of at most maxSize characters. A non-positive
// maxSize selects the default of three.
func (s *Scorer) MiniwordCount(text string, maxSize int) int {
	return s.eng.Miniwords(text, maxSize)
}

// SyllableCount counts syllables across the text using the configured
// language's syllable rules.
func (s *Scorer) SyllableCount(text string) int {
	return s.eng.Syllables(text, s.opts.lang)
}

// SentenceCount counts sentences. Fragments of two words or fewer do not
// count as sentences; the result is never below one.
func (s *Scorer) SentenceCount(text string) int {
	return s.eng.Sentences(text)
}

// PolysyllableCount counts words with more than three syllables.
func (s *Scorer) PolysyllableCount(text string) int {
	return s.eng.PolysyllableWords(text, s.opts.lang)
}

// MonosyllableCount counts words with exactly one syllable.
func (s *Scorer) MonosyllableCount(text string) int {
	return s.eng.MonosyllableWords(text, s.opts.lang)
}

// LongWordCount counts words longer than six characters.
func (s *Scorer) LongWordCount(text string) int {
	return s.eng.LongWords(text, 0)
}

// AvgSentenceLength returns the mean number of words per sentence.
func (s *Scorer) AvgSentenceLength(text string) float64 {
	return s.round(s.eng.AvgSentenceLength(text))
}

// WordsPerSentence returns the mean number of words per sentence.
func (s *Scorer) WordsPerSentence(text string) float64 {
	return s.AvgSentenceLength(text)
}

// AvgSyllablesPerWord returns the mean number of syllables per word.
func (s *Scorer) AvgSyllablesPerWord(text string) float64 {
	return s.round(s.eng.AvgSyllablesPerWord(text, s.opts.lang, 0))
}

// AvgCharsPerWord returns the mean number of non-space characters per
// word. Wordless text returns its character count unchanged.
func (s *Scorer) AvgCharsPerWord(text string) float64 {
	return s.round(s.eng.AvgCharsPerWord(text))
}

// AvgLettersPerWord returns the mean number of letters per word.
func (s *Scorer) AvgLettersPerWord(text string) float64 {
	return s.round(s.eng.AvgLettersPerWord(text))
}

// AvgSentencesPerWord returns the ratio of sentences to words.
func (s *Scorer) AvgSentencesPerWord(text string) float64 {
	return s.round(s.eng.AvgSentencesPerWord(text))
}

// DifficultWords counts distinct words that are missing from the
// easy-word list and have at least DefaultSyllableThreshold syllables.
// Lookups are verbatim, so a capitalized sentence opener does not match
// its lowercase list entry.
func (s *Scorer) DifficultWords(text string) int {
	return s.eng.DifficultWords(text, s.opts.lang, DefaultSyllableThreshold, true)
}

// DifficultWordsWithThreshold counts distinct difficult words at an
// explicit syllable threshold. A threshold of zero counts every word
// missing from the easy-word list.
func (s *Scorer) DifficultWordsWithThreshold(text string, syllableThreshold int) int {
	return s.eng.DifficultWords(text, s.opts.lang, syllableThreshold, true)
}

// DifficultWordsList returns the difficult words in first-seen order,
// de-duplicated.
func (s *Scorer) DifficultWordsList(text string) []string {
	return s.eng.ListDifficultWords(text, s.opts.lang, DefaultSyllableThreshold)
}

// IsDifficultWord reports whether word is missing from the easy-word list
// and has at least DefaultSyllableThreshold syllables.
func (s *Scorer) IsDifficultWord(word string) bool {
	return s.eng.IsDifficultWord(word, s.opts.lang, DefaultSyllableThreshold)
}

// IsEasyWord reports whether word is on the easy-word list or falls below
// the syllable threshold.
func (s *Scorer) IsEasyWord(word string) bool {
	return s.eng.IsEasyWord(word, s.opts.lang, DefaultSyllableThreshold)
}

// CountArabicSyllables counts syllables from Arabic vowel diacritics,
// weighting long vowels and stress marks double.
func (s *Scorer) CountArabicSyllables(text string) int {
	return s.eng.ArabicSyllables(text)
}

// CountComplexArabicWords counts words carrying more than five harakat
// marks.
func (s *Scorer) CountComplexArabicWords(text string) int {
	return s.eng.ComplexArabicWords(text)
}

// CountArabicLongWords counts words longer than five letters once
// tashkeel marks are stripped.
func (s *Scorer) CountArabicLongWords(text string) int {
	return s.eng.ArabicLongWords(text)
}

// CountFaseeh counts words bearing the classical-Arabic markers.
func (s *Scorer) CountFaseeh(text string) int {
	return s.eng.Faseeh(text)
}
