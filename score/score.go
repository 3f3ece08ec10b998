// Package score computes readability scores over immutable text.
//
// The [Engine] wraps the primitive counters from [count] with bounded
// memoization and exposes the formula library on top of them. Results
// depend only on the arguments, so every cache key carries the full
// argument tuple, language tag and policy flags included; two calls
// that differ in any flag never share an entry.
//
// Formulas follow a uniform degenerate-input policy: when a needed
// denominator (words, sentences) is zero the formula returns 0 instead
// of infinity or NaN. Sentence counts are floored at one upstream, so
// in practice the live guard is the zero-word case.
package score

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/legible/count"
	"github.com/tsawler/legible/locale"
	"github.com/tsawler/legible/memoize"
	"github.com/tsawler/legible/syllable"
)

// Cache keys. Every argument that influences a result is part of its
// key, so policy variants cannot cross-contaminate.
type (
	charsKey struct {
		text         string
		ignoreSpaces bool
	}
	wordsKey struct {
		text            string
		removePunct     bool
		keepApostrophes bool
	}
	langTextKey struct {
		lang string
		text string
	}
	miniKey struct {
		text    string
		maxSize int
	}
	longKey struct {
		text  string
		limit int
	}
	difficultKey struct {
		text      string
		lang      string
		threshold int
		unique    bool
	}
	readingKey struct {
		text      string
		msPerChar float64
	}
	scoreKey struct {
		op      scoreOp
		text    string
		lang    string
		variant uint8
	}
)

type scoreOp uint8

const (
	opFleschReadingEase scoreOp = iota
	opFleschKincaidGrade
	opSMOGIndex
	opColemanLiauIndex
	opAutomatedReadabilityIndex
	opDaleChall
	opDaleChallV2
	opLinsearWrite
	opGunningFog
	opLIX
	opRIX
	opSpache
	opFernandezHuerta
	opSzigrisztPazos
	opGutierrezPolini
	opCrawford
	opOsman
	opGulpease
	opWiener
	opMcAlpineEFLAW
	opTextStandard
)

// Engine computes readability scores with memoized counting underneath.
// An Engine is safe for concurrent use and is meant to be shared; the
// zero value is not usable, construct one with [New].
type Engine struct {
	log zerolog.Logger

	easy count.WordSet

	chars         *memoize.Cache[charsKey, int]
	letters       *memoize.Cache[string, int]
	words         *memoize.Cache[wordsKey, int]
	sentences     *memoize.Cache[string, int]
	syllables     *memoize.Cache[langTextKey, int]
	poly          *memoize.Cache[langTextKey, int]
	mono          *memoize.Cache[langTextKey, int]
	mini          *memoize.Cache[miniKey, int]
	long          *memoize.Cache[longKey, int]
	difficult     *memoize.Cache[difficultKey, int]
	arabicSyll    *memoize.Cache[string, int]
	arabicComplex *memoize.Cache[string, int]
	arabicLong    *memoize.Cache[string, int]
	faseeh        *memoize.Cache[string, int]
	reading       *memoize.Cache[readingKey, float64]
	scores        *memoize.Cache[scoreKey, float64]
}

// New returns an Engine logging through the given logger. Counting and
// scoring caches start empty with the default capacity.
func New(logger zerolog.Logger) *Engine {
	return &Engine{
		log:           logger,
		easy:          locale.EasyWords(),
		chars:         memoize.New[charsKey, int](0),
		letters:       memoize.New[string, int](0),
		words:         memoize.New[wordsKey, int](0),
		sentences:     memoize.New[string, int](0),
		syllables:     memoize.New[langTextKey, int](0),
		poly:          memoize.New[langTextKey, int](0),
		mono:          memoize.New[langTextKey, int](0),
		mini:          memoize.New[miniKey, int](0),
		long:          memoize.New[longKey, int](0),
		difficult:     memoize.New[difficultKey, int](0),
		arabicSyll:    memoize.New[string, int](0),
		arabicComplex: memoize.New[string, int](0),
		arabicLong:    memoize.New[string, int](0),
		faseeh:        memoize.New[string, int](0),
		reading:       memoize.New[readingKey, float64](0),
		scores:        memoize.New[scoreKey, float64](0),
	}
}

// SetEasyWords replaces the easy-word list consulted by the difficult-
// word selections. Passing a custom list invalidates nothing; callers
// swap lists before scoring, not between calls on the same text.
func (e *Engine) SetEasyWords(easy count.WordSet) {
	e.easy = easy
}

// Purge drops every cached count and score.
func (e *Engine) Purge() {
	e.chars.Purge()
	e.letters.Purge()
	e.words.Purge()
	e.sentences.Purge()
	e.syllables.Purge()
	e.poly.Purge()
	e.mono.Purge()
	e.mini.Purge()
	e.long.Purge()
	e.difficult.Purge()
	e.arabicSyll.Purge()
	e.arabicComplex.Purge()
	e.arabicLong.Purge()
	e.faseeh.Purge()
	e.reading.Purge()
	e.scores.Purge()
}

// counterFor returns the syllable counter for a resolved language root.
func counterFor(lang string) syllable.Counter {
	return syllable.ForLanguage(lang)
}

// Chars counts code points, optionally excluding whitespace.
func (e *Engine) Chars(text string, ignoreSpaces bool) int {
	return e.chars.Do(charsKey{text, ignoreSpaces}, func() int {
		return count.Chars(text, ignoreSpaces)
	})
}

// Letters counts alphabetic code points.
func (e *Engine) Letters(text string) int {
	return e.letters.Do(text, func() int {
		return count.Letters(text)
	})
}

// Words counts whitespace-separated tokens under the given punctuation
// policy.
func (e *Engine) Words(text string, removePunctuation, keepApostrophes bool) int {
	return e.words.Do(wordsKey{text, removePunctuation, keepApostrophes}, func() int {
		return count.Words(text, removePunctuation, keepApostrophes)
	})
}

// Sentences counts sentences, floored at one.
func (e *Engine) Sentences(text string) int {
	return e.sentences.Do(text, func() int {
		return count.Sentences(text)
	})
}

// Syllables counts the syllables of text for a language.
func (e *Engine) Syllables(text, lang string) int {
	return e.syllables.Do(langTextKey{lang, text}, func() int {
		return count.Syllables(text, counterFor(lang))
	})
}

// PolysyllableWords counts words with more than three syllables.
func (e *Engine) PolysyllableWords(text, lang string) int {
	return e.poly.Do(langTextKey{lang, text}, func() int {
		return count.PolysyllableWords(text, counterFor(lang))
	})
}

// MonosyllableWords counts words with exactly one syllable.
func (e *Engine) MonosyllableWords(text, lang string) int {
	return e.mono.Do(langTextKey{lang, text}, func() int {
		return count.MonosyllableWords(text, counterFor(lang))
	})
}

// Miniwords counts words of at most maxSize code points.
func (e *Engine) Miniwords(text string, maxSize int) int {
	return e.mini.Do(miniKey{text, maxSize}, func() int {
		return count.Miniwords(text, maxSize)
	})
}

// LongWords counts words longer than limit code points.
func (e *Engine) LongWords(text string, limit int) int {
	return e.long.Do(longKey{text, limit}, func() int {
		return count.LongWords(text, limit)
	})
}

// DifficultWords counts words absent from the easy list with at least
// threshold syllables.
func (e *Engine) DifficultWords(text, lang string, threshold int, unique bool) int {
	return e.difficult.Do(difficultKey{text, lang, threshold, unique}, func() int {
		return count.DifficultWords(text, counterFor(lang), e.easy, threshold, unique)
	})
}

// ListDifficultWords returns the difficult words in first-seen order,
// de-duplicated. The slice is freshly allocated on every call.
func (e *Engine) ListDifficultWords(text, lang string, threshold int) []string {
	return count.ListDifficultWords(text, counterFor(lang), e.easy, threshold)
}

// IsDifficultWord reports whether a single word reads as difficult.
func (e *Engine) IsDifficultWord(word, lang string, threshold int) bool {
	return count.IsDifficultWord(word, counterFor(lang), e.easy, threshold)
}

// IsEasyWord reports whether a single word is on the easy list or under
// the syllable threshold.
func (e *Engine) IsEasyWord(word, lang string, threshold int) bool {
	return !e.IsDifficultWord(word, lang, threshold)
}

// ArabicSyllables counts Arabic syllables, long and stressed weighted
// double.
func (e *Engine) ArabicSyllables(text string) int {
	return e.arabicSyll.Do(text, func() int {
		return count.ArabicSyllables(text)
	})
}

// ComplexArabicWords counts words with more than five harakat marks.
func (e *Engine) ComplexArabicWords(text string) int {
	return e.arabicComplex.Do(text, func() int {
		return count.ComplexArabicWords(text)
	})
}

// ArabicLongWords counts words longer than five letters after the
// tashkeel strip.
func (e *Engine) ArabicLongWords(text string) int {
	return e.arabicLong.Do(text, func() int {
		return count.ArabicLongWords(text)
	})
}

// Faseeh counts words in classical literary style.
func (e *Engine) Faseeh(text string) int {
	return e.faseeh.Do(text, func() int {
		return count.Faseeh(text)
	})
}

// AvgSentenceLength returns words per sentence, 0 for wordless text.
func (e *Engine) AvgSentenceLength(text string) float64 {
	words := e.Words(text, true, true)
	if words == 0 {
		return 0
	}
	return float64(words) / float64(e.Sentences(text))
}

// AvgSyllablesPerWord returns syllables per word, scaled by interval
// when interval is non-zero. Returns 0 for wordless text.
func (e *Engine) AvgSyllablesPerWord(text, lang string, interval float64) float64 {
	words := e.Words(text, true, true)
	if words == 0 {
		return 0
	}
	spw := float64(e.Syllables(text, lang)) / float64(words)
	if interval != 0 {
		spw *= interval
	}
	return spw
}

// AvgCharsPerWord returns non-space characters per word. For wordless
// text the character count itself comes back, matching the historical
// behavior formulas were calibrated against.
func (e *Engine) AvgCharsPerWord(text string) float64 {
	chars := e.Chars(text, true)
	words := e.Words(text, true, true)
	if words == 0 {
		return float64(chars)
	}
	return float64(chars) / float64(words)
}

// AvgLettersPerWord returns letters per word, 0 for wordless text.
func (e *Engine) AvgLettersPerWord(text string) float64 {
	words := e.Words(text, true, true)
	if words == 0 {
		return 0
	}
	return float64(e.Letters(text)) / float64(words)
}

// AvgSentencesPerWord returns sentences per word, 0 for wordless text.
func (e *Engine) AvgSentencesPerWord(text string) float64 {
	words := e.Words(text, true, true)
	if words == 0 {
		return 0
	}
	return float64(e.Sentences(text)) / float64(words)
}
