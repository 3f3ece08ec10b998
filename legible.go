// Package legible computes readability and linguistic-complexity metrics
// from plain text: grade-level scores, syllable, word, and sentence counts,
// and language-specific indices.
//
// Basic usage:
//
//	s := legible.New()
//	ease := s.FleschReadingEase("The cat sat on the mat.")
//	grade := s.TextStandardString("The cat sat on the mat.")
//
// With options:
//
//	ease := legible.New().
//	    Language("es").
//	    Rounding(2).
//	    FernandezHuerta("Los gatos beben leche fresca.")
//
// A Scorer is immutable; configuration methods return new instances that
// share one memoized engine, so a configured Scorer is safe for concurrent
// use. For advanced use cases, the lower-level score and count packages are
// also available.
package legible

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/legible/locale"
	"github.com/tsawler/legible/score"
)

// Scorer computes readability metrics under a fixed language and a set of
// formatting preferences. Each configuration method returns a new Scorer
// instance, making it safe for concurrent use and allowing method chaining.
type Scorer struct {
	eng  *score.Engine
	opts scoreOptions
}

// New returns a Scorer with the default configuration: English, contraction
// apostrophes kept, rounding disabled.
//
// Example:
//
//	grade := legible.New().FleschKincaidGrade("Some text to grade.")
func New() *Scorer {
	return &Scorer{
		eng:  score.New(zerolog.Nop()),
		opts: defaultOptions(),
	}
}

// NewWithConfig returns a Scorer built from cfg. With cfg.Strict set, an
// unsupported language tag is an error; otherwise unknown tags fall back to
// English the same way Language does.
//
// Example:
//
//	s, err := legible.NewWithConfig(legible.Config{Language: "de", Strict: true})
func NewWithConfig(cfg Config) (*Scorer, error) {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	opts := defaultOptions()
	if cfg.Language != "" {
		if cfg.Strict {
			root, err := locale.ResolveStrict(cfg.Language)
			if err != nil {
				return nil, err
			}
			opts.lang = root
		} else {
			opts.lang = locale.Resolve(cfg.Language)
		}
	}
	opts.removeApostrophes = cfg.RemoveApostrophes
	if cfg.Rounding {
		opts.rounding = true
		opts.points = cfg.RoundingPoints
	}

	return &Scorer{
		eng:  score.New(logger),
		opts: opts,
	}, nil
}

// clone creates a copy of the Scorer sharing the underlying engine. Cache
// keys carry the full policy, so sharing is safe.
func (s *Scorer) clone() *Scorer {
	return &Scorer{
		eng:  s.eng,
		opts: s.opts,
	}
}

// Language selects the language whose formula constants, syllable rules,
// and easy-word list apply. Tags resolve to their primary subtag, so
// "en_US" selects "en". Unsupported languages fall back to English with a
// one-time warning.
//
// Example:
//
//	ease := legible.New().Language("es").FernandezHuerta(text)
func (s *Scorer) Language(tag string) *Scorer {
	newSc := s.clone()
	newSc.opts.lang = locale.Resolve(tag)
	return newSc
}

// Lang returns the resolved primary language subtag in effect.
func (s *Scorer) Lang() string {
	return s.opts.lang
}

// RemoveApostrophes configures punctuation removal to strip contraction
// apostrophes, so "They're" becomes "Theyre".
func (s *Scorer) RemoveApostrophes() *Scorer {
	newSc := s.clone()
	newSc.opts.removeApostrophes = true
	return newSc
}

// KeepApostrophes restores the default policy of keeping contraction
// apostrophes during punctuation removal.
func (s *Scorer) KeepApostrophes() *Scorer {
	newSc := s.clone()
	newSc.opts.removeApostrophes = false
	return newSc
}

// Rounding rounds float-returning metrics to points decimal places, half
// away from zero. Counts are never rounded.
//
// Example:
//
//	ease := legible.New().Rounding(2).FleschReadingEase(text)
func (s *Scorer) Rounding(points int) *Scorer {
	newSc := s.clone()
	newSc.opts.rounding = true
	newSc.opts.points = points
	return newSc
}

// NoRounding restores the default full-precision results.
func (s *Scorer) NoRounding() *Scorer {
	newSc := s.clone()
	newSc.opts.rounding = false
	newSc.opts.points = 0
	return newSc
}

// Engine returns the shared memoized engine, for direct access to the
// counting layer or to swap in a custom easy-word list.
func (s *Scorer) Engine() *score.Engine {
	return s.eng
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	s := legible.Must(legible.NewWithConfig(legible.Config{Language: "fr", Strict: true}))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
