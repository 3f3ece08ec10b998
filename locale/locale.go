// Package locale resolves language tags and carries the per-language
// resources the scoring formulas depend on: formula constants, the
// easy-word list, and ordinal grade suffixes.
//
// Tags are accepted in BCP 47 form ("en", "en-US") and in the
// underscore form some tooling emits ("en_US"). Only the primary
// language subtag matters here; "es-MX" and "es" resolve to the same
// resources.
//
// Two resolution modes are offered. [Resolve] never fails: an
// unparseable or unsupported tag falls back to [DefaultLanguage] and
// logs a warning once per distinct tag. [ResolveStrict] returns an
// error instead, for callers that treat an unsupported language as a
// configuration mistake.
package locale

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	_ "embed"
)

// DefaultLanguage is the primary language subtag used when resolution
// falls back.
const DefaultLanguage = "en"

//go:embed data/constants.yaml
var constantsYAML []byte

// Constants holds the per-language formula constants. Every field is
// populated; languages missing a value in the table inherit the English
// one.
type Constants struct {
	// FREBase, FRESentenceLength and FRESyllablesPerWord parameterize
	// the Flesch reading-ease formula for the language.
	FREBase             float64
	FRESentenceLength   float64
	FRESyllablesPerWord float64

	// FRESyllableInterval, when non-zero, scales the syllables-per-word
	// ratio before the coefficient is applied. Spanish and Italian use
	// an interval of 100.
	FRESyllableInterval float64

	// SyllableThreshold is the per-word syllable count at or above
	// which a word counts as complex for the Gunning fog formula.
	SyllableThreshold int
}

type rawConstants struct {
	FREBase             *float64 `yaml:"fre_base"`
	FRESentenceLength   *float64 `yaml:"fre_sentence_length"`
	FRESyllablesPerWord *float64 `yaml:"fre_syllables_per_word"`
	FRESyllableInterval *float64 `yaml:"fre_syllable_interval"`
	SyllableThreshold   *int     `yaml:"syllable_threshold"`
}

var constants = mustParseConstants(constantsYAML)

func mustParseConstants(data []byte) map[string]rawConstants {
	var m map[string]rawConstants
	if err := yaml.Unmarshal(data, &m); err != nil {
		panic("locale: malformed embedded constants.yaml: " + err.Error())
	}
	en, ok := m[DefaultLanguage]
	if !ok {
		panic("locale: embedded constants.yaml has no en entry")
	}
	if en.FREBase == nil || en.FRESentenceLength == nil ||
		en.FRESyllablesPerWord == nil || en.SyllableThreshold == nil {
		panic("locale: embedded constants.yaml en entry is incomplete")
	}
	return m
}

// Root parses a language tag and returns its primary language subtag.
// Underscores are accepted in place of hyphens.
func Root(tag string) (string, error) {
	t, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("parse language tag %q: %w", tag, err)
	}
	base, _ := t.Base()
	return base.String(), nil
}

// Supported reports whether resources exist for the given primary
// language subtag.
func Supported(root string) bool {
	_, ok := constants[root]
	return ok
}

// SupportedLanguages returns the primary language subtags with entries
// in the constants table, sorted.
func SupportedLanguages() []string {
	roots := make([]string, 0, len(constants))
	for root := range constants {
		roots = append(roots, root)
	}
	sort.Strings(roots)
	return roots
}

// ResolveStrict resolves a language tag to a supported primary language
// subtag, or returns an error when the tag does not parse or no
// resources exist for its language.
func ResolveStrict(tag string) (string, error) {
	root, err := Root(tag)
	if err != nil {
		return "", err
	}
	if !Supported(root) {
		return "", fmt.Errorf("unsupported language %q (supported: %s)",
			tag, strings.Join(SupportedLanguages(), ", "))
	}
	return root, nil
}

var warnedTags sync.Map

// Resolve resolves a language tag to a supported primary language
// subtag, falling back to [DefaultLanguage] when the tag does not parse
// or is unsupported. The fallback is logged once per distinct tag.
func Resolve(tag string) string {
	root, err := ResolveStrict(tag)
	if err != nil {
		if _, dup := warnedTags.LoadOrStore(tag, struct{}{}); !dup {
			log.Warn().Str("tag", tag).Str("fallback", DefaultLanguage).
				Msg("unsupported language tag")
		}
		return DefaultLanguage
	}
	return root
}

// ConstantsFor returns the formula constants for a primary language
// subtag. Values absent from the language's table entry, and subtags
// with no entry at all, inherit the English constants.
func ConstantsFor(root string) Constants {
	en := constants[DefaultLanguage]
	c := Constants{
		FREBase:             *en.FREBase,
		FRESentenceLength:   *en.FRESentenceLength,
		FRESyllablesPerWord: *en.FRESyllablesPerWord,
		SyllableThreshold:   *en.SyllableThreshold,
	}
	if en.FRESyllableInterval != nil {
		c.FRESyllableInterval = *en.FRESyllableInterval
	}
	raw, ok := constants[root]
	if !ok {
		return c
	}
	if raw.FREBase != nil {
		c.FREBase = *raw.FREBase
	}
	if raw.FRESentenceLength != nil {
		c.FRESentenceLength = *raw.FRESentenceLength
	}
	if raw.FRESyllablesPerWord != nil {
		c.FRESyllablesPerWord = *raw.FRESyllablesPerWord
	}
	if raw.FRESyllableInterval != nil {
		c.FRESyllableInterval = *raw.FRESyllableInterval
	}
	if raw.SyllableThreshold != nil {
		c.SyllableThreshold = *raw.SyllableThreshold
	}
	return c
}
