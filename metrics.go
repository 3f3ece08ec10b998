package legible

import (
	"fmt"
	"math"

	"github.com/tsawler/legible/locale"
)

// round applies the configured rounding preference: half away from zero at
// the configured number of decimal places.
func (s *Scorer) round(v float64) float64 {
	if !s.opts.rounding {
		return v
	}
	p := math.Pow(10, float64(s.opts.points))
	return math.Round(v*p) / p
}

// FleschReadingEase scores text on the Flesch reading-ease scale using the
// configured language's constants. Higher scores read more easily.
//
// Example:
//
//	ease := legible.New().FleschReadingEase("The cat sat on the mat.")
func (s *Scorer) FleschReadingEase(text string) float64 {
	return s.round(s.eng.FleschReadingEase(text, s.opts.lang))
}

// FleschKincaidGrade returns the Flesch-Kincaid school grade for text.
func (s *Scorer) FleschKincaidGrade(text string) float64 {
	return s.round(s.eng.FleschKincaidGrade(text, s.opts.lang))
}

// SMOGIndex returns the SMOG grade. Texts under three sentences score
// zero, as the model is unreliable below that length.
func (s *Scorer) SMOGIndex(text string) float64 {
	return s.round(s.eng.SMOGIndex(text, s.opts.lang))
}

// ColemanLiauIndex returns the Coleman-Liau grade, driven by letters and
// sentences per hundred words.
func (s *Scorer) ColemanLiauIndex(text string) float64 {
	return s.round(s.eng.ColemanLiauIndex(text))
}

// AutomatedReadabilityIndex returns the ARI grade, driven by characters
// per word and words per sentence.
func (s *Scorer) AutomatedReadabilityIndex(text string) float64 {
	return s.round(s.eng.AutomatedReadabilityIndex(text))
}

// DaleChallReadabilityScore returns the original Dale-Chall score, based
// on the share of words missing from the familiar-word list.
func (s *Scorer) DaleChallReadabilityScore(text string) float64 {
	return s.round(s.eng.DaleChallReadabilityScore(text, s.opts.lang))
}

// DaleChallReadabilityScoreV2 returns the revised Dale-Chall score, which
// only counts unfamiliar words of two or more syllables.
func (s *Scorer) DaleChallReadabilityScoreV2(text string) float64 {
	return s.round(s.eng.DaleChallReadabilityScoreV2(text, s.opts.lang))
}

// LinsearWriteFormula grades the first hundred words of text by their
// syllable weight.
func (s *Scorer) LinsearWriteFormula(text string) float64 {
	return s.round(s.eng.LinsearWriteFormula(text, s.opts.lang))
}

// GunningFog returns the Gunning fog grade from sentence length and the
// share of difficult words.
func (s *Scorer) GunningFog(text string) float64 {
	return s.round(s.eng.GunningFog(text, s.opts.lang))
}

// LIX returns Björnsson's läsbarhetsindex from sentence length and the
// share of words longer than six characters.
func (s *Scorer) LIX(text string) float64 {
	return s.round(s.eng.LIX(text))
}

// RIX returns the Anderson RIX ratio of long words to sentences.
func (s *Scorer) RIX(text string) float64 {
	return s.round(s.eng.RIX(text))
}

// SpacheReadability returns the Spache grade for primary-school texts.
func (s *Scorer) SpacheReadability(text string) float64 {
	return s.round(s.eng.SpacheReadability(text, s.opts.lang))
}

// SpacheGrade returns the Spache grade truncated to an integer.
func (s *Scorer) SpacheGrade(text string) int {
	return int(s.eng.SpacheReadability(text, s.opts.lang))
}

// FernandezHuerta scores Spanish text on the Fernández Huerta adaptation
// of the Flesch scale.
func (s *Scorer) FernandezHuerta(text string) float64 {
	return s.round(s.eng.FernandezHuerta(text, s.opts.lang))
}

// SzigrisztPazos scores Spanish text on the Szigriszt Pazos perspicuity
// scale.
func (s *Scorer) SzigrisztPazos(text string) float64 {
	return s.round(s.eng.SzigrisztPazos(text, s.opts.lang))
}

// GutierrezPolini returns the Gutiérrez de Polini comprehensibility score
// for Spanish school texts.
func (s *Scorer) GutierrezPolini(text string) float64 {
	return s.round(s.eng.GutierrezPolini(text))
}

// Crawford estimates the years of schooling needed for Spanish text.
func (s *Scorer) Crawford(text string) float64 {
	return s.round(s.eng.Crawford(text, s.opts.lang))
}

// Osman scores Arabic text on the OSMAN adaptation of the Flesch scale.
func (s *Scorer) Osman(text string) float64 {
	return s.round(s.eng.Osman(text))
}

// GulpeaseIndex scores Italian text on the Gulpease scale. Higher scores
// read more easily.
func (s *Scorer) GulpeaseIndex(text string) float64 {
	return s.round(s.eng.Gulpease(text))
}

// WienerSachtextformel grades German nonfiction text on formula variant 1
// through 4. Variants outside that range are an error.
func (s *Scorer) WienerSachtextformel(text string, variant int) (float64, error) {
	v, err := s.eng.WienerSachtextformel(text, variant, s.opts.lang)
	if err != nil {
		return 0, err
	}
	return s.round(v), nil
}

// McAlpineEFLAW scores text for readers of English as a foreign language.
func (s *Scorer) McAlpineEFLAW(text string) float64 {
	return s.round(s.eng.McAlpineEFLAW(text))
}

// ReadingTime estimates the seconds needed to read text at the default
// pace of 14.69 ms per character.
func (s *Scorer) ReadingTime(text string) float64 {
	return s.round(s.eng.ReadingTime(text, 0))
}

// ReadingTimeWithSpeed estimates the seconds needed to read text at
// msPerChar milliseconds per character. A non-positive msPerChar selects
// the default pace.
func (s *Scorer) ReadingTimeWithSpeed(text string, msPerChar float64) float64 {
	return s.round(s.eng.ReadingTime(text, msPerChar))
}

// TextStandard returns the school grade a consensus of the grade-producing
// formulas assigns to text.
//
// Example:
//
//	grade := legible.New().TextStandard("The cat sat on the mat.")
func (s *Scorer) TextStandard(text string) float64 {
	return s.eng.TextStandard(text, s.opts.lang)
}

// TextStandardString returns the consensus grade band as text, such as
// "9th and 10th grade".
func (s *Scorer) TextStandardString(text string) string {
	grade := int(s.eng.TextStandard(text, s.opts.lang))
	return fmt.Sprintf("%s and %s grade", locale.Ordinal(grade), locale.Ordinal(grade+1))
}
