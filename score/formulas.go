package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/tsawler/legible/count"
	"github.com/tsawler/legible/locale"
)

// DefaultMSPerChar is the per-character reading latency in milliseconds
// used by [Engine.ReadingTime] (Demberg & Keller, 2008).
const DefaultMSPerChar = 14.69

func (e *Engine) cached(key scoreKey, compute func() float64) float64 {
	return e.scores.Do(key, compute)
}

// round2 rounds half away from zero at two decimals.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// FleschReadingEase scores text on the Flesch reading-ease scale,
// higher meaning easier. The base and coefficients come from the
// language's constants table; Spanish and Italian scale the
// syllables-per-word ratio by an interval of 100.
func (e *Engine) FleschReadingEase(text, lang string) float64 {
	return e.cached(scoreKey{op: opFleschReadingEase, text: text, lang: lang}, func() float64 {
		if e.Words(text, true, true) == 0 {
			return 0
		}
		c := locale.ConstantsFor(lang)
		asl := e.AvgSentenceLength(text)
		spw := e.AvgSyllablesPerWord(text, lang, c.FRESyllableInterval)
		return c.FREBase - c.FRESentenceLength*asl - c.FRESyllablesPerWord*spw
	})
}

// FleschKincaidGrade maps text onto a US school grade level.
func (e *Engine) FleschKincaidGrade(text, lang string) float64 {
	return e.cached(scoreKey{op: opFleschKincaidGrade, text: text, lang: lang}, func() float64 {
		if e.Words(text, true, true) == 0 {
			return 0
		}
		asl := e.AvgSentenceLength(text)
		spw := e.AvgSyllablesPerWord(text, lang, 0)
		return 0.39*asl + 11.8*spw - 15.59
	})
}

// SMOGIndex estimates the grade needed to understand text. Texts under
// three sentences score 0; the underlying model is unreliable on
// shorter samples.
func (e *Engine) SMOGIndex(text, lang string) float64 {
	return e.cached(scoreKey{op: opSMOGIndex, text: text, lang: lang}, func() float64 {
		sentences := e.Sentences(text)
		if sentences < 3 {
			return 0
		}
		poly := e.PolysyllableWords(text, lang)
		return 1.043*math.Sqrt(30*float64(poly)/float64(sentences)) + 3.1291
	})
}

// ColemanLiauIndex grades text from letters and sentences per word,
// both scaled to a 100-word sample and rounded to two decimals before
// the coefficients apply.
func (e *Engine) ColemanLiauIndex(text string) float64 {
	return e.cached(scoreKey{op: opColemanLiauIndex, text: text}, func() float64 {
		if e.Words(text, true, true) == 0 {
			return 0
		}
		l := round2(e.AvgLettersPerWord(text) * 100)
		s := round2(e.AvgSentencesPerWord(text) * 100)
		return 0.058*l - 0.296*s - 15.8
	})
}

// AutomatedReadabilityIndex grades text from characters per word and
// words per sentence.
func (e *Engine) AutomatedReadabilityIndex(text string) float64 {
	return e.cached(scoreKey{op: opAutomatedReadabilityIndex, text: text}, func() float64 {
		words := e.Words(text, true, true)
		if words == 0 {
			return 0
		}
		a := float64(e.Chars(text, true)) / float64(words)
		b := float64(words) / float64(e.Sentences(text))
		return 4.71*a + 0.5*b - 21.43
	})
}

// DaleChallReadabilityScore applies the original Dale-Chall formula.
// Every word missing from the easy list counts as difficult here, with
// no syllable cutoff.
func (e *Engine) DaleChallReadabilityScore(text, lang string) float64 {
	return e.cached(scoreKey{op: opDaleChall, text: text, lang: lang}, func() float64 {
		words := e.Words(text, true, true)
		if words == 0 {
			return 0
		}
		difficult := e.DifficultWords(text, lang, 0, false)
		easyPct := float64(words-difficult) / float64(words) * 100
		difficultPct := 100 - easyPct
		score := 0.1579*difficultPct + 0.0496*e.AvgSentenceLength(text)
		if difficultPct > 5 {
			score += 3.6365
		}
		return score
	})
}

// DaleChallReadabilityScoreV2 applies the revised Dale-Chall formula,
// counting only out-of-list words of at least two syllables.
func (e *Engine) DaleChallReadabilityScoreV2(text, lang string) float64 {
	return e.cached(scoreKey{op: opDaleChallV2, text: text, lang: lang}, func() float64 {
		words := e.Words(text, true, true)
		if words == 0 {
			return 0
		}
		pdw := float64(e.DifficultWords(text, lang, 2, false)) / float64(words) * 100
		score := 0.1579*pdw + 0.0496*e.AvgSentenceLength(text)
		if pdw > 5 {
			score += 3.6365
		}
		return score
	})
}

// LinsearWriteFormula grades the first hundred words of text, weighting
// words of three or more syllables triple. An empty sample comes out at
// -1 rather than 0, the fixed adjustment having nothing to offset.
func (e *Engine) LinsearWriteFormula(text, lang string) float64 {
	return e.cached(scoreKey{op: opLinsearWrite, text: text, lang: lang}, func() float64 {
		sample := strings.Fields(text)
		if len(sample) > 100 {
			sample = sample[:100]
		}
		counter := counterFor(lang)
		points := 0.0
		for _, w := range sample {
			if counter.Word(w) < 3 {
				points++
			} else {
				points += 3
			}
		}
		number := points / float64(e.Sentences(strings.Join(sample, " ")))
		if number <= 20 {
			number -= 2
		}
		return number / 2
	})
}

// GunningFog estimates the grade level from sentence length and the
// share of complex words, complex meaning off-list words at or above
// the language's syllable threshold.
func (e *Engine) GunningFog(text, lang string) float64 {
	return e.cached(scoreKey{op: opGunningFog, text: text, lang: lang}, func() float64 {
		words := e.Words(text, true, true)
		if words == 0 {
			return 0
		}
		threshold := locale.ConstantsFor(lang).SyllableThreshold
		pdw := float64(e.DifficultWords(text, lang, threshold, false)) / float64(words) * 100
		return 0.4 * (e.AvgSentenceLength(text) + pdw)
	})
}

// LIX sums words per sentence and the percentage of words longer than
// six characters.
func (e *Engine) LIX(text string) float64 {
	return e.cached(scoreKey{op: opLIX, text: text}, func() float64 {
		words := e.Words(text, true, true)
		if words == 0 {
			return 0
		}
		long := e.LongWords(text, count.DefaultLongWordLength)
		return e.AvgSentenceLength(text) + float64(long)*100/float64(words)
	})
}

// RIX is the long-word count per sentence.
func (e *Engine) RIX(text string) float64 {
	return e.cached(scoreKey{op: opRIX, text: text}, func() float64 {
		long := e.LongWords(text, count.DefaultLongWordLength)
		return float64(long) / float64(e.Sentences(text))
	})
}

// SpacheReadability grades primary-school text against the easy-word
// list.
func (e *Engine) SpacheReadability(text, lang string) float64 {
	return e.cached(scoreKey{op: opSpache, text: text, lang: lang}, func() float64 {
		words := e.Words(text, true, true)
		if words == 0 {
			return 0
		}
		pdw := float64(e.DifficultWords(text, lang, 2, false)) / float64(words) * 100
		return 0.141*e.AvgSentenceLength(text) + 0.086*pdw + 0.839
	})
}

// FernandezHuerta is the Spanish adaptation of the Flesch reading-ease
// scale.
func (e *Engine) FernandezHuerta(text, lang string) float64 {
	return e.cached(scoreKey{op: opFernandezHuerta, text: text, lang: lang}, func() float64 {
		if e.Words(text, true, true) == 0 {
			return 0
		}
		return 206.84 - 60*e.AvgSyllablesPerWord(text, lang, 0) - 1.02*e.AvgSentenceLength(text)
	})
}

// SzigrisztPazos scores Spanish text on the perspicuity scale.
func (e *Engine) SzigrisztPazos(text, lang string) float64 {
	return e.cached(scoreKey{op: opSzigrisztPazos, text: text, lang: lang}, func() float64 {
		words := e.Words(text, true, true)
		if words == 0 {
			return 0
		}
		c := locale.ConstantsFor(lang)
		syll := float64(e.Syllables(text, lang))
		return c.FREBase - 62.3*(syll/float64(words)) - float64(words)/float64(e.Sentences(text))
	})
}

// GutierrezPolini scores Spanish school text on a comprehensibility
// scale of roughly 0 to 100.
func (e *Engine) GutierrezPolini(text string) float64 {
	return e.cached(scoreKey{op: opGutierrezPolini, text: text}, func() float64 {
		if e.Words(text, true, true) == 0 {
			return 0
		}
		return 95.2 - 9.7*e.AvgCharsPerWord(text) - 0.35*e.AvgSentenceLength(text)
	})
}

// Crawford estimates the years of schooling needed for Spanish text.
func (e *Engine) Crawford(text, lang string) float64 {
	return e.cached(scoreKey{op: opCrawford, text: text, lang: lang}, func() float64 {
		words := e.Words(text, true, true)
		if words == 0 {
			return 0
		}
		sentPer100 := 100 * float64(e.Sentences(text)) / float64(words)
		syllPer100 := 100 * float64(e.Syllables(text, lang)) / float64(words)
		return -0.205*sentPer100 + 0.049*syllPer100 - 3.407
	})
}

// Osman scores Arabic text, folding syllable weight, word complexity,
// long words and classical style into one difficulty rate.
func (e *Engine) Osman(text string) float64 {
	return e.cached(scoreKey{op: opOsman, text: text}, func() float64 {
		words := e.Words(text, true, true)
		if words == 0 {
			return 0
		}
		w := float64(words)
		rate := (float64(e.ComplexArabicWords(text)) +
			float64(e.ArabicSyllables(text)) +
			float64(e.Faseeh(text)) +
			float64(e.ArabicLongWords(text))) / w
		return 200.791 - 1.015*(w/float64(e.Sentences(text))) - 24.181*rate
	})
}

// Gulpease scores Italian text, higher meaning easier.
func (e *Engine) Gulpease(text string) float64 {
	return e.cached(scoreKey{op: opGulpease, text: text}, func() float64 {
		words := e.Words(text, true, true)
		if words == 0 {
			return 0
		}
		chars := float64(e.Chars(text, true))
		return (300*float64(e.Sentences(text))-10*chars)/float64(words) + 89
	})
}

// WienerSachtextformel grades German nonfiction on one of the four
// formula variants. Variants outside 1 through 4 are an error.
func (e *Engine) WienerSachtextformel(text string, variant int, lang string) (float64, error) {
	if variant < 1 || variant > 4 {
		return 0, fmt.Errorf("wiener sachtextformel: variant %d out of range 1..4", variant)
	}
	v := e.cached(scoreKey{op: opWiener, text: text, lang: lang, variant: uint8(variant)}, func() float64 {
		words := e.Words(text, true, true)
		if words == 0 {
			return 0
		}
		w := float64(words)
		ms := 100 * float64(e.PolysyllableWords(text, lang)) / w
		sl := w / float64(e.Sentences(text))
		iw := 100 * float64(e.LongWords(text, count.DefaultLongWordLength)) / w
		es := 100 * float64(e.MonosyllableWords(text, lang)) / w
		switch variant {
		case 1:
			return 0.1935*ms + 0.1672*sl + 0.1297*iw - 0.0327*es - 0.875
		case 2:
			return 0.2007*ms + 0.1682*sl + 0.1373*iw - 2.779
		case 3:
			return 0.2963*ms + 0.1905*sl - 1.1144
		default:
			return 0.2744*ms + 0.2656*sl - 1.693
		}
	})
	return v, nil
}

// McAlpineEFLAW estimates reading ease for learners of English from
// sentence length and miniword density.
func (e *Engine) McAlpineEFLAW(text string) float64 {
	return e.cached(scoreKey{op: opMcAlpineEFLAW, text: text}, func() float64 {
		words := e.Words(text, true, true)
		if words == 0 {
			return 0
		}
		mini := e.Miniwords(text, count.DefaultMiniwordSize)
		return float64(words+mini) / float64(e.Sentences(text))
	})
}

// ReadingTime estimates the seconds needed to read text at msPerChar
// milliseconds per character. A non-positive msPerChar selects
// [DefaultMSPerChar].
func (e *Engine) ReadingTime(text string, msPerChar float64) float64 {
	if msPerChar <= 0 {
		msPerChar = DefaultMSPerChar
	}
	return e.reading.Do(readingKey{text, msPerChar}, func() float64 {
		ms := 0.0
		for _, w := range strings.Fields(text) {
			ms += float64(len([]rune(w))) * msPerChar
		}
		return ms / 1000
	})
}
