package score

import "math"

// freBucket maps a Flesch reading-ease score to its grade votes. The
// 60 to 70 band spans two school grades and contributes both.
func freBucket(score float64) []int {
	switch {
	case score < 100 && score >= 90:
		return []int{5}
	case score < 90 && score >= 80:
		return []int{6}
	case score < 80 && score >= 70:
		return []int{7}
	case score < 70 && score >= 60:
		return []int{8, 9}
	case score < 60 && score >= 50:
		return []int{10}
	case score < 50 && score >= 40:
		return []int{11}
	case score < 40 && score >= 30:
		return []int{12}
	default:
		return []int{13}
	}
}

// TextStandard runs the grade-producing ensemble and returns the
// consensus grade. Each formula contributes the floor and ceiling of
// its grade as two votes; the reading-ease score votes through the
// bucket table. The most frequent vote wins, with ties broken by the
// vote value seen first.
func (e *Engine) TextStandard(text, lang string) float64 {
	return e.cached(scoreKey{op: opTextStandard, text: text, lang: lang}, func() float64 {
		var votes []int
		add := func(v float64) {
			votes = append(votes, int(math.Floor(v)), int(math.Ceil(v)))
		}

		add(e.FleschKincaidGrade(text, lang))
		votes = append(votes, freBucket(e.FleschReadingEase(text, lang))...)
		add(e.SMOGIndex(text, lang))
		add(e.ColemanLiauIndex(text))
		add(e.AutomatedReadabilityIndex(text))
		add(e.DaleChallReadabilityScore(text, lang))
		add(e.LinsearWriteFormula(text, lang))
		add(e.GunningFog(text, lang))

		winner := mostCommon(votes)
		e.log.Debug().Str("lang", lang).Ints("votes", votes).Int("grade", winner).
			Msg("text standard consensus")
		return float64(winner)
	})
}

// mostCommon returns the most frequent vote; on equal counts, the vote
// whose first appearance came earliest.
func mostCommon(votes []int) int {
	counts := make(map[int]int, len(votes))
	first := make(map[int]int, len(votes))
	for i, v := range votes {
		if _, seen := counts[v]; !seen {
			first[v] = i
		}
		counts[v]++
	}

	best, bestCount, bestFirst := 0, 0, len(votes)
	for v, c := range counts {
		if c > bestCount || (c == bestCount && first[v] < bestFirst) {
			best, bestCount, bestFirst = v, c, first[v]
		}
	}
	return best
}
