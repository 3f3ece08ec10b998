package locale

import "strconv"

// GradeSuffix returns the English ordinal suffix for a grade number:
// "st", "nd", "rd" or "th". The teens 11 through 13 take "th".
func GradeSuffix(grade int) string {
	switch grade % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch grade % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// Ordinal formats a grade number with its suffix, e.g. "2nd".
func Ordinal(grade int) string {
	return strconv.Itoa(grade) + GradeSuffix(grade)
}
