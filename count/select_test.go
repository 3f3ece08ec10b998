package count

import (
	"testing"

	"github.com/tsawler/legible/syllable"
)

// testWordSet is a minimal WordSet for the difficult-word tests.
type testWordSet map[string]struct{}

func (s testWordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func newTestWordSet(words ...string) testWordSet {
	s := make(testWordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func TestPolysyllableWords(t *testing.T) {
	en := syllable.NewHeuristic("en")

	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"none", "The cat sat on the mat.", 0},
		{"two polysyllables", "Generosity helps. Information flows. The cat sleeps.", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolysyllableWords(tt.text, en); got != tt.want {
				t.Errorf("PolysyllableWords(%q) = %d; want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestMonosyllableWords(t *testing.T) {
	en := syllable.NewHeuristic("en")

	if got := MonosyllableWords("The cat sat on the mat", en); got != 6 {
		t.Errorf("MonosyllableWords = %d; want 6", got)
	}
	if got := MonosyllableWords("A beautiful morning", en); got != 1 {
		t.Errorf("MonosyllableWords = %d; want 1", got)
	}
}

func TestMiniwords(t *testing.T) {
	text := "The cat sat on the mat today"
	if got := Miniwords(text, 3); got != 6 {
		t.Errorf("Miniwords(3) = %d; want 6", got)
	}
	// Non-positive sizes select the default of 3.
	if got := Miniwords(text, 0); got != 6 {
		t.Errorf("Miniwords(0) = %d; want 6", got)
	}
}

func TestLongWords(t *testing.T) {
	text := "extraordinary effort beats strength always"
	if got := LongWords(text, 6); got != 2 {
		t.Errorf("LongWords(6) = %d; want 2", got)
	}
	if got := LongWords(text, 0); got != 2 {
		t.Errorf("LongWords(0) = %d; want 2", got)
	}
	if got := LongWords(text, 12); got != 1 {
		t.Errorf("LongWords(12) = %d; want 1", got)
	}
}

func TestIsDifficultWord(t *testing.T) {
	en := syllable.NewHeuristic("en")
	easy := newTestWordSet("the", "cat", "water")

	tests := []struct {
		name      string
		word      string
		threshold int
		want      bool
	}{
		{"easy word", "cat", 2, false},
		{"out of list polysyllabic", "infrastructure", 2, true},
		{"capitalized misses list", "The", 0, true},
		{"capitalized under threshold", "The", 2, false},
		{"short out of list", "dry", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDifficultWord(tt.word, en, easy, tt.threshold)
			if got != tt.want {
				t.Errorf("IsDifficultWord(%q, %d) = %v; want %v",
					tt.word, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestDifficultWords(t *testing.T) {
	en := syllable.NewHeuristic("en")
	easy := newTestWordSet("build", "test")
	text := "Engineers build infrastructure. Engineers test infrastructure."

	if got := DifficultWords(text, en, easy, 2, false); got != 4 {
		t.Errorf("DifficultWords(unique=false) = %d; want 4", got)
	}
	if got := DifficultWords(text, en, easy, 2, true); got != 2 {
		t.Errorf("DifficultWords(unique=true) = %d; want 2", got)
	}
}

func TestListDifficultWords(t *testing.T) {
	en := syllable.NewHeuristic("en")
	easy := newTestWordSet("build", "test")
	text := "Engineers build infrastructure. Engineers test infrastructure."

	got := ListDifficultWords(text, en, easy, 2)
	want := []string{"Engineers", "infrastructure"}
	if len(got) != len(want) {
		t.Fatalf("ListDifficultWords = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListDifficultWords = %v; want %v", got, want)
		}
	}
}
