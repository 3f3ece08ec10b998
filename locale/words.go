package locale

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	_ "embed"
)

//go:embed data/easy_words.txt
var easyWordsData []byte

// WordList is an immutable word set with constant-time membership
// checks. Lookups are exact: lists are stored lowercase, and callers
// that want case folding must fold before asking.
type WordList struct {
	words map[string]struct{}
}

// NewWordList builds a word list from a slice of words.
func NewWordList(words []string) WordList {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return WordList{words: set}
}

// ParseWordList reads a word list with one word per line. Blank lines
// and lines starting with '#' are skipped; surrounding whitespace is
// trimmed.
func ParseWordList(r io.Reader) (WordList, error) {
	set := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return WordList{}, fmt.Errorf("read word list: %w", err)
	}
	return WordList{words: set}, nil
}

// Contains reports whether word is in the list.
func (l WordList) Contains(word string) bool {
	_, ok := l.words[word]
	return ok
}

// Len returns the number of words in the list.
func (l WordList) Len() int {
	return len(l.words)
}

var (
	easyOnce sync.Once
	easySet  WordList
)

// EasyWords returns the embedded familiar-word list consumed by the
// Dale-Chall and Spache formulas.
func EasyWords() WordList {
	easyOnce.Do(func() {
		list, err := ParseWordList(bytes.NewReader(easyWordsData))
		if err != nil {
			panic("locale: malformed embedded easy_words.txt: " + err.Error())
		}
		easySet = list
	})
	return easySet
}
