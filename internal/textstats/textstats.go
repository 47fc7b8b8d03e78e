// Package textstats derives word, sentence, character, and syllable counts from text.
package textstats

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// polysyllableMin is the syllable count a word must exceed to be a polysyllable.
const polysyllableMin = 2

var sentenceDelims = regexp.MustCompile(`[.?!]`)

// Stats holds the counts derived from a single block of text.
type Stats struct {
	Words      int `json:"words" yaml:"words"`
	Sentences  int `json:"sentences" yaml:"sentences"`
	Characters int `json:"characters" yaml:"characters"`
	Syllables  int `json:"syllables" yaml:"syllables"`
	// Polysyllables is one less than the number of words with more than two
	// syllables, so it is -1 for text without any.
	Polysyllables int `json:"polysyllables" yaml:"polysyllables"`
}

// Compute derives all counts from text.
func Compute(text string) Stats {
	words := strings.FieldsFunc(text, isSpace)
	st := Stats{
		Words:      len(words),
		Sentences:  CountSentences(text),
		Characters: CountCharacters(text),
	}
	poly := 0
	for _, word := range words {
		n := Syllables(word)
		st.Syllables += n
		if n > polysyllableMin {
			poly++
		}
	}
	st.Polysyllables = poly - 1
	return st
}

// CountSentences splits on '.', '?' and '!' and counts every resulting
// segment, empty ones included. A trailing delimiter therefore adds a
// sentence, and text without any delimiter is one sentence.
func CountSentences(text string) int {
	return len(sentenceDelims.Split(text, -1))
}

// CountCharacters counts runes that are not ASCII whitespace.
func CountCharacters(text string) int {
	n := 0
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		if !isSpace(r) {
			n++
		}
	}
	return n
}

// isSpace matches ASCII whitespace only, so a no-break space joins words.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
