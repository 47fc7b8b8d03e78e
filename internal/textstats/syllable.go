package textstats

import (
	"regexp"
	"strings"
)

var (
	vowelPair = regexp.MustCompile(`[aeiouy]{2}`)
	nonVowel  = regexp.MustCompile(`[^aeiouy]`)
)

// Syllables estimates the syllable count of a word by counting vowels after
// dropping a final "e" and merging adjacent vowel pairs.
func Syllables(word string) int {
	w := strings.ToLower(word)
	w = strings.TrimSuffix(w, "e")
	w = vowelPair.ReplaceAllString(w, "a")
	w = nonVowel.ReplaceAllString(w, "")
	return len(w)
}
