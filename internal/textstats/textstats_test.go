package textstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"banana", 3},
		{"the", 0},
		{"The", 0},
		{"rhythm", 1},
		{"bcd", 0},
		{"", 0},
		{"happy!", 2},
		{"reading", 2},
		{"education", 4},
		{"queue", 2},
		{"see", 1},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Syllables(tt.word))
		})
	}
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no delimiter", "just some words", 1},
		{"trailing delimiter", "One sentence.", 2},
		{"mixed", "The cat sat on the mat. It was happy!", 3},
		{"consecutive", "Wait... what?", 5},
		{"empty", "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountSentences(tt.text))
		})
	}
}

func TestCountCharacters(t *testing.T) {
	assert.Equal(t, 0, CountCharacters(""))
	assert.Equal(t, 0, CountCharacters(" \t "))
	assert.Equal(t, 5, CountCharacters("a b\tc d!"))
	assert.Equal(t, 4, CountCharacters("café"))
}

func TestCompute(t *testing.T) {
	got := Compute("The cat sat on the mat. It was happy!")
	assert.Equal(t, Stats{
		Words:         9,
		Sentences:     3,
		Characters:    29,
		Syllables:     8,
		Polysyllables: -1,
	}, got)
}

func TestComputeWhitespace(t *testing.T) {
	got := Compute("  leading   and trailing  ")
	assert.Equal(t, 3, got.Words)
	assert.Equal(t, 18, got.Characters)
}

func TestComputePolysyllables(t *testing.T) {
	got := Compute("Education transforms communities. Reading develops imagination!")
	assert.Equal(t, 6, got.Words)
	assert.Equal(t, 3, got.Sentences)
	assert.Equal(t, 58, got.Characters)
	assert.Equal(t, 20, got.Syllables)
	assert.Equal(t, 3, got.Polysyllables)
}

func TestComputeInvariants(t *testing.T) {
	texts := []string{
		"a",
		"One sentence.",
		"The quick brown fox jumps over the lazy dog because it wanted to reach the river before sunset. Everyone watched quietly from the hill.",
		"Internationalization considerations complicate implementation.",
	}
	for _, text := range texts {
		st := Compute(text)
		assert.GreaterOrEqual(t, st.Words, 1, text)
		assert.GreaterOrEqual(t, st.Sentences, 1, text)
		assert.GreaterOrEqual(t, st.Characters, 0, text)
		assert.LessOrEqual(t, st.Polysyllables, st.Words-1, text)
		assert.Equal(t, st, Compute(text), "compute must be deterministic")
	}
}

func TestComputeASCIIWhitespaceOnly(t *testing.T) {
	got := Compute("one\u00a0two three\u0085four\vfive")
	assert.Equal(t, 3, got.Words)
	assert.Equal(t, 21, got.Characters)
}
