// Package readability implements the readability formulas and maps their
// scores to reader age groups.
package readability

import "math"

// Automated Readability Index coefficients.
const (
	ariCharsPerWord     = 4.71
	ariWordsPerSentence = 0.5
	ariOffset           = 21.43
)

// Flesch–Kincaid grade level coefficients.
const (
	fkWordsPerSentence = 0.39
	fkSyllablesPerWord = 11.8
	fkOffset           = 15.59
)

// SMOG coefficients.
const (
	smogFactor     = 1.043
	smogSampleSize = 30.0
	smogOffset     = 3.1291
)

// Coleman–Liau coefficients.
const (
	clLetters   = 0.0588
	clSentences = 0.0296
	clOffset    = 15.8
	clPer       = 100.0
)

// ARI returns the Automated Readability Index.
func ARI(chars, words, sentences float64) float64 {
	return ariCharsPerWord*(chars/words) + ariWordsPerSentence*(words/sentences) - ariOffset
}

// FleschKincaid returns the Flesch–Kincaid grade level.
func FleschKincaid(words, sentences, syllables float64) float64 {
	return fkWordsPerSentence*(words/sentences) + fkSyllablesPerWord*(syllables/words) - fkOffset
}

// SMOG returns the Simple Measure of Gobbledygook grade. A negative
// polysyllable count yields NaN.
func SMOG(polysyllables, sentences float64) float64 {
	return smogFactor*math.Sqrt(polysyllables*(smogSampleSize/sentences)) + smogOffset
}

// ColemanLiau returns the Coleman–Liau index.
func ColemanLiau(chars, words, sentences float64) float64 {
	l := chars / words * clPer
	s := sentences / words * clPer
	return clLetters*l - clSentences*s - clOffset
}
