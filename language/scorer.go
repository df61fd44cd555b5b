package language

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"
)

const (
	// averageWordLength is the mean English word length used to predict
	// the number of separators: k words take 5k + (k-1) runes.
	averageWordLength = 5

	// otherRatio is the expected share of runes that are neither letters
	// nor whitespace.
	otherRatio = 1.0 / 20.0
)

// Weights scales the squared error of each character class.
type Weights struct {
	Alpha      float64
	Whitespace float64
	Other      float64
}

// DefaultWeights returns the reference weights.
func DefaultWeights() Weights {
	return Weights{
		Alpha:      0.1,
		Whitespace: 2.0,
		Other:      2.0,
	}
}

// Validate rejects negative, infinite or NaN weights.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"alpha":      w.Alpha,
		"whitespace": w.Whitespace,
		"other":      w.Other,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("invalid %s weight: %v", name, v)
		}
	}
	return nil
}

// Scorer rates how plausible a text is as English.
type Scorer struct {
	table   FrequencyTable
	weights Weights
}

// NewScorer returns a scorer over a copy of table. A nil table selects
// English.
func NewScorer(table *FrequencyTable, weights Weights) *Scorer {
	s := &Scorer{table: english, weights: weights}
	if table != nil {
		s.table = *table
	}
	return s
}

// Table returns a copy of the frequency table the scorer uses.
func (s *Scorer) Table() FrequencyTable {
	return s.table
}

// Weights returns the weights the scorer was built with.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Counts is the character class breakdown of a text.
type Counts struct {
	Letters    [26]int
	Alpha      int
	Whitespace int
	Other      int
	Total      int
}

// Classify counts the runes of text by class after case folding.
func Classify(text string) Counts {
	var c Counts
	for _, r := range text {
		c.Total++
		r = unicode.ToLower(r)
		switch {
		case r >= 'a' && r <= 'z':
			c.Letters[r-'a']++
			c.Alpha++
		case unicode.IsSpace(r):
			c.Whitespace++
		default:
			c.Other++
		}
	}
	return c
}

// Score returns the plausibility of text; 0 is best and lower is worse.
func (s *Scorer) Score(text string) float64 {
	c := Classify(text)
	length := float64(c.Total)

	var alphaErr float64
	for i, f := range s.table {
		d := f*float64(c.Alpha) - float64(c.Letters[i])
		alphaErr += s.weights.Alpha * d * d
	}

	d := length/(averageWordLength+1) - 1 - float64(c.Whitespace)
	wsErr := s.weights.Whitespace * d * d

	d = length*otherRatio - float64(c.Other)
	otherErr := s.weights.Other * d * d

	return -(alphaErr + wsErr + otherErr)
}

// ScoreBytes scores b as UTF-8 text. The boolean is false, and the score
// -Inf, when b is not valid UTF-8.
func (s *Scorer) ScoreBytes(b []byte) (float64, bool) {
	if !utf8.Valid(b) {
		return math.Inf(-1), false
	}
	return s.Score(string(b)), true
}
