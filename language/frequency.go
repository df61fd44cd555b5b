package language

import (
	"fmt"
	"math"
)

// FrequencyTable maps each letter 'a'..'z' (by index letter-'a') to its
// expected relative frequency.
type FrequencyTable [26]float64

// english holds letter frequencies of English prose.
var english = FrequencyTable{
	0.08167, // a
	0.01492, // b
	0.02782, // c
	0.04253, // d
	0.12702, // e
	0.02228, // f
	0.02015, // g
	0.06094, // h
	0.06966, // i
	0.00153, // j
	0.00772, // k
	0.04025, // l
	0.02406, // m
	0.06749, // n
	0.07507, // o
	0.01929, // p
	0.00095, // q
	0.05987, // r
	0.06327, // s
	0.09056, // t
	0.02758, // u
	0.00978, // v
	0.02360, // w
	0.00150, // x
	0.01974, // y
	0.00074, // z
}

// English returns a copy of the letter frequencies of English prose.
func English() FrequencyTable {
	return english
}

// Frequency returns the expected frequency of letter, which may be upper or
// lower case. Non-letters return 0.
func (t *FrequencyTable) Frequency(letter rune) float64 {
	switch {
	case letter >= 'a' && letter <= 'z':
		return t[letter-'a']
	case letter >= 'A' && letter <= 'Z':
		return t[letter-'A']
	}
	return 0
}

// Sum returns the total of all frequencies, roughly 1 for a valid table.
func (t *FrequencyTable) Sum() float64 {
	var sum float64
	for _, f := range t {
		sum += f
	}
	return sum
}

// Validate rejects tables with negative entries or an empty total.
func (t *FrequencyTable) Validate() error {
	for i, f := range t {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("frequency for %q is invalid: %v", rune('a'+i), f)
		}
	}
	if t.Sum() == 0 {
		return fmt.Errorf("frequency table is empty")
	}
	return nil
}
