package crack

import (
	"math"

	"github.com/opd-ai/xorbreak/language"
	"github.com/opd-ai/xorbreak/xor"
)

// Candidate is a key together with the plaintext it produces and the
// plaintext's language score.
type Candidate struct {
	Key       byte
	Plaintext string
	Score     float64

	// Valid is false for the no-solution sentinel and for keys whose
	// output is not valid UTF-8.
	Valid bool
}

// NoSolution returns the sentinel reported when no key yields valid text:
// key 0, empty plaintext and a score of -Inf.
func NoSolution() Candidate {
	return Candidate{Score: math.Inf(-1)}
}

// Beats reports whether c strictly outscores other. Invalid candidates
// never win, and equal scores keep the earlier candidate.
func (c Candidate) Beats(other Candidate) bool {
	return c.Valid && c.Score > other.Score
}

// TryKey decrypts ciphertext with a single-byte key and scores the result.
// Output that is not valid UTF-8 yields an invalid candidate.
func TryKey(ciphertext []byte, key byte, scorer *language.Scorer) Candidate {
	plaintext, err := xor.Repeating(ciphertext, []byte{key})
	if err != nil {
		return Candidate{Key: key, Score: math.Inf(-1)}
	}
	score, ok := scorer.ScoreBytes(plaintext)
	if !ok {
		return Candidate{Key: key, Score: math.Inf(-1)}
	}
	return Candidate{
		Key:       key,
		Plaintext: string(plaintext),
		Score:     score,
		Valid:     true,
	}
}

// best reduces candidates in index order. It returns the winner and its
// index, or NoSolution and -1 when no candidate is valid.
func best(candidates []Candidate) (Candidate, int) {
	winner, index := NoSolution(), -1
	for i, c := range candidates {
		if c.Beats(winner) {
			winner, index = c, i
		}
	}
	return winner, index
}
