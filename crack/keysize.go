package crack

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/opd-ai/xorbreak/xor"
)

// ErrCiphertextTooShort is returned when no keysize in range has four full
// blocks of ciphertext.
var ErrCiphertextTooShort = errors.New("ciphertext too short")

// KeysizeResult is a candidate repeating key length and its normalized
// Hamming distance.
type KeysizeResult struct {
	Keysize  int
	Distance float64
}

// NormalizedDistance compares the first four keysize-byte blocks of
// ciphertext: (d(b0,b1) + d(b2,b3)) / (2*keysize). Correct key lengths
// align identical key bytes and so tend to give lower distances.
func NormalizedDistance(ciphertext []byte, keysize int) (float64, error) {
	if keysize < 1 {
		return 0, fmt.Errorf("%w: keysize must be positive, got %d", ErrInvalidOptions, keysize)
	}
	// Compared by division so huge keysizes cannot overflow.
	if keysize > len(ciphertext)/4 {
		return 0, fmt.Errorf("keysize %d needs four blocks, have %d bytes: %w",
			keysize, len(ciphertext), ErrCiphertextTooShort)
	}

	block := func(i int) []byte {
		return ciphertext[i*keysize : (i+1)*keysize]
	}
	d1, err := xor.HammingDistance(block(0), block(1))
	if err != nil {
		return 0, err
	}
	d2, err := xor.HammingDistance(block(2), block(3))
	if err != nil {
		return 0, err
	}
	return float64(d1+d2) / float64(2*keysize), nil
}

// RankKeysizes returns every keysize in [minSize, maxSize] that fits the
// ciphertext, ordered by ascending distance. Equal distances keep the
// smaller keysize first.
func RankKeysizes(ciphertext []byte, minSize, maxSize int) ([]KeysizeResult, error) {
	if minSize < 1 || maxSize < minSize {
		return nil, fmt.Errorf("%w: keysize range %d-%d", ErrInvalidOptions, minSize, maxSize)
	}

	var ranked []KeysizeResult
	for k := minSize; k <= maxSize; k++ {
		d, err := NormalizedDistance(ciphertext, k)
		if errors.Is(err, ErrCiphertextTooShort) {
			// Larger keysizes cannot fit either.
			break
		}
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, KeysizeResult{Keysize: k, Distance: d})
	}
	if len(ranked) == 0 {
		return nil, fmt.Errorf("estimate keysize over %d bytes: %w", len(ciphertext), ErrCiphertextTooShort)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked, nil
}

// EstimateKeysize returns the keysize in [minSize, maxSize] with the lowest
// normalized distance. Ties favor the smallest keysize.
func EstimateKeysize(ciphertext []byte, minSize, maxSize int) (KeysizeResult, error) {
	if minSize < 1 || maxSize < minSize {
		return KeysizeResult{}, fmt.Errorf("%w: keysize range %d-%d", ErrInvalidOptions, minSize, maxSize)
	}

	result := KeysizeResult{Distance: math.Inf(1)}
	for k := minSize; k <= maxSize; k++ {
		d, err := NormalizedDistance(ciphertext, k)
		if errors.Is(err, ErrCiphertextTooShort) {
			break
		}
		if err != nil {
			return KeysizeResult{}, err
		}
		if d < result.Distance {
			result = KeysizeResult{Keysize: k, Distance: d}
		}
	}
	if result.Keysize == 0 {
		return KeysizeResult{}, fmt.Errorf("estimate keysize over %d bytes: %w", len(ciphertext), ErrCiphertextTooShort)
	}
	return result, nil
}

// EstimateKeysize estimates the repeating key length over the analyzer's
// keysize range.
func (a *Analyzer) EstimateKeysize(ciphertext []byte) (KeysizeResult, error) {
	result, err := EstimateKeysize(ciphertext, a.opts.MinKeysize, a.opts.MaxKeysize)
	if err != nil {
		return KeysizeResult{}, err
	}
	newSearchLog("estimate_keysize").withFields(KeysizeFields(result)).entry().Debug("Keysize estimated")
	return result, nil
}

// Columns splits ciphertext into keysize columns: column j holds every byte
// whose position is j modulo keysize, so each column was encrypted with a
// single key byte. A non-positive keysize returns nil.
func Columns(ciphertext []byte, keysize int) [][]byte {
	if keysize < 1 {
		return nil
	}
	columns := make([][]byte, keysize)
	for j := range columns {
		columns[j] = make([]byte, 0, (len(ciphertext)+keysize-1-j)/keysize)
	}
	for p, b := range ciphertext {
		columns[p%keysize] = append(columns[p%keysize], b)
	}
	return columns
}
