package crack

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/opd-ai/xorbreak/xor"
)

// ErrNoValidDecoding is returned when a ciphertext column has no key that
// decodes to valid text.
var ErrNoValidDecoding = errors.New("no valid decoding")

// RepeatingKeyResult is a recovered repeating XOR key.
type RepeatingKeyResult struct {
	Keysize   int
	Distance  float64
	Key       []byte
	Plaintext string
	Score     float64
}

// BreakRepeatingKey recovers a repeating XOR key using DefaultOptions.
func BreakRepeatingKey(ctx context.Context, ciphertext []byte) (RepeatingKeyResult, error) {
	a, err := NewAnalyzer(nil)
	if err != nil {
		return RepeatingKeyResult{}, err
	}
	return a.BreakRepeatingKey(ctx, ciphertext)
}

// BreakRepeatingKey ranks keysizes by normalized Hamming distance and, for
// each of the best KeysizeCandidates, breaks every column with the
// single-byte recoverer. The keysize whose decryption scores highest wins;
// ties keep the better-ranked keysize.
func (a *Analyzer) BreakRepeatingKey(ctx context.Context, ciphertext []byte) (RepeatingKeyResult, error) {
	log := newSearchLog("repeating_key").with("ciphertext_size", len(ciphertext))
	log.begin("keysize ranking")

	ranked, err := RankKeysizes(ciphertext, a.opts.MinKeysize, a.opts.MaxKeysize)
	if err != nil {
		log.failed(err, "rank_keysizes").entry().Warn("Keysize estimation failed")
		return RepeatingKeyResult{}, err
	}
	if len(ranked) > a.opts.KeysizeCandidates {
		ranked = ranked[:a.opts.KeysizeCandidates]
	}

	winner := RepeatingKeyResult{Score: math.Inf(-1)}
	var lastErr error
	for _, k := range ranked {
		result, err := a.BreakRepeatingKeyWithKeysize(ctx, ciphertext, k.Keysize)
		if err != nil {
			if errors.Is(err, ErrNoValidDecoding) {
				lastErr = err
				continue
			}
			return RepeatingKeyResult{}, err
		}
		result.Distance = k.Distance
		if result.Score > winner.Score {
			winner = result
		}
	}
	if winner.Key == nil {
		return RepeatingKeyResult{}, lastErr
	}

	log.withFields(
		PreviewFields("key", winner.Key),
		KeysizeFields(KeysizeResult{Keysize: winner.Keysize, Distance: winner.Distance}),
	).entry().Info("Repeating key recovered")
	return winner, nil
}

// BreakRepeatingKeyWithKeysize recovers a key of known length. Columns are
// broken concurrently and reassembled by position.
func (a *Analyzer) BreakRepeatingKeyWithKeysize(ctx context.Context, ciphertext []byte, keysize int) (RepeatingKeyResult, error) {
	if keysize < 1 {
		return RepeatingKeyResult{}, fmt.Errorf("%w: keysize must be positive, got %d", ErrInvalidOptions, keysize)
	}
	if len(ciphertext) < keysize {
		return RepeatingKeyResult{}, fmt.Errorf("keysize %d exceeds %d bytes: %w", keysize, len(ciphertext), ErrCiphertextTooShort)
	}

	columns := Columns(ciphertext, keysize)
	solved := make([]Candidate, len(columns))
	err := a.forEach(ctx, len(columns), func(i int) error {
		solved[i] = breakRange(columns[i], a.opts.KeyRange, a.scorer)
		if !solved[i].Valid {
			return fmt.Errorf("keysize %d column %d: %w", keysize, i, ErrNoValidDecoding)
		}
		return nil
	})
	if err != nil {
		return RepeatingKeyResult{}, err
	}

	key := make([]byte, keysize)
	for i, c := range solved {
		key[i] = c.Key
	}
	plaintext, err := xor.Repeating(ciphertext, key)
	if err != nil {
		return RepeatingKeyResult{}, err
	}

	// Every column decoded, but the interleaved whole may still split a
	// multi-byte rune; such a key cannot be plaintext.
	score, ok := a.scorer.ScoreBytes(plaintext)
	if !ok {
		return RepeatingKeyResult{}, fmt.Errorf("keysize %d: %w", keysize, ErrNoValidDecoding)
	}

	return RepeatingKeyResult{
		Keysize:   keysize,
		Key:       key,
		Plaintext: string(plaintext),
		Score:     score,
	}, nil
}
