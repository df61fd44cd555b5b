package crack

import (
	"context"

	"github.com/opd-ai/xorbreak/language"
)

// BreakSingleByte recovers the single-byte XOR key of ciphertext by trying
// every printable ASCII key in ascending order and keeping the best
// language score. Ties keep the lower key. When no key yields valid UTF-8
// the result is NoSolution; callers must check Valid.
func BreakSingleByte(ciphertext []byte, scorer *language.Scorer) Candidate {
	return breakRange(ciphertext, PrintableASCII, scorer)
}

func breakRange(ciphertext []byte, keys KeyRange, scorer *language.Scorer) Candidate {
	winner := NoSolution()
	for i := 0; i < keys.Len(); i++ {
		if c := TryKey(ciphertext, keys.Key(i), scorer); c.Beats(winner) {
			winner = c
		}
	}
	return winner
}

// BreakSingleByte is the concurrent form of the package-level function over
// the analyzer's key range. All candidates are scored before an
// index-ordered reduction, so the result matches the sequential scan.
func (a *Analyzer) BreakSingleByte(ctx context.Context, ciphertext []byte) (Candidate, error) {
	log := newSearchLog("single_byte").withFields(PreviewFields("ciphertext", ciphertext))
	log.begin("keyspace search")

	keys := a.opts.KeyRange
	candidates := make([]Candidate, keys.Len())
	err := a.forEach(ctx, len(candidates), func(i int) error {
		candidates[i] = TryKey(ciphertext, keys.Key(i), a.scorer)
		return nil
	})
	if err != nil {
		log.failed(err, "score_keys").entry().Warn("Single-byte search aborted")
		return NoSolution(), err
	}

	winner, _ := best(candidates)
	if !winner.Valid {
		log.entry().Debug("No key produced valid text")
		return winner, nil
	}

	log.withFields(CandidateFields(winner)).entry().Debug("Single-byte key recovered")
	return winner, nil
}
