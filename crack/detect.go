package crack

import (
	"context"
	"fmt"

	"github.com/opd-ai/xorbreak/codec"
)

// LineResult is the best line of a corpus.
type LineResult struct {
	Candidate

	// Index is the zero-based line number, or -1 when no line produced
	// valid text.
	Index int
}

// DetectLine finds the line of a hex corpus that was encrypted with
// single-byte XOR, using DefaultOptions.
func DetectLine(ctx context.Context, lines []string) (LineResult, error) {
	a, err := NewAnalyzer(nil)
	if err != nil {
		return LineResult{}, err
	}
	return a.DetectLine(ctx, lines)
}

// DetectLine hex decodes every line, breaks each one with the single-byte
// recoverer and returns the highest scoring line. Earlier lines win ties.
//
// A line that is not valid hex aborts the scan with an error wrapping
// codec.ErrMalformedInput, unless SkipMalformed is set, in which case the
// line is logged and ignored. Empty lines carry no ciphertext and are always
// ignored.
func (a *Analyzer) DetectLine(ctx context.Context, lines []string) (LineResult, error) {
	log := newSearchLog("detect_line").with("lines", len(lines))
	log.begin("corpus scan")

	ciphertexts := make([][]byte, len(lines))
	skipped := make([]bool, len(lines))
	for i, line := range lines {
		ct, err := codec.DecodeHex(line)
		if err != nil {
			if !a.opts.SkipMalformed {
				return LineResult{Candidate: NoSolution(), Index: -1}, fmt.Errorf("line %d: %w", i, err)
			}
			newSearchLog("detect_line").failed(err, "decode").with("line", i).
				entry().Warn("Skipping malformed line")
			skipped[i] = true
			continue
		}
		if len(ct) == 0 {
			newSearchLog("detect_line").with("line", i).entry().Debug("Skipping empty line")
			skipped[i] = true
			continue
		}
		ciphertexts[i] = ct
	}

	candidates := make([]Candidate, len(lines))
	err := a.forEach(ctx, len(lines), func(i int) error {
		if skipped[i] {
			candidates[i] = NoSolution()
			return nil
		}
		candidates[i] = breakRange(ciphertexts[i], a.opts.KeyRange, a.scorer)
		return nil
	})
	if err != nil {
		return LineResult{Candidate: NoSolution(), Index: -1}, err
	}

	winner, index := best(candidates)
	if index < 0 {
		log.entry().Info("No line produced valid text")
		return LineResult{Candidate: winner, Index: -1}, nil
	}

	log.withFields(CandidateFields(winner)).with("index", index).
		entry().Info("Single-byte XOR line detected")
	return LineResult{Candidate: winner, Index: index}, nil
}
