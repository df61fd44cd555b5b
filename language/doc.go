// Package language scores candidate plaintexts against an English
// character model.
//
// A [Scorer] compares three observed statistics of a text with what English
// prose of the same length would show:
//
//   - per-letter counts against a relative frequency table, [English] by default
//   - the number of whitespace runes against one separator per five-letter word
//   - the number of other runes (digits, punctuation) against one in twenty
//
// Each deviation is squared and weighted, and the score is the negated sum,
// so 0 is a perfect match and scores grow more negative as text looks less
// like English. There is no lower bound.
//
//	s := language.NewScorer(nil, language.DefaultWeights())
//	score, ok := s.ScoreBytes(candidate)
//	if !ok {
//	    // not valid UTF-8, cannot be plaintext
//	}
//
// Scorers are immutable and safe for concurrent use.
package language
