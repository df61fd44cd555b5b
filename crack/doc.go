// Package crack recovers unknown XOR keys from ciphertext.
//
// This package builds on the xor primitives and the language scorer to
// implement the statistical key recovery searches.
//
// # Single-Byte Keys
//
// [BreakSingleByte] tries every printable ASCII key (0x20 to 0x7e), discards
// outputs that are not valid UTF-8, and keeps the best language score. Ties
// keep the earlier key, so the result is deterministic:
//
//	scorer := language.NewScorer(nil, language.DefaultWeights())
//	c := crack.BreakSingleByte(ciphertext, scorer)
//	if !c.Valid {
//	    // no key produced text
//	}
//	fmt.Printf("key %q: %s\n", c.Key, c.Plaintext)
//
// # Detecting the Encrypted Line
//
// [Analyzer.DetectLine] breaks every line of a hex corpus and returns the
// line whose best candidate scores highest:
//
//	a, _ := crack.NewAnalyzer(crack.DefaultOptions())
//	res, err := a.DetectLine(ctx, lines)
//	// res.Index is -1 when nothing decoded
//
// # Repeating Keys
//
// [EstimateKeysize] picks the key length whose first four blocks have the
// lowest normalized Hamming distance. [Columns] transposes the ciphertext
// so every column shares one key byte, and [Analyzer.BreakRepeatingKey]
// chains the two with the single-byte search:
//
//	res, err := a.BreakRepeatingKey(ctx, ciphertext)
//	fmt.Printf("key %q\n", res.Key)
//
// # Concurrency
//
// Analyzer methods score candidates on up to Options.Workers goroutines.
// Every worker fills its own slot and the slots are reduced in index order
// with strict comparisons, so concurrent and sequential runs return the
// same result. Package-level functions run sequentially.
//
// # Logging
//
// Progress is logged through logrus: searches at debug level, recovered
// results at info level, skipped corpus lines at warn level. Recovered
// keys are only logged as short hex previews.
package crack
