// Package codec converts between hexadecimal text, base64 text and raw
// byte buffers.
//
// Every function is pure and returns a freshly allocated result. Decoding
// malformed hex text fails with an error wrapping [ErrMalformedInput]; the
// Must variants panic instead and are meant for fixed literals:
//
//	ct, err := codec.DecodeHex("1b37373331363f78")
//	if errors.Is(err, codec.ErrMalformedInput) {
//	    // reject the input
//	}
//
//	b64, _ := codec.HexToBase64("49276d206b696c6c696e67")
//	// b64 == "SSdtIGtpbGxpbmc="
//
// Corpora of one hex ciphertext per line are read with [ReadHexLines]. The
// lines are returned undecoded so callers decide whether a malformed line
// aborts the whole corpus or is skipped.
package codec
