// Package xor implements raw XOR primitives: fixed-length XOR of two
// buffers, repeating-key XOR, and the Hamming distance used to estimate
// repeating key lengths.
//
// # Buffer Shape
//
// Two-buffer operations require equal lengths. A mismatch is a caller bug
// and is reported with an error wrapping [ErrLengthMismatch] before any
// output is produced; nothing is truncated or padded. Repeating-key
// operations reject an empty key with [ErrEmptyKey].
//
//	ct, err := xor.Repeating([]byte("Burning 'em"), []byte("ICE"))
//	pt, _ := xor.Repeating(ct, []byte("ICE")) // pt == "Burning 'em"
//
// # Streaming
//
// [Cipher] implements crypto/cipher.Stream over a repeating key and keeps
// its position between calls, so a long input can be processed in chunks:
//
//	c, _ := xor.NewCipher(key)
//	defer c.Wipe()
//	c.XORKeyStream(dst, src)
//
// # Hamming Distance
//
//	d, _ := xor.HammingDistance([]byte("this is a test"), []byte("wokka wokka!!!"))
//	// d == 37
//
// All functions except the Cipher methods are pure and safe for concurrent
// use. A Cipher must not be shared between goroutines.
package xor
