package xor

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrLengthMismatch is returned when two buffers must have equal length.
	ErrLengthMismatch = errors.New("buffer length mismatch")

	// ErrEmptyKey is returned when a repeating key has no bytes.
	ErrEmptyKey = errors.New("empty key")
)

// Fixed returns a XOR b. Both buffers must have the same length.
func Fixed(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("fixed xor %d != %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	out := make([]byte, len(a))
	subtle.XORBytes(out, a, b)
	return out, nil
}

// KeyStream returns key cycled to exactly n bytes.
func KeyStream(key []byte, n int) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	stream := make([]byte, n)
	for i := range stream {
		stream[i] = key[i%len(key)]
	}
	return stream, nil
}

// Repeating XORs input with key repeated cyclically to the input length.
// Applying it twice with the same key returns the original input.
func Repeating(input, key []byte) ([]byte, error) {
	stream, err := KeyStream(key, len(input))
	if err != nil {
		return nil, fmt.Errorf("repeating xor: %w", err)
	}
	return Fixed(input, stream)
}

// SingleByte XORs input with key repeated to the input length.
func SingleByte(input []byte, key byte) []byte {
	// Lengths match by construction.
	out, _ := Fixed(input, bytes.Repeat([]byte{key}, len(input)))
	return out
}

// PopCount returns the number of set bits in b.
func PopCount(b byte) int {
	return bits.OnesCount8(b)
}

// HammingDistance returns the number of differing bits between two
// equal-length buffers.
func HammingDistance(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("hamming distance %d != %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	var distance int
	for i := range a {
		distance += PopCount(a[i] ^ b[i])
	}
	return distance, nil
}
