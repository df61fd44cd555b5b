package xor

import (
	"crypto/cipher"
	"fmt"
)

// Cipher is a repeating-key XOR stream. Encryption and decryption are the
// same operation.
type Cipher struct {
	key []byte
	pos int
}

var _ cipher.Stream = (*Cipher)(nil)

// NewCipher returns a stream positioned at the start of key. The key is
// copied.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("new cipher: %w", ErrEmptyKey)
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Cipher{key: k}, nil
}

// XORKeyStream XORs each byte of src with the next key byte and writes the
// result to dst. It panics if dst is shorter than src, as required by
// cipher.Stream.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("xor: output smaller than input")
	}
	for i, b := range src {
		dst[i] = b ^ c.key[c.pos]
		c.pos++
		if c.pos == len(c.key) {
			c.pos = 0
		}
	}
}

// Reset rewinds the stream to the first key byte.
func (c *Cipher) Reset() {
	c.pos = 0
}

// KeySize returns the length of the repeating key.
func (c *Cipher) KeySize() int {
	return len(c.key)
}

// Wipe zeroes the key. The cipher must not be used afterwards.
func (c *Cipher) Wipe() error {
	if c == nil {
		return fmt.Errorf("cannot wipe nil cipher")
	}
	err := SecureWipe(c.key)
	c.pos = 0
	return err
}
