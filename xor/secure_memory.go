package xor

import (
	"crypto/subtle"
	"errors"
	"runtime"
)

// SecureWipe zeroes key material in place. It returns an error if data is
// nil.
func SecureWipe(data []byte) error {
	if data == nil {
		return errors.New("cannot wipe nil data")
	}

	// XOR the buffer with itself through subtle so the store is not elided.
	subtle.XORBytes(data, data, data)

	runtime.KeepAlive(data)
	return nil
}
