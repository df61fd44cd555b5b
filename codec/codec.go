package codec

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedInput is returned when text is not valid hexadecimal.
var ErrMalformedInput = errors.New("malformed input")

// MaxLineLength bounds a single corpus line read by ReadHexLines.
const MaxLineLength = 1024 * 1024

// DecodeHex decodes hexadecimal text into bytes. Odd-length text and
// non-hex characters are rejected with an error wrapping ErrMalformedInput.
func DecodeHex(text string) ([]byte, error) {
	b, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("decode hex %q: %w: %v", preview(text), ErrMalformedInput, err)
	}
	return b, nil
}

// MustDecodeHex is like DecodeHex but panics on malformed input.
func MustDecodeHex(text string) []byte {
	b, err := DecodeHex(text)
	if err != nil {
		panic(err)
	}
	return b
}

// EncodeHex returns the lowercase hexadecimal encoding of b.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// EncodeBase64 returns the standard, padded base64 encoding of b.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// HexToBase64 re-encodes hexadecimal text as standard base64.
func HexToBase64(text string) (string, error) {
	b, err := DecodeHex(text)
	if err != nil {
		return "", err
	}
	return EncodeBase64(b), nil
}

// ReadHexLines reads a newline-delimited corpus. Surrounding whitespace is
// trimmed and blank lines are dropped; lines are not decoded.
func ReadHexLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineLength)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return lines, nil
}

// preview shortens text for error messages.
func preview(text string) string {
	const limit = 16
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
