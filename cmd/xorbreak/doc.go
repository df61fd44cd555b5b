// Package main provides the xorbreak command-line tool.
//
// # Overview
//
// xorbreak converts hex to base64, applies XOR ciphers, and recovers
// unknown XOR keys from ciphertext by English frequency analysis.
//
// # Usage
//
//	xorbreak <command> [options] [arguments]
//
// Commands:
//   - hex2b64 [hex...]: print the base64 form of each hex argument, or of each stdin line
//   - fixedxor <hexA> <hexB>: print the hex XOR of two equal-length buffers
//   - encrypt -key K [file]: repeating-key XOR of a file or stdin, printed as hex
//   - single [hex]: recover a single-byte XOR key
//   - detect [file]: find the single-byte XOR line in a hex corpus
//   - keysize [file]: estimate a repeating key length
//   - break [file]: recover a repeating XOR key and decrypt
//
// Ciphertext input is hex text (whitespace ignored) unless -raw is given.
//
// # Configuration Options
//
//   - -log-level: Log level (DEBUG, INFO, WARN, ERROR) (default: WARN)
//   - -workers: Concurrent scoring workers (default: number of CPUs)
//   - -min-keysize, -max-keysize: Keysize search range (default: 2 to 40)
//   - -keysize-candidates: Keysizes tried by break (default: 1)
//   - -skip-malformed: Skip malformed corpus lines instead of failing
//   - -raw: Treat ciphertext input as raw bytes
//   - -key: Key for encrypt
//
// # Exit Codes
//
//   - 0: Success
//   - 1: Usage error, malformed input, or no key recovered
package main
