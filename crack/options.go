package crack

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/opd-ai/xorbreak/language"
)

// ErrInvalidOptions is returned by Options.Validate and NewAnalyzer.
var ErrInvalidOptions = errors.New("invalid options")

const (
	// DefaultMinKeysize and DefaultMaxKeysize bound the repeating key
	// lengths tried by the keysize estimator.
	DefaultMinKeysize = 2
	DefaultMaxKeysize = 40

	// PrintableLow and PrintableHigh delimit the printable ASCII keys
	// searched by the single-byte recoverer.
	PrintableLow  byte = 0x20
	PrintableHigh byte = 0x7e
)

// KeyRange is an inclusive range of single-byte keys.
type KeyRange struct {
	Low  byte
	High byte
}

// PrintableASCII is the default single-byte key range, 95 keys.
var PrintableASCII = KeyRange{Low: PrintableLow, High: PrintableHigh}

// Len returns the number of keys in the range.
func (r KeyRange) Len() int {
	if r.High < r.Low {
		return 0
	}
	return int(r.High) - int(r.Low) + 1
}

// Key returns the i-th key of the range.
func (r KeyRange) Key(i int) byte {
	return byte(int(r.Low) + i)
}

// Options configures an Analyzer.
type Options struct {
	// KeyRange is the set of single-byte keys tried for every ciphertext.
	KeyRange KeyRange

	// MinKeysize and MaxKeysize bound the repeating key length search.
	MinKeysize int
	MaxKeysize int

	// KeysizeCandidates is how many of the best-ranked keysizes
	// BreakRepeatingKey attempts before keeping the best plaintext.
	KeysizeCandidates int

	// Workers bounds concurrent scoring. 1 runs everything inline.
	Workers int

	// SkipMalformed makes the line scanner skip lines that are not valid
	// hex instead of aborting the scan.
	SkipMalformed bool

	// Table and Weights parameterize the language scorer. A nil table
	// selects language.English. The analyzer keeps its own copy.
	Table   *language.FrequencyTable
	Weights language.Weights
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() *Options {
	return &Options{
		KeyRange:          PrintableASCII,
		MinKeysize:        DefaultMinKeysize,
		MaxKeysize:        DefaultMaxKeysize,
		KeysizeCandidates: 1,
		Workers:           runtime.NumCPU(),
		SkipMalformed:     false,
		Table:             nil,
		Weights:           language.DefaultWeights(),
	}
}

// Validate checks the options for consistency.
func (o *Options) Validate() error {
	if o == nil {
		return fmt.Errorf("%w: nil options", ErrInvalidOptions)
	}
	if o.KeyRange.Len() == 0 {
		return fmt.Errorf("%w: empty key range %#02x-%#02x", ErrInvalidOptions, o.KeyRange.Low, o.KeyRange.High)
	}
	if o.MinKeysize < 1 {
		return fmt.Errorf("%w: minimum keysize must be positive, got %d", ErrInvalidOptions, o.MinKeysize)
	}
	if o.MaxKeysize < o.MinKeysize {
		return fmt.Errorf("%w: maximum keysize %d below minimum %d", ErrInvalidOptions, o.MaxKeysize, o.MinKeysize)
	}
	if o.KeysizeCandidates < 1 {
		return fmt.Errorf("%w: keysize candidates must be positive, got %d", ErrInvalidOptions, o.KeysizeCandidates)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidOptions, o.Workers)
	}
	if err := o.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if o.Table != nil {
		if err := o.Table.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
	}
	return nil
}
