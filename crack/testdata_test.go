package crack

import (
	"math/rand"
	"strings"

	"github.com/opd-ai/xorbreak/codec"
	"github.com/opd-ai/xorbreak/language"
)

const (
	cookingHex       = "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736"
	cookingPlaintext = "Cooking MC's like a pound of bacon"
)

// prose is long enough for per-column frequency analysis with short keys.
var prose = strings.Join([]string{
	"The harbor was quiet in the early morning, and the fishermen went about their work",
	"without much talk. One of them mended a net while another counted the crates that",
	"had come in the night before. A gull stood on the rail and watched them with great",
	"patience, waiting for something to fall. When the sun finally rose over the hills",
	"the water turned from grey to a deep and shining green, and the town began to wake.",
	"Shops opened their doors, a bell rang in the old church, and children ran down the",
	"narrow streets toward the school on the corner where the captain was waiting.",
}, "\n")

func defaultScorer() *language.Scorer {
	return language.NewScorer(nil, language.DefaultWeights())
}

// randomHexLines returns n lines of seeded random bytes, hex encoded.
func randomHexLines(seed int64, n, size int) []string {
	rng := rand.New(rand.NewSource(seed))
	lines := make([]string, n)
	buf := make([]byte, size)
	for i := range lines {
		rng.Read(buf)
		// A byte with the high bit set between two ASCII bytes is never
		// valid UTF-8, and keys below 0x80 cannot change the high bit.
		buf[0], buf[1], buf[2] = 'A', 0xc3, 'A'
		lines[i] = codec.EncodeHex(buf)
	}
	return lines
}
