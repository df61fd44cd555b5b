package crack

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/xorbreak/xor"
)

func encryptProse(t *testing.T, key string) []byte {
	t.Helper()
	ct, err := xor.Repeating([]byte(prose), []byte(key))
	require.NoError(t, err)
	return ct
}

func TestBreakRepeatingKeyWithKeysize(t *testing.T) {
	for _, key := range []string{"ICE", "Harbor", "k3y!"} {
		t.Run(key, func(t *testing.T) {
			a, err := NewAnalyzer(nil)
			require.NoError(t, err)

			res, err := a.BreakRepeatingKeyWithKeysize(context.Background(), encryptProse(t, key), len(key))
			require.NoError(t, err)
			assert.Equal(t, len(key), res.Keysize)
			assert.Equal(t, []byte(key), res.Key)
			assert.Equal(t, prose, res.Plaintext)
			assert.Equal(t, a.Scorer().Score(prose), res.Score)
		})
	}
}

func TestBreakRepeatingKeyFixedRange(t *testing.T) {
	opts := DefaultOptions()
	opts.MinKeysize, opts.MaxKeysize = 3, 3
	a, err := NewAnalyzer(opts)
	require.NoError(t, err)

	res, err := a.BreakRepeatingKey(context.Background(), encryptProse(t, "ICE"))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Keysize)
	assert.Equal(t, []byte("ICE"), res.Key)
	assert.Equal(t, prose, res.Plaintext)
	assert.Greater(t, res.Distance, 0.0)
}

func TestBreakRepeatingKeyTriesSeveralKeysizes(t *testing.T) {
	opts := DefaultOptions()
	opts.MinKeysize, opts.MaxKeysize = 2, 9
	opts.KeysizeCandidates = 8
	a, err := NewAnalyzer(opts)
	require.NoError(t, err)

	res, err := a.BreakRepeatingKey(context.Background(), encryptProse(t, "ICE"))
	require.NoError(t, err)

	// Any multiple of the true length decrypts identically.
	assert.Equal(t, prose, res.Plaintext)
	assert.Zero(t, res.Keysize%3)
	assert.Equal(t, bytes.Repeat([]byte("ICE"), res.Keysize/3), res.Key)
}

func TestBreakRepeatingKeyWorkersAgree(t *testing.T) {
	ct := encryptProse(t, "Harbor")
	var keys [][]byte
	for _, workers := range []int{1, 4} {
		opts := DefaultOptions()
		opts.Workers = workers
		a, err := NewAnalyzer(opts)
		require.NoError(t, err)

		res, err := a.BreakRepeatingKeyWithKeysize(context.Background(), ct, 6)
		require.NoError(t, err)
		keys = append(keys, res.Key)
	}
	assert.Equal(t, keys[0], keys[1])
}

func TestBreakRepeatingKeyNoValidDecoding(t *testing.T) {
	a, err := NewAnalyzer(nil)
	require.NoError(t, err)

	_, err = a.BreakRepeatingKeyWithKeysize(context.Background(), []byte{'A', 0xc3, 'A', 'A'}, 1)
	assert.True(t, errors.Is(err, ErrNoValidDecoding))

	opts := DefaultOptions()
	opts.MinKeysize, opts.MaxKeysize = 1, 1
	a, err = NewAnalyzer(opts)
	require.NoError(t, err)

	_, err = a.BreakRepeatingKey(context.Background(), []byte{'A', 0xc3, 'A', 'A'})
	assert.True(t, errors.Is(err, ErrNoValidDecoding))
}

func TestBreakRepeatingKeyErrors(t *testing.T) {
	a, err := NewAnalyzer(nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = a.BreakRepeatingKeyWithKeysize(ctx, []byte("abc"), 0)
	assert.True(t, errors.Is(err, ErrInvalidOptions))

	_, err = a.BreakRepeatingKeyWithKeysize(ctx, []byte("abc"), 4)
	assert.True(t, errors.Is(err, ErrCiphertextTooShort))

	_, err = BreakRepeatingKey(ctx, []byte("short"))
	assert.True(t, errors.Is(err, ErrCiphertextTooShort))
}

func TestBreakRepeatingKeyCancelled(t *testing.T) {
	opts := DefaultOptions()
	opts.MinKeysize, opts.MaxKeysize = 3, 3
	a, err := NewAnalyzer(opts)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = a.BreakRepeatingKey(ctx, encryptProse(t, "ICE"))
	assert.ErrorIs(t, err, context.Canceled)
}
