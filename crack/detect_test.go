package crack

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/xorbreak/codec"
)

func corpusWithTarget(at int) []string {
	lines := randomHexLines(42, 20, len(cookingHex)/2)
	lines[at] = cookingHex
	return lines
}

func TestDetectLine(t *testing.T) {
	res, err := DetectLine(context.Background(), corpusWithTarget(7))
	require.NoError(t, err)
	require.True(t, res.Valid)
	assert.Equal(t, 7, res.Index)
	assert.Equal(t, byte('X'), res.Key)
	assert.Equal(t, cookingPlaintext, res.Plaintext)
}

func TestDetectLineWorkersAgree(t *testing.T) {
	lines := corpusWithTarget(13)
	var results []LineResult
	for _, workers := range []int{1, 3, 32} {
		opts := DefaultOptions()
		opts.Workers = workers
		a, err := NewAnalyzer(opts)
		require.NoError(t, err)

		res, err := a.DetectLine(context.Background(), lines)
		require.NoError(t, err)
		results = append(results, res)
	}
	for _, res := range results[1:] {
		assert.Equal(t, results[0], res)
	}
}

func TestDetectLineTieKeepsFirstLine(t *testing.T) {
	res, err := DetectLine(context.Background(), []string{"00ff00", cookingHex, cookingHex})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Index)
}

func TestDetectLineEmptyCorpus(t *testing.T) {
	res, err := DetectLine(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, -1, res.Index)
	assert.Equal(t, NoSolution(), res.Candidate)
}

func TestDetectLineAllInvalid(t *testing.T) {
	res, err := DetectLine(context.Background(), randomHexLines(7, 5, 16))
	require.NoError(t, err)
	assert.Equal(t, -1, res.Index)
	assert.False(t, res.Valid)
}

func TestDetectLineMalformedAborts(t *testing.T) {
	lines := []string{cookingHex, "not hex", cookingHex}

	res, err := DetectLine(context.Background(), lines)
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrMalformedInput))
	assert.Contains(t, err.Error(), "line 1")
	assert.Equal(t, -1, res.Index)
}

func TestDetectLineSkipMalformed(t *testing.T) {
	opts := DefaultOptions()
	opts.SkipMalformed = true
	a, err := NewAnalyzer(opts)
	require.NoError(t, err)

	lines := []string{"zz", "abc", cookingHex}
	res, err := a.DetectLine(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Index)
	assert.Equal(t, cookingPlaintext, res.Plaintext)

	res, err = a.DetectLine(context.Background(), []string{"zz"})
	require.NoError(t, err)
	assert.Equal(t, -1, res.Index)
}

func TestDetectLineIgnoresEmptyLines(t *testing.T) {
	res, err := DetectLine(context.Background(), []string{"", cookingHex, ""})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Index)
	assert.Equal(t, cookingPlaintext, res.Plaintext)

	res, err = DetectLine(context.Background(), []string{"", ""})
	require.NoError(t, err)
	assert.Equal(t, -1, res.Index)
	assert.False(t, res.Valid)
}

func TestDetectLineCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DetectLine(ctx, corpusWithTarget(0))
	assert.ErrorIs(t, err, context.Canceled)
}
