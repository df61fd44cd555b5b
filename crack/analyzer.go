package crack

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/xorbreak/language"
)

// Analyzer runs the key recovery searches with a fixed configuration. It is
// safe for concurrent use.
type Analyzer struct {
	opts   Options
	scorer *language.Scorer
}

// NewAnalyzer validates opts and returns an analyzer. A nil opts selects
// DefaultOptions.
func NewAnalyzer(opts *Options) (*Analyzer, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":    "NewAnalyzer",
		"package":     "crack",
		"key_low":     opts.KeyRange.Low,
		"key_high":    opts.KeyRange.High,
		"min_keysize": opts.MinKeysize,
		"max_keysize": opts.MaxKeysize,
		"workers":     opts.Workers,
	}).Debug("Analyzer created")

	return &Analyzer{
		opts:   *opts,
		scorer: language.NewScorer(opts.Table, opts.Weights),
	}, nil
}

// Options returns a copy of the analyzer configuration.
func (a *Analyzer) Options() Options {
	return a.opts
}

// Scorer returns the language scorer used for every candidate.
func (a *Analyzer) Scorer() *language.Scorer {
	return a.scorer
}

// forEach calls fn for 0..n-1 on up to Workers goroutines. Each call must
// only write to its own result slot. Cancellation is checked before every
// call.
func (a *Analyzer) forEach(ctx context.Context, n int, fn func(i int) error) error {
	if a.opts.Workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Workers)
	for i := 0; i < n; i++ {
		i := i // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("parallel search: %w", err)
	}
	return nil
}
