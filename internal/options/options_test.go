package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fitConfig struct {
	rule    int
	workers int
	calls   []string
}

var errNegative = errors.New("workers cannot be negative")

func withWorkers(n int) Option[*fitConfig] {
	return New(func(c *fitConfig) error {
		if n < 0 {
			return errNegative
		}
		c.workers = n
		c.calls = append(c.calls, "workers")

		return nil
	})
}

func withRule(r int) Option[*fitConfig] {
	return New(func(c *fitConfig) error {
		c.rule = r
		c.calls = append(c.calls, "rule")

		return nil
	})
}

func TestNew(t *testing.T) {
	t.Run("applies value", func(t *testing.T) {
		cfg := &fitConfig{}
		require.NoError(t, withWorkers(4).apply(cfg))
		require.Equal(t, 4, cfg.workers)
	})

	t.Run("propagates error", func(t *testing.T) {
		cfg := &fitConfig{}
		err := withWorkers(-1).apply(cfg)
		require.ErrorIs(t, err, errNegative)
		require.Zero(t, cfg.workers)
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &fitConfig{}
		err := Apply(cfg, withRule(1), withWorkers(8), withRule(3))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.rule)
		require.Equal(t, 8, cfg.workers)
		require.Equal(t, []string{"rule", "workers", "rule"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &fitConfig{}
		err := Apply(cfg, withRule(1), withWorkers(-5), withRule(9))
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, 1, cfg.rule)
		require.Equal(t, []string{"rule"}, cfg.calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &fitConfig{}
		require.NoError(t, Apply(cfg, nil, withRule(7)))
		require.Equal(t, 7, cfg.rule)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &fitConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, fitConfig{}, *cfg)
	})
}
