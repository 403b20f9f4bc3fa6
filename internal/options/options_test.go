package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type bufferConfig struct {
	capacity int
	pooled   bool
	calls    []string
}

var errNegative = errors.New("capacity cannot be negative")

func withCapacity(n int) Option[*bufferConfig] {
	return New(func(c *bufferConfig) error {
		if n < 0 {
			return errNegative
		}
		c.capacity = n
		c.calls = append(c.calls, "capacity")

		return nil
	})
}

func withPooled(pooled bool) Option[*bufferConfig] {
	return New(func(c *bufferConfig) error {
		c.pooled = pooled
		c.calls = append(c.calls, "pooled")

		return nil
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &bufferConfig{}

	err := Apply(cfg, withPooled(true), withCapacity(64), withPooled(false))
	require.NoError(t, err)
	require.Equal(t, 64, cfg.capacity)
	require.False(t, cfg.pooled, "later options override earlier ones")
	require.Equal(t, []string{"pooled", "capacity", "pooled"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &bufferConfig{}

	err := Apply(cfg, withCapacity(8), withCapacity(-1), withPooled(true))
	require.ErrorIs(t, err, errNegative)
	require.Equal(t, 8, cfg.capacity)
	require.False(t, cfg.pooled, "options after the failing one must not run")
}

func TestApply_EmptyAndNil(t *testing.T) {
	cfg := &bufferConfig{}

	require.NoError(t, Apply(cfg))
	require.NoError(t, Apply(cfg, nil, withPooled(true)))
	require.True(t, cfg.pooled)
}

func TestApply_PrimitiveTarget(t *testing.T) {
	var n int
	inc := New(func(p *int) error {
		*p++
		return nil
	})

	require.NoError(t, Apply(&n, Option[*int](inc), Option[*int](inc)))
	require.Equal(t, 2, n)
}
