//go:build !windows

package volume

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixSourceList(t *testing.T) {
	src := NewSource()
	ctx := context.Background()

	t.Run("default is the root volume", func(t *testing.T) {
		ids, err := src.List(ctx, false, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"/"}, ids)
	})

	t.Run("all volumes on a single-root system", func(t *testing.T) {
		ids, err := src.List(ctx, true, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"/"}, ids)
	})

	t.Run("selectors take precedence over all", func(t *testing.T) {
		ids, err := src.List(ctx, true, []string{"/tmp"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/tmp"}, ids)
	})

	t.Run("existing selector resolves", func(t *testing.T) {
		ids, err := src.List(ctx, false, []string{"/tmp"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/tmp"}, ids)
	})

	t.Run("relative selector gains a leading slash", func(t *testing.T) {
		ids, err := src.List(ctx, false, []string{"tmp"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/tmp"}, ids)
	})

	t.Run("missing selectors are skipped", func(t *testing.T) {
		ids, err := src.List(ctx, false, []string{"/tmp", "/no-such-volume-zzz"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/tmp"}, ids)
	})

	t.Run("all selectors invalid is an error", func(t *testing.T) {
		_, err := src.List(ctx, false, []string{"/no-such-volume-zzz"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no valid volumes")
	})
}

func TestUnixSourceUsage(t *testing.T) {
	src := NewSource()

	usage, err := src.Usage(context.Background(), "/")
	require.NoError(t, err)

	assert.Positive(t, usage.Total)
	assert.GreaterOrEqual(t, usage.Used, int64(0))
	assert.GreaterOrEqual(t, usage.Free, int64(0))
	assert.LessOrEqual(t, usage.Used, usage.Total)
	assert.LessOrEqual(t, usage.Free, usage.Total)
}

func TestUnixSourceUsageMissingPath(t *testing.T) {
	src := NewSource()

	_, err := src.Usage(context.Background(), "/no-such-volume-zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statfs")
}
