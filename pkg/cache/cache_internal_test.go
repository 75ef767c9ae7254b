package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uaparse/pkg/useragent"
)

// Entries are keyed by hash, so two strings can share a slot. These tests
// plant an entry for one string under another string's key.
func TestCache_HashCollision(t *testing.T) {
	t.Parallel()

	const (
		mine  = "curl/7.64.1"
		other = "Wget/1.21"
	)
	key := Key(mine)

	t.Run("get misses and put replaces", func(t *testing.T) {
		t.Parallel()

		c := New(4)
		c.put(key, other, useragent.Result{Browser: "Wget"})

		_, ok := c.get(key, mine)
		assert.False(t, ok, "entry stored for another string must not be returned")

		res, ok := c.get(key, other)
		require.True(t, ok)
		assert.Equal(t, "Wget", res.Browser)

		c.put(key, mine, useragent.Result{Browser: "curl"})
		assert.Equal(t, 1, c.Len())

		res, ok = c.get(key, mine)
		require.True(t, ok)
		assert.Equal(t, "curl", res.Browser)

		_, ok = c.get(key, other)
		assert.False(t, ok)
	})

	t.Run("parse classifies instead of serving the planted entry", func(t *testing.T) {
		t.Parallel()

		c := New(4)
		c.put(key, other, useragent.Result{Browser: "Wget", Version: "1.21"})

		res := c.Parse(context.Background(), mine)
		assert.Equal(t, useragent.Result{Browser: "curl", Version: "7.64.1"}, res)

		stats := c.Stats()
		assert.EqualValues(t, 0, stats.Hits)
		assert.EqualValues(t, 1, stats.Misses)
		assert.Equal(t, 1, stats.Size)

		res = c.Parse(context.Background(), mine)
		assert.Equal(t, "curl", res.Browser)
		assert.EqualValues(t, 1, c.Stats().Hits)
	})
}
