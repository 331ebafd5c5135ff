package redisx

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	s := miniredis.RunT(t)
	c := New(s.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestHashCounters(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	n, err := c.HIncrBy(ctx, "h", "/california", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	all, err := c.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"/california": "2"}, all)
}

func TestTop(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	for i, m := range []string{"a", "b", "b", "c", "c", "c"} {
		_, err := c.ZIncrBy(ctx, "z", 1, m)
		require.NoError(t, err, i)
	}
	top, err := c.Top(ctx, "z", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "c", top[0].Member)
	assert.Equal(t, float64(3), top[0].Score)
	assert.Equal(t, "b", top[1].Member)

	none, err := c.Top(ctx, "z", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
