package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestClient_SetGetDelete(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "user:1", []byte(`{"id":"1"}`), time.Minute))
	got, err := c.Get(ctx, "user:1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, string(got))

	require.NoError(t, c.Delete(ctx, "user:1"))
	got, err = c.Get(ctx, "user:1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_IncrExpiresWindow(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		n, err := c.Incr(ctx, "attempts", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}
	n, _ := c.Counter(ctx, "attempts")
	assert.Equal(t, int64(3), n)

	mr.FastForward(2 * time.Minute)
	n, _ = c.Counter(ctx, "attempts")
	assert.Zero(t, n)
}

func TestClient_FailsSafe(t *testing.T) {
	var nilClient *Client
	ctx := context.Background()

	got, err := nilClient.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, nilClient.Set(ctx, "k", []byte("v"), time.Second))
	n, err := nilClient.Incr(ctx, "k", time.Second)
	assert.NoError(t, err)
	assert.Zero(t, n)

	unreachable := New("127.0.0.1:1", "", 0)
	defer unreachable.Close()
	got, err = unreachable.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
