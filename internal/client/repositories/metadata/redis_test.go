package metadata

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableClient points at a port nothing listens on, so every command
// fails fast with a dial error.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	c := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewRedisRepository_DefaultPrefix(t *testing.T) {
	r := NewRedisRepository(unreachableClient(t), "")
	assert.Equal(t, DefaultRedisPrefix, r.prefix)

	r = NewRedisRepository(unreachableClient(t), "test:")
	assert.Equal(t, "test:", r.prefix)
}

func TestRedisRepository_ErrorsAreWrapped(t *testing.T) {
	r := NewRedisRepository(unreachableClient(t), "")
	ctx := context.Background()

	_, err := r.Get(ctx, "medmate_user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `metadata get "medmate_user"`)

	err = r.Set(ctx, "medmate_user", []byte("{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `metadata set "medmate_user"`)

	err = r.Delete(ctx, "medmate_user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `metadata delete "medmate_user"`)

	_, err = r.List(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata list")

	err = r.Clear(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata clear")
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = c.Close() })
	return mr, c
}

func TestRedisRepository_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Repository {
		_, c := newMiniredisClient(t)
		return NewRedisRepository(c, "")
	})
}

func TestRedisRepository_StaysInsidePrefix(t *testing.T) {
	ctx := context.Background()
	mr, c := newMiniredisClient(t)
	require.NoError(t, mr.Set("other:key", "keep"))

	r := NewRedisRepository(c, "")
	require.NoError(t, r.Set(ctx, "medmate_user", []byte("{}")))
	assert.True(t, mr.Exists(DefaultRedisPrefix+"medmate_user"))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"medmate_user": []byte("{}")}, m)

	require.NoError(t, r.Clear(ctx))
	assert.False(t, mr.Exists(DefaultRedisPrefix+"medmate_user"))
	assert.True(t, mr.Exists("other:key"))
}
