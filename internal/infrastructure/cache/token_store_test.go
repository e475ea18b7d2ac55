package cache

import (
	"context"
	"testing"
	"time"

	"clinic-records/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisTokenStore(client), mr
}

func TestTokenKey(t *testing.T) {
	doctorID := uuid.MustParse("7b0c4c56-1d1a-4e22-9f53-3f1f7c2f4a10")
	assert.Equal(t,
		"access_token:7b0c4c56-1d1a-4e22-9f53-3f1f7c2f4a10:abc",
		TokenKey(jwt.AccessToken, doctorID, "abc"),
	)
}

func TestRedisTokenStore(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)
	doctorID := uuid.New()

	require.NoError(t, store.Store(ctx, jwt.AccessToken, doctorID, "t1", time.Minute))

	key := TokenKey(jwt.AccessToken, doctorID, "t1")
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	ok, err := store.Exists(ctx, jwt.AccessToken, doctorID, "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, jwt.RefreshToken, doctorID, "t1")
	require.NoError(t, err)
	assert.False(t, ok, "token types are kept apart")

	require.NoError(t, store.Revoke(ctx, jwt.AccessToken, doctorID, "t1"))
	ok, err = store.Exists(ctx, jwt.AccessToken, doctorID, "t1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, mr.Exists(key))
}

func TestRedisTokenStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)
	doctorID := uuid.New()

	require.NoError(t, store.Store(ctx, jwt.RefreshToken, doctorID, "t1", time.Hour))

	mr.FastForward(59 * time.Minute)
	ok, err := store.Exists(ctx, jwt.RefreshToken, doctorID, "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(2 * time.Minute)
	ok, err = store.Exists(ctx, jwt.RefreshToken, doctorID, "t1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisTokenStore_RevokeMissingToken(t *testing.T) {
	store, _ := newTestStore(t)
	assert.NoError(t, store.Revoke(context.Background(), jwt.AccessToken, uuid.New(), "never-issued"))
}

func TestRedisTokenStore_Ping(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, store.Ping(ctx))

	mr.Close()
	assert.Error(t, store.Ping(ctx))
}
