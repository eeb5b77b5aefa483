package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandnsingh/groceryfrontend/internal/domain"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_NoToken(t *testing.T) {
	store, _ := newRedisStore(t)
	_, err := store.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestRedisStore_WrappedTokenIsPrimary(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set("session:user", `{"name":"Chand","token":"wrapped-tok"}`))
	require.NoError(t, mr.Set("session:token", "standalone-tok"))

	tok, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "wrapped-tok", tok)
}

func TestRedisStore_FallsBackToStandaloneToken(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set("session:token", "standalone-tok"))

	tok, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "standalone-tok", tok)
}

func TestRedisStore_RejectsJunkTokens(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set("session:token", "undefined"))

	_, err := store.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestRedisStore_SaveLoginAndClear(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	ch := store.Watch()
	user := domain.User{ID: "u1", Name: "Chand", Email: "c@example.com"}
	require.NoError(t, store.SaveLogin(ctx, user, "tok-1"))

	tok, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	stored, err := store.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Chand", stored.Name)
	assert.Equal(t, "tok-1", stored.Token)

	select {
	case got := <-ch:
		assert.Equal(t, "tok-1", got)
	case <-time.After(time.Second):
		t.Fatal("no watch notification after login")
	}

	require.NoError(t, store.Clear(ctx))
	_, err = store.Token(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	select {
	case got := <-ch:
		assert.Equal(t, "", got)
	case <-time.After(time.Second):
		t.Fatal("no watch notification after clear")
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("abc"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("undefined"))
	assert.False(t, Valid("null"))
}
