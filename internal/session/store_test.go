package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
)

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "sessions.db"), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreCreateAndGet(t *testing.T) {
	store := newTestStore(t, time.Hour)

	user := &domain.User{ID: 42, Email: "jane@example.com", Firstname: "Jane", IsAdmin: true}
	data, err := store.Create(user)
	require.NoError(t, err)
	assert.Len(t, data.Token, 32)
	assert.Empty(t, data.Cart)

	got, err := store.Get(data.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.True(t, got.IsAdmin)
}

func TestStoreCartRoundTrip(t *testing.T) {
	store := newTestStore(t, time.Hour)

	data, err := store.Create(&domain.User{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	data.Cart = append(data.Cart, domain.CartLine{ProductID: 7, Quantity: 2, Price: 29.99, Name: "Denim Jacket", Size: "M"})
	require.NoError(t, store.Save(data))

	got, err := store.Get(data.Token)
	require.NoError(t, err)
	require.Len(t, got.Cart, 1)
	assert.Equal(t, int64(7), got.Cart[0].ProductID)
	assert.Equal(t, 2, got.Cart[0].Quantity)
	assert.Equal(t, "M", got.Cart[0].Size)
}

func TestStoreUnknownToken(t *testing.T) {
	store := newTestStore(t, time.Hour)
	_, err := store.Get("nosuchtoken")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreExpiry(t *testing.T) {
	store := newTestStore(t, time.Hour)

	data, err := store.Create(&domain.User{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	data.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Save(data))

	_, err = store.Get(data.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	// expired record is removed on read
	_, err = store.Get(data.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDestroy(t *testing.T) {
	store := newTestStore(t, time.Hour)

	data, err := store.Create(&domain.User{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(data.Token))
	_, err = store.Get(data.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	// unknown token is a no-op
	assert.NoError(t, store.Destroy("nosuchtoken"))
}

func TestStoreSweep(t *testing.T) {
	store := newTestStore(t, time.Hour)

	live, err := store.Create(&domain.User{ID: 1, Email: "live@b.c"})
	require.NoError(t, err)

	dead, err := store.Create(&domain.User{ID: 2, Email: "dead@b.c"})
	require.NoError(t, err)
	dead.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Save(dead))

	n, err := store.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = store.Get(live.Token)
	assert.NoError(t, err)
	_, err = store.Get(dead.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}
