package basket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasketOperations(t *testing.T) {
	b := Basket{}
	assert.True(t, b.IsEmpty())

	b.Add(1, 2)
	b.Add(1, 1)
	b.Add(2, 1)
	assert.Equal(t, 3, b[1])
	assert.Equal(t, 4, b.Count())

	b.Set(1, 5)
	assert.Equal(t, 5, b[1])

	// Setting a non-positive quantity removes the line.
	b.Set(1, 0)
	_, ok := b[1]
	assert.False(t, ok)

	b.Remove(2)
	assert.True(t, b.IsEmpty())
	assert.Zero(t, b.Count())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	// Unknown session yields an empty basket, not an error.
	b, err := store.Get(ctx, "nobody")
	assert.NoError(t, err)
	assert.True(t, b.IsEmpty())

	assert.NoError(t, store.Save(ctx, "s1", Basket{1: 2, 2: 1}))

	b, err = store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, 2, b[1])
	assert.Equal(t, 1, b[2])

	// Sessions are isolated.
	other, err := store.Get(ctx, "s2")
	assert.NoError(t, err)
	assert.True(t, other.IsEmpty())

	assert.NoError(t, store.Clear(ctx, "s1"))
	b, err = store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, b.IsEmpty())
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	original := Basket{1: 2}
	assert.NoError(t, store.Save(ctx, "s1", original))

	// Mutating what Save was given must not affect the stored basket.
	original.Set(1, 99)

	b, err := store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, 2, b[1])

	// Mutating what Get returned must not either.
	b.Set(1, 42)
	again, err := store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, 2, again[1])
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Millisecond)

	assert.NoError(t, store.Save(ctx, "s1", Basket{1: 1}))
	time.Sleep(5 * time.Millisecond)

	b, err := store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, b.IsEmpty())
}
