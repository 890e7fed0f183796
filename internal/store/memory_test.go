package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordplaylabs/wordle-ai/internal/game"
)

func TestMemoryStore_SaveGet(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	g := &game.Game{ID: "abc123", Answer: "about"}
	require.NoError(t, st.Save(ctx, g))

	got, err := st.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Same(t, g, got)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SaveOverwrites(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, &game.Game{ID: "g1", Answer: "about"}))
	updated := &game.Game{ID: "g1", Answer: "sheep"}
	require.NoError(t, st.Save(ctx, updated))

	got, err := st.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "sheep", got.Answer)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("game-%d", i)
			_ = st.Save(ctx, &game.Game{ID: id})
			_, _ = st.Get(ctx, id)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		_, err := st.Get(ctx, fmt.Sprintf("game-%d", i))
		assert.NoError(t, err)
	}
}
