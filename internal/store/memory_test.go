package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wrdlstab/internal/puzzle"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	s, err := st.Create(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, s.ID, 16)
	require.Len(t, s.Board.Rows, 1)
	assert.True(t, s.Board.Rows[0].IsBlank())

	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	got.Board.Rows[0].SetWord("crate")

	again, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, again.Board.Rows[0].IsBlank(), "Get returns a copy")

	updated, err := st.Update(ctx, s.ID, func(s *Session) error {
		s.Board.Rows[0].SetWord("crate")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "crate", updated.Board.Rows[0].Word())

	require.NoError(t, st.Delete(ctx, s.ID))
	_, err = st.Get(ctx, s.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, st.Delete(ctx, s.ID), ErrNotFound)
}

func TestMemoryStoreFailedUpdateChangesNothing(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s, err := st.Create(ctx, 5)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = st.Update(ctx, s.ID, func(s *Session) error {
		s.Board.Clear()
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, got.Board.Rows, 1)

	_, err = st.Update(ctx, "missing", func(*Session) error { return nil })
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRejectsBadLength(t *testing.T) {
	_, err := NewMemoryStore().Create(context.Background(), 0)
	require.ErrorIs(t, err, puzzle.ErrInvalidRow)
	_, err = NewMemoryStore().Create(context.Background(), puzzle.MaxLength+1)
	require.ErrorIs(t, err, puzzle.ErrInvalidRow)
}

func TestMemoryStoreConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s, err := st.Create(ctx, 5)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.Update(ctx, s.ID, func(s *Session) error {
				s.Board.AddRow(puzzle.NewRow(s.Length))
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, got.Board.Rows, 51)
}
