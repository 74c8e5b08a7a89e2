package docstore

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_SetGetUpdate(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()
	require.True(t, s.IsInitialized())

	ref := Doc("users", "42")
	require.NoError(t, s.Set(ctx, ref, record{Name: "Anna", Count: 1}))
	require.NoError(t, s.Update(ctx, ref, map[string]any{"count": Inc(1), "name": "Anne"}))

	var got record
	found, err := s.Get(ctx, ref, &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Anne", got.Name)
	require.Equal(t, int64(2), got.Count)
}

func TestSQLiteStore_Missing(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	var got record
	found, err := s.Get(ctx, Doc("users", "1"), &got)
	require.NoError(t, err)
	require.False(t, found)

	err = s.Update(ctx, Doc("users", "1"), map[string]any{"name": "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, Doc("questions", "5").Child("translations", "en"), record{Name: "en"}))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	var got record
	found, err := s.Get(ctx, Doc("questions", "5").Child("translations", "en"), &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "en", got.Name)
}

func TestSQLiteStore_ConcurrentWriters(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	const users = 10
	for i := 0; i < users; i++ {
		require.NoError(t, s.Set(ctx, Doc("users", fmt.Sprint(i)), record{Name: "u"}))
	}

	const workers = 100
	var wg sync.WaitGroup
	errs := make(chan error, workers*2)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ref := Doc("users", fmt.Sprint(i%users))
			var got record
			if _, err := s.Get(ctx, ref, &got); err != nil {
				errs <- err
			}
			if err := s.Update(ctx, ref, map[string]any{"count": Inc(1)}); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	for i := 0; i < users; i++ {
		var got record
		found, err := s.Get(ctx, Doc("users", fmt.Sprint(i)), &got)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, int64(workers/users), got.Count)
	}
}
