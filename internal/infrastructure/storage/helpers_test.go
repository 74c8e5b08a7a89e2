package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"lid-bot/internal/infrastructure/docstore"
)

var errStoreDown = errors.New("store unavailable")

// countingStore оборачивает хранилище, считает обращения и может отказывать
type countingStore struct {
	docstore.Store

	mu         sync.Mutex
	gets, sets int
	updates    int
	failGet    bool
	failWrite  bool
}

func newCountingStore() *countingStore {
	return &countingStore{Store: docstore.NewMemoryStore()}
}

func (s *countingStore) Get(ctx context.Context, ref docstore.Ref, dst any) (bool, error) {
	s.mu.Lock()
	s.gets++
	fail := s.failGet
	s.mu.Unlock()
	if fail {
		return false, errStoreDown
	}
	return s.Store.Get(ctx, ref, dst)
}

func (s *countingStore) Set(ctx context.Context, ref docstore.Ref, data any) error {
	s.mu.Lock()
	s.sets++
	fail := s.failWrite
	s.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return s.Store.Set(ctx, ref, data)
}

func (s *countingStore) Update(ctx context.Context, ref docstore.Ref, fields map[string]any) error {
	s.mu.Lock()
	s.updates++
	fail := s.failWrite
	s.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return s.Store.Update(ctx, ref, fields)
}

func (s *countingStore) reset() {
	s.mu.Lock()
	s.gets, s.sets, s.updates = 0, 0, 0
	s.mu.Unlock()
}

// stepClock возвращает время, которое сдвигается на секунду при каждом вызове
type stepClock struct {
	mu  sync.Mutex
	cur time.Time
}

func newStepClock() *stepClock {
	return &stepClock{cur: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.cur
	c.cur = c.cur.Add(time.Second)
	return now
}

type uninitializedStore struct{ docstore.Store }

func (uninitializedStore) IsInitialized() bool { return false }

func strPtr(s string) *string { return &s }
