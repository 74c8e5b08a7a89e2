package docstore

import (
	"context"
	"sync"
)

// MemoryStore in-memory хранилище документов
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[string]any
}

// NewMemoryStore создаёт пустое in-memory хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]map[string]any),
	}
}

func (s *MemoryStore) Get(ctx context.Context, ref Ref, dst any) (bool, error) {
	s.mu.RLock()
	doc, exists := s.docs[ref.Path()]
	s.mu.RUnlock()

	if !exists {
		return false, nil
	}
	return true, decode(doc, dst)
}

func (s *MemoryStore) Set(ctx context.Context, ref Ref, data any) error {
	doc, err := encode(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.docs[ref.Path()] = doc
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Update(ctx context.Context, ref Ref, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, exists := s.docs[ref.Path()]
	if !exists {
		return ErrNotFound
	}

	updated := clone(doc)
	if err := merge(updated, fields); err != nil {
		return err
	}
	s.docs[ref.Path()] = updated

	return nil
}

// Len количество документов (для тестов и отладки)
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

func (s *MemoryStore) IsInitialized() bool { return true }

func (s *MemoryStore) Close() error { return nil }

// Проверка реализации интерфейса
var _ Store = (*MemoryStore)(nil)
