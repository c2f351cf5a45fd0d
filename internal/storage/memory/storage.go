// Package memory provides an in-process KV backend.
package memory

import (
	"context"
	"slices"
	"sync"

	"casslot/internal/storage"
)

// Storage is an in-memory implementation of storage.KV.
type Storage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// New creates an empty in-memory store.
func New() *Storage {
	return &Storage{values: make(map[string][]byte)}
}

var _ storage.KV = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return slices.Clone(v), nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = slices.Clone(value)
	return nil
}

func (s *Storage) Close() error {
	return nil
}
