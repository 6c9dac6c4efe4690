package store

import (
	"context"
	"sync"

	"github.com/twiny/webring"
)

type (
	defaultInMemoryStore struct {
		mu    sync.RWMutex
		table map[string][]string
	}
)

func NewInMemoryStore() webring.Store {
	return &defaultInMemoryStore{
		table: make(map[string][]string),
	}
}
func (s *defaultInMemoryStore) Put(ctx context.Context, ring string, members []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]string, len(members))
	copy(list, members)
	s.table[ring] = list

	return nil
}
func (s *defaultInMemoryStore) Get(ctx context.Context, ring string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, found := s.table[ring]
	if !found {
		return nil, webring.ErrRingNotFound
	}

	members := make([]string, len(list))
	copy(members, list)

	return members, nil
}
func (s *defaultInMemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.table = make(map[string][]string)
	return nil
}
