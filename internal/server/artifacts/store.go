// Package artifacts keeps the redacted outputs of the current batch in
// memory, keyed by filename. The store holds exactly one batch at a
// time; clients are expected to fetch and clear promptly.
package artifacts

import "sync"

type Store struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewStore() *Store {
	return &Store{files: make(map[string][]byte)}
}

// Put stores data under name, replacing any previous artifact with the
// same name.
func (s *Store) Put(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = data
}

// Get returns the artifact bytes for name.
func (s *Store) Get(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[name]
	return data, ok
}

// Len reports how many artifacts are currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

// Clear drops every stored artifact.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = make(map[string][]byte)
}
