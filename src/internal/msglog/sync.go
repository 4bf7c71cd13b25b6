// FILE: msglog/src/internal/msglog/sync.go
package msglog

import (
	"sync"

	"msglog/src/internal/core"
	"msglog/src/internal/sink"
)

// SyncStore serializes every Store operation behind a single mutex
type SyncStore struct {
	mu    sync.Mutex
	store *Store
}

// NewSyncStore wraps store; the caller must not use store directly afterwards
func NewSyncStore(store *Store) *SyncStore {
	return &SyncStore{store: store}
}

func (s *SyncStore) Append(severity core.Severity, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Append(severity, text)
}

// AppendAndPersist appends a message and, when its severity is Fatal,
// renders the log into dst within the same critical section.
// persisted reports whether dst was written.
func (s *SyncStore) AppendAndPersist(severity core.Severity, text string, dst sink.Sink) (persisted bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Append(severity, text); err != nil {
		return false, err
	}
	if severity != core.Fatal {
		return false, nil
	}
	if err := s.store.RenderTo(dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SyncStore) Render() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Render()
}

func (s *SyncStore) RenderTo(dst sink.Sink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.RenderTo(dst)
}

func (s *SyncStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Clear()
}

func (s *SyncStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}
