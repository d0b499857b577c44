package sitedata

import "sync"

// SessionStore mirrors the last saved snapshot in process memory. It stands
// in for the browser's session storage: gone on restart, but consistent for
// everyone served by this process even when remote persistence silently fails.
type SessionStore struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Load returns the mirrored snapshot with ok=false when nothing was saved yet.
func (s *SessionStore) Load() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return Snapshot{}, false
	}
	return *s.snap, true
}

func (s *SessionStore) Save(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := snap
	s.snap = &cp
}
