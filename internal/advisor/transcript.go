package advisor

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/premiumparfumes/storefront-backend/internal/genai"
)

var (
	ErrSessionNotFound = errors.New("advisor session not found")
	// ErrStreamBusy rejects a second concurrent streamed request on one
	// transcript; deltas from interleaved streams cannot be kept in order.
	ErrStreamBusy = errors.New("a streamed reply is already in flight for this session")
)

// Entry is one transcript line. Citations are only present on grounded replies.
type Entry struct {
	Role      string           `json:"role"` // "user" or "model"
	Text      string           `json:"text"`
	Citations []genai.Citation `json:"citations,omitempty"`
}

// Transcript is the append-only conversation for one session. Held only in
// memory; gone when the process restarts.
type Transcript struct {
	ID      string  `json:"sessionId"`
	Entries []Entry `json:"entries"`

	streaming bool
}

// TranscriptStore keeps per-session transcripts in process memory.
type TranscriptStore struct {
	mu       sync.Mutex
	sessions map[string]*Transcript
}

func NewTranscriptStore() *TranscriptStore {
	return &TranscriptStore{sessions: make(map[string]*Transcript)}
}

// Create opens a new session and returns its id.
func (s *TranscriptStore) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.sessions[id] = &Transcript{ID: id, Entries: []Entry{}}
	return id
}

// Get returns a copy of the transcript.
func (s *TranscriptStore) Get(id string) (Transcript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.sessions[id]
	if !ok {
		return Transcript{}, ErrSessionNotFound
	}
	cp := Transcript{ID: t.ID, Entries: make([]Entry, len(t.Entries))}
	copy(cp.Entries, t.Entries)
	return cp, nil
}

// Append adds an entry to the session.
func (s *TranscriptStore) Append(id string, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	t.Entries = append(t.Entries, e)
	return nil
}

// AppendDelta grows the text of the last entry. Deltas are applied strictly
// in the order they arrive.
func (s *TranscriptStore) AppendDelta(id, delta string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if len(t.Entries) == 0 {
		return errors.New("no entry to append to")
	}
	t.Entries[len(t.Entries)-1].Text += delta
	return nil
}

// BeginStream marks the session as having an in-flight streamed reply.
func (s *TranscriptStore) BeginStream(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if t.streaming {
		return ErrStreamBusy
	}
	t.streaming = true
	return nil
}

func (s *TranscriptStore) EndStream(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.sessions[id]; ok {
		t.streaming = false
	}
}
