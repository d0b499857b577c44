package message

import "sync"

type Repository interface {
	List() []Message
	Create(m Message) (Message, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Message
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) List() []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Message, len(r.storage))
	copy(out, r.storage)
	return out
}

// Create prepends so List matches the postgres ordering (newest first).
func (r *InMemoryRepository) Create(m Message) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	r.storage = append([]Message{m}, r.storage...)
	return m, nil
}
