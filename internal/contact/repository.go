package contact

import "sync"

// Repository provides access to the single contact record.
type Repository interface {
	Get() (Info, error)
	Set(info Info) error
}

type InMemoryRepository struct {
	mu   sync.RWMutex
	info Info
}

func NewInMemoryRepository(seed Info) *InMemoryRepository {
	return &InMemoryRepository{info: seed}
}

func (r *InMemoryRepository) Get() (Info, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.info, nil
}

func (r *InMemoryRepository) Set(info Info) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.info = info
	return nil
}
