package translations

import (
	"errors"
	"sync"
)

var (
	ErrLangNotFound = errors.New("language not found")
)

type Repository interface {
	Get() Bundle
	Replace(b Bundle) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	bundle Bundle
}

func NewInMemoryRepository(seed Bundle) *InMemoryRepository {
	return &InMemoryRepository{bundle: seed.Clone()}
}

func (r *InMemoryRepository) Get() Bundle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bundle.Clone()
}

func (r *InMemoryRepository) Replace(b Bundle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bundle = b.Clone()
	return nil
}
