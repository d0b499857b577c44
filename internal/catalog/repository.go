package catalog

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("perfume not found")
)

type Repository interface {
	List() []Perfume
	GetByID(id string) (Perfume, error)
	Create(p Perfume) (Perfume, error)
	Update(id string, p Perfume) (Perfume, error)
	Delete(id string) error
	// Replace swaps the whole catalog in one operation (snapshot saves are
	// atomic full overwrites).
	Replace(perfumes []Perfume) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and for running without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Perfume
}

func NewInMemoryRepository(seed []Perfume) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Perfume, 0, len(seed)),
	}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Perfume {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Perfume, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Perfume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Perfume{}, ErrNotFound
}

// Create prepends so the newest item renders first.
func (r *InMemoryRepository) Create(p Perfume) (Perfume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = append([]Perfume{p}, r.storage...)
	return p, nil
}

func (r *InMemoryRepository) Update(id string, p Perfume) (Perfume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			r.storage[i] = p
			return p, nil
		}
	}
	return Perfume{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Replace(perfumes []Perfume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Perfume, 0, len(perfumes))
	r.storage = append(r.storage, perfumes...)
	return nil
}
