package repository

import (
	"context"
	"sync"

	"storeledger/internal/domain/entities"
	"storeledger/internal/usecase/interfaces"
)

// StoreMemoryRepository keeps stores in an id-indexed map. It is the default
// storage driver; lookups are O(1) instead of scanning a slice.
type StoreMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Store
	order []string
}

var _ interfaces.IStoreRepository = (*StoreMemoryRepository)(nil)

func NewStoreMemoryRepository() *StoreMemoryRepository {
	return &StoreMemoryRepository{items: make(map[string]entities.Store)}
}

func (r *StoreMemoryRepository) Create(_ context.Context, s entities.Store) (entities.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[s.ID] = s
	r.order = append(r.order, s.ID)
	return s, nil
}

func (r *StoreMemoryRepository) GetByID(_ context.Context, id string) (entities.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

// List returns stores in creation order.
func (r *StoreMemoryRepository) List(_ context.Context) ([]entities.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Store, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *StoreMemoryRepository) Update(_ context.Context, s entities.Store) (entities.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[s.ID]; !ok {
		return entities.Store{}, nil
	}
	r.items[s.ID] = s
	return s, nil
}
