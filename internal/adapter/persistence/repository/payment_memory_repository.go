package repository

import (
	"context"
	"sync"

	"storeledger/internal/domain/entities"
	"storeledger/internal/usecase/interfaces"
)

// PaymentMemoryRepository keeps payments in an id-indexed map with a
// secondary store_id index, mirroring the store_id-index GSI of the DynamoDB
// driver. The index keeps the ledger's batch transitions and payout
// selection from scanning every payment in the process.
type PaymentMemoryRepository struct {
	mu      sync.RWMutex
	items   map[string]entities.Payment
	byStore map[string][]string
}

var _ interfaces.IPaymentRepository = (*PaymentMemoryRepository)(nil)

func NewPaymentMemoryRepository() *PaymentMemoryRepository {
	return &PaymentMemoryRepository{
		items:   make(map[string]entities.Payment),
		byStore: make(map[string][]string),
	}
}

func (r *PaymentMemoryRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
	r.byStore[p.StoreID] = append(r.byStore[p.StoreID], p.ID)
	return p, nil
}

func (r *PaymentMemoryRepository) GetByIDAndStoreID(_ context.Context, paymentID, storeID string) (entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[paymentID]
	if !ok || p.StoreID != storeID {
		return entities.Payment{}, nil
	}
	return p, nil
}

// ListByStoreID returns the store's payments in creation order.
func (r *PaymentMemoryRepository) ListByStoreID(_ context.Context, storeID string) ([]entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byStore[storeID]
	out := make([]entities.Payment, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *PaymentMemoryRepository) Update(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return entities.Payment{}, nil
	}
	r.items[p.ID] = p
	return p, nil
}
