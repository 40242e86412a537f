package response

import (
	"time"

	"storeledger/internal/domain/entities"
)

type StoreResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	FeeRate          float64    `json:"feeRate"`
	AvailableBalance float64    `json:"availableBalance"`
	BlockedBalance   float64    `json:"blockedBalance"`
	LastPayoutAt     *time.Time `json:"lastPayoutAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func FromStore(s entities.Store) StoreResponse {
	return StoreResponse{
		ID:               s.ID,
		Name:             s.Name,
		FeeRate:          s.FeeRate,
		AvailableBalance: s.AvailableBalance,
		BlockedBalance:   s.BlockedBalance,
		LastPayoutAt:     s.LastPayoutAt,
		CreatedAt:        s.CreatedAt,
	}
}

func FromStores(stores []entities.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, FromStore(s))
	}
	return out
}
