package entities

import "time"

// Store is a merchant store whose funds the ledger partitions into an
// available and a blocked balance.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Balance bookkeeping:
//   - BlockedBalance holds funds reserved against pending payments.
//   - AvailableBalance holds funds the store may withdraw via payout.
//   - Both are maintained incrementally by the ledger and stay >= 0 as long
//     as mutations only come from real payment transitions.
type Store struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	FeeRate          float64    `json:"feeRate"`
	AvailableBalance float64    `json:"availableBalance"`
	BlockedBalance   float64    `json:"blockedBalance"`
	LastPayoutAt     *time.Time `json:"lastPayoutAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}
