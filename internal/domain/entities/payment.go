package entities

import "time"

// PaymentStatus is the payment lifecycle state.
//
// Legal transitions:
//   - received -> processed -> completed
//   - received -> rejected
//
// Completed and rejected are terminal. Processed and completed payments are
// payout-eligible.
type PaymentStatus string

const (
	PaymentStatusReceived  PaymentStatus = "received"
	PaymentStatusProcessed PaymentStatus = "processed"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRejected  PaymentStatus = "rejected"
)

// FeeAmounts is the fee breakdown snapshotted at purchase time. Later fee
// configuration changes never touch an existing payment.
type FeeAmounts struct {
	Fixed  float64 `json:"fixed"`
	System float64 `json:"system"`
	Store  float64 `json:"store"`
}

// Payment is a single payment owned by a store.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (store_id-index): store_id
//
// Money fields:
//   - AmountAfterFee = Amount - system fee - store fee - fixed fee.
//   - BlockedAmount is the hold-back released only on completion.
//   - AvailableBalance is the portion currently withdrawable; it is zeroed
//     when a payout sweeps the payment.
type Payment struct {
	ID               string        `json:"id"`
	StoreID          string        `json:"storeId"`
	Amount           float64       `json:"amount"`
	FeeAmounts       FeeAmounts    `json:"feeAmounts"`
	AmountAfterFee   float64       `json:"amountAfterFee"`
	BlockedAmount    float64       `json:"blockedAmount"`
	AvailableBalance float64       `json:"availableBalance"`
	Status           PaymentStatus `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
}
