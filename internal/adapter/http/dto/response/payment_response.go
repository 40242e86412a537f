package response

import (
	"time"

	"storeledger/internal/domain/entities"
)

type FeeAmountsResponse struct {
	Fixed  float64 `json:"fixed"`
	System float64 `json:"system"`
	Store  float64 `json:"store"`
}

type PaymentResponse struct {
	ID               string             `json:"id"`
	StoreID          string             `json:"storeId"`
	Amount           float64            `json:"amount"`
	FeeAmounts       FeeAmountsResponse `json:"feeAmounts"`
	AmountAfterFee   float64            `json:"amountAfterFee"`
	BlockedAmount    float64            `json:"blockedAmount"`
	AvailableBalance float64            `json:"availableBalance"`
	Status           string             `json:"status"`
	CreatedAt        time.Time          `json:"createdAt"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:      p.ID,
		StoreID: p.StoreID,
		Amount:  p.Amount,
		FeeAmounts: FeeAmountsResponse{
			Fixed:  p.FeeAmounts.Fixed,
			System: p.FeeAmounts.System,
			Store:  p.FeeAmounts.Store,
		},
		AmountAfterFee:   p.AmountAfterFee,
		BlockedAmount:    p.BlockedAmount,
		AvailableBalance: p.AvailableBalance,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
