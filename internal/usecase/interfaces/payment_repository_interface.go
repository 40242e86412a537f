package interfaces

import (
	"context"

	"storeledger/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for Payment.
//
// ListByStoreID is the hot path for the ledger's batch transitions and for
// payout selection; implementations keep a store_id index (a secondary map in
// memory, a GSI in DynamoDB) instead of scanning.
//
//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_mock.go -package=mock_interfaces
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByIDAndStoreID(ctx context.Context, paymentID, storeID string) (entities.Payment, error)
	ListByStoreID(ctx context.Context, storeID string) ([]entities.Payment, error)
	Update(ctx context.Context, p entities.Payment) (entities.Payment, error)
}
