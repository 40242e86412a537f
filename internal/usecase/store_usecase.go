package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"storeledger/internal/domain/entities"
	"storeledger/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrStoreNotFound       = errors.New("store not found")
	ErrInvalidStoreID      = errors.New("invalid store id")
	ErrInvalidStoreName    = errors.New("invalid store name")
	ErrInvalidStoreFeeRate = errors.New("invalid store fee rate")
)

// IStoreUseCase exposes merchant store operations.
//
// Stores are created with zero balances and are never deleted; their balance
// fields are mutated only by the payment ledger.

type IStoreUseCase interface {
	Create(ctx context.Context, name string, feeRate float64) (entities.Store, error)
	List(ctx context.Context) ([]entities.Store, error)
	GetByID(ctx context.Context, id string) (entities.Store, error)
}

type StoreUseCase struct {
	repo interfaces.IStoreRepository
}

var _ IStoreUseCase = (*StoreUseCase)(nil)

func NewStoreUseCase(repo interfaces.IStoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

func (u *StoreUseCase) Create(ctx context.Context, name string, feeRate float64) (entities.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Store{}, ErrInvalidStoreName
	}
	if feeRate < 0 || feeRate > 100 {
		return entities.Store{}, ErrInvalidStoreFeeRate
	}

	s := entities.Store{
		ID:        uuid.NewString(),
		Name:      name,
		FeeRate:   feeRate,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Store{}, err
	}
	log.Printf("[store][usecase] created store_id=%s name=%q fee_rate=%.2f", created.ID, created.Name, created.FeeRate)
	return created, nil
}

func (u *StoreUseCase) List(ctx context.Context) ([]entities.Store, error) {
	return u.repo.List(ctx)
}

func (u *StoreUseCase) GetByID(ctx context.Context, id string) (entities.Store, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Store{}, ErrInvalidStoreID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Store{}, err
	}
	if s.ID == "" {
		return entities.Store{}, ErrStoreNotFound
	}
	return s, nil
}
