package interfaces

import (
	"context"

	"storeledger/internal/domain/entities"
)

// IStoreRepository abstracts persistence for Store.
//
// GetByID returns the zero value (empty ID) when the store does not exist;
// the use case layer maps that to its not-found error. Update replaces the
// stored record wholesale, which is how balance mutations land.
//
//go:generate mockgen -source=store_repository_interface.go -destination=mocks/store_repository_mock.go -package=mock_interfaces
type IStoreRepository interface {
	Create(ctx context.Context, s entities.Store) (entities.Store, error)
	GetByID(ctx context.Context, id string) (entities.Store, error)
	List(ctx context.Context) ([]entities.Store, error)
	Update(ctx context.Context, s entities.Store) (entities.Store, error)
}
