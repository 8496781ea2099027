package repository

import (
	"context"
	"errors"

	"garagebook-backend/internal/domain"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ContractRepository persists rental contracts. All mutating calls return the
// persistence error to the caller; nothing fails silently.
type ContractRepository interface {
	Create(ctx context.Context, c *domain.RentalContract) error
	GetByID(ctx context.Context, id string) (*domain.RentalContract, error)
	// Update replaces the stored contract with the same id. Updating an
	// unknown id is a silent no-op.
	Update(ctx context.Context, c *domain.RentalContract) error
	Delete(ctx context.Context, id string) error
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalContract, error)
	List(ctx context.Context) ([]domain.RentalContract, error)
}

// VehicleRepository persists the garage vehicle registry.
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Vehicle, error)
	ListRentable(ctx context.Context) ([]domain.Vehicle, error)
}
