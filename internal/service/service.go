package service

import (
	"context"
	"time"

	"garagebook-backend/internal/domain"
)

// ContractService manages the rental contract lifecycle: availability
// checking, validation, CRUD, prefilled placeholders and derived reminders.
type ContractService interface {
	Add(ctx context.Context, c *domain.RentalContract) (*domain.RentalContract, error)
	Update(ctx context.Context, c *domain.RentalContract) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.RentalContract, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalContract, error)
	ActiveContracts(ctx context.Context) ([]domain.RentalContract, error)
	UpcomingContracts(ctx context.Context) ([]domain.RentalContract, error)
	ExpiredContracts(ctx context.Context) ([]domain.RentalContract, error)

	// IsAvailable tests the vehicle's calendar for a free [start,end) slot.
	// excludeContractID skips one contract, so an edit never conflicts with
	// its own stored state. Callers validate start < end first.
	IsAvailable(ctx context.Context, vehicleID string, start, end time.Time, excludeContractID string) (bool, error)

	// Validate runs the business rules in order, short-circuiting on the
	// first failure: date order, availability, positive price. A failure is
	// reported as *domain.ValidationError.
	Validate(ctx context.Context, c *domain.RentalContract) error

	CreatePrefilledContract(ctx context.Context, vehicleID string) (*domain.RentalContract, error)
	// AutoCreatePrefilledContract creates a placeholder when a vehicle
	// becomes rentable. It returns (nil, nil) when any guard declines:
	// vehicle not rentable, placeholder already present, or a real booking
	// still in force.
	AutoCreatePrefilledContract(ctx context.Context, vehicleID string) (*domain.RentalContract, error)
	HasPrefilledContract(ctx context.Context, vehicleID string) (bool, error)
}

// VehicleService manages the garage vehicle registry.
type VehicleService interface {
	Add(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
}
