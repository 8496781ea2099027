package service

import (
	"context"

	"garagebook-backend/internal/clock"
	"garagebook-backend/internal/domain"
	"garagebook-backend/internal/gating"
	"garagebook-backend/internal/logger"
	"garagebook-backend/internal/repository"

	"github.com/google/uuid"
)

type vehicleService struct {
	vehicles  repository.VehicleRepository
	contracts ContractService
	clock     clock.Clock
	limits    gating.Limits
}

func NewVehicleService(vehicles repository.VehicleRepository, contracts ContractService, clk clock.Clock, limits gating.Limits) VehicleService {
	return &vehicleService{
		vehicles:  vehicles,
		contracts: contracts,
		clock:     clk,
		limits:    limits,
	}
}

func (s *vehicleService) Add(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	existing, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	if !s.limits.AllowsVehicles(len(existing)) {
		return nil, domain.NewValidationError("vehicle limit reached for this plan")
	}

	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	now := s.clock.Now()
	v.CreatedOn = now
	v.UpdatedOn = now
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}

	if v.Rentable() {
		if _, err := s.contracts.AutoCreatePrefilledContract(ctx, v.ID); err != nil {
			logger.Error("Failed to auto-create prefilled contract", "vehicle_id", v.ID, "error", err)
		}
	}
	return v, nil
}

func (s *vehicleService) Update(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	existing, err := s.vehicles.GetByID(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	wasRentable := existing.Rentable()

	v.CreatedOn = existing.CreatedOn
	v.UpdatedOn = s.clock.Now()
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}

	// A vehicle turning rentable gets its ready placeholder.
	if !wasRentable && v.Rentable() {
		if _, err := s.contracts.AutoCreatePrefilledContract(ctx, v.ID); err != nil {
			logger.Error("Failed to auto-create prefilled contract", "vehicle_id", v.ID, "error", err)
		}
	}
	return v, nil
}

// Delete removes the vehicle only. Its contracts are deliberately orphaned,
// not cascade-deleted; callers that want a full purge delete contracts first.
func (s *vehicleService) Delete(ctx context.Context, id string) error {
	return s.vehicles.Delete(ctx, id)
}

func (s *vehicleService) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicles.GetByID(ctx, id)
}

func (s *vehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx)
}
