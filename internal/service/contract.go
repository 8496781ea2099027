package service

import (
	"context"
	"fmt"
	"time"

	"garagebook-backend/internal/clock"
	"garagebook-backend/internal/domain"
	"garagebook-backend/internal/gating"
	"garagebook-backend/internal/logger"
	"garagebook-backend/internal/notify"
	"garagebook-backend/internal/pricing"
	"garagebook-backend/internal/reminder"
	"garagebook-backend/internal/repository"

	"github.com/google/uuid"
)

// prefilledConditionReport is the boilerplate handover text of placeholder
// contracts until a real inspection replaces it.
const prefilledConditionReport = "Vehicle handed over clean with a full tank and no visible damage. Condition to be confirmed at pickup."

type contractService struct {
	contracts repository.ContractRepository
	vehicles  repository.VehicleRepository
	notifier  notify.Scheduler
	clock     clock.Clock
	limits    gating.Limits
}

func NewContractService(
	contracts repository.ContractRepository,
	vehicles repository.VehicleRepository,
	notifier notify.Scheduler,
	clk clock.Clock,
	limits gating.Limits,
) ContractService {
	return &contractService{
		contracts: contracts,
		vehicles:  vehicles,
		notifier:  notifier,
		clock:     clk,
		limits:    limits,
	}
}

func (s *contractService) Add(ctx context.Context, c *domain.RentalContract) (*domain.RentalContract, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	if err := s.Validate(ctx, c); err != nil {
		return nil, err
	}

	existing, err := s.contracts.ListByVehicle(ctx, c.VehicleID)
	if err != nil {
		return nil, err
	}
	if !s.limits.AllowsContracts(len(existing)) {
		return nil, domain.NewValidationError("contract limit reached for this vehicle")
	}

	if c.TotalPriceCents == 0 {
		total, err := pricing.TotalPriceCents(c.StartDate, c.EndDate, c.PricePerDayCents)
		if err != nil {
			return nil, err
		}
		c.TotalPriceCents = total
	}

	now := s.clock.Now()
	c.CreatedOn = now
	c.UpdatedOn = now

	if err := s.contracts.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to persist contract: %w", err)
	}

	s.scheduleReminders(ctx, c)
	return c, nil
}

func (s *contractService) Update(ctx context.Context, c *domain.RentalContract) error {
	existing, err := s.contracts.GetByID(ctx, c.ID)
	if err == repository.ErrNotFound {
		// updating an unknown contract is a silent no-op
		logger.Debug("Update ignored, contract not found", "contract_id", c.ID)
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.Validate(ctx, c); err != nil {
		return err
	}

	if c.TotalPriceCents == 0 {
		total, err := pricing.TotalPriceCents(c.StartDate, c.EndDate, c.PricePerDayCents)
		if err != nil {
			return err
		}
		c.TotalPriceCents = total
	}

	c.CreatedOn = existing.CreatedOn
	c.UpdatedOn = s.clock.Now()

	if err := s.contracts.Update(ctx, c); err != nil {
		return fmt.Errorf("failed to persist contract: %w", err)
	}

	if err := s.notifier.Cancel(ctx, reminder.CancelIDs(c.ID)); err != nil {
		logger.Error("Failed to cancel reminders", "contract_id", c.ID, "error", err)
	}
	s.scheduleReminders(ctx, c)
	return nil
}

func (s *contractService) Delete(ctx context.Context, id string) error {
	if err := s.notifier.Cancel(ctx, reminder.CancelIDs(id)); err != nil {
		logger.Error("Failed to cancel reminders", "contract_id", id, "error", err)
	}
	if err := s.contracts.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

func (s *contractService) Get(ctx context.Context, id string) (*domain.RentalContract, error) {
	return s.contracts.GetByID(ctx, id)
}

func (s *contractService) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalContract, error) {
	return s.contracts.ListByVehicle(ctx, vehicleID)
}

func (s *contractService) ActiveContracts(ctx context.Context) ([]domain.RentalContract, error) {
	return s.filter(ctx, (*domain.RentalContract).IsActive)
}

func (s *contractService) UpcomingContracts(ctx context.Context) ([]domain.RentalContract, error) {
	return s.filter(ctx, (*domain.RentalContract).IsUpcoming)
}

func (s *contractService) ExpiredContracts(ctx context.Context) ([]domain.RentalContract, error) {
	return s.filter(ctx, (*domain.RentalContract).IsExpired)
}

func (s *contractService) filter(ctx context.Context, keep func(*domain.RentalContract, time.Time) bool) ([]domain.RentalContract, error) {
	all, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	var out []domain.RentalContract
	for i := range all {
		if keep(&all[i], now) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (s *contractService) IsAvailable(ctx context.Context, vehicleID string, start, end time.Time, excludeContractID string) (bool, error) {
	contracts, err := s.contracts.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	for i := range contracts {
		if contracts[i].ID == excludeContractID {
			continue
		}
		if domain.Overlaps(start, end, contracts[i].StartDate, contracts[i].EndDate) {
			return false, nil
		}
	}
	return true, nil
}

func (s *contractService) Validate(ctx context.Context, c *domain.RentalContract) error {
	if !c.StartDate.Before(c.EndDate) {
		return domain.NewValidationError(domain.ReasonDateOrder)
	}

	available, err := s.IsAvailable(ctx, c.VehicleID, c.StartDate, c.EndDate, c.ID)
	if err != nil {
		return err
	}
	if !available {
		return domain.NewValidationError(domain.ReasonUnavailable)
	}

	if c.PricePerDayCents <= 0 {
		return domain.NewValidationError(domain.ReasonInvalidPrice)
	}

	// An empty renter name is deliberately not validated: it marks a
	// prefilled placeholder contract.
	return nil
}

func (s *contractService) CreatePrefilledContract(ctx context.Context, vehicleID string) (*domain.RentalContract, error) {
	v, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !v.Rentable() {
		return nil, domain.NewValidationError("vehicle is not available for rent")
	}

	existing, err := s.contracts.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !s.limits.AllowsContracts(len(existing)) {
		return nil, domain.NewValidationError("contract limit reached for this vehicle")
	}

	now := s.clock.Now()
	start := now
	end := now.AddDate(0, 0, v.RentalDaysOrDefault())

	total, err := pricing.TotalPriceCents(start, end, v.RentalPriceCents)
	if err != nil {
		return nil, err
	}

	c := &domain.RentalContract{
		ID:               uuid.NewString(),
		VehicleID:        vehicleID,
		RenterName:       "",
		StartDate:        start,
		EndDate:          end,
		PricePerDayCents: v.RentalPriceCents,
		TotalPriceCents:  total,
		DepositCents:     v.DepositCents,
		ConditionReport:  prefilledConditionReport,
		CreatedOn:        now,
		UpdatedOn:        now,
	}

	if err := s.contracts.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to persist contract: %w", err)
	}

	s.scheduleReminders(ctx, c)
	logger.Info("Prefilled contract created", "contract_id", c.ID, "vehicle_id", vehicleID)
	return c, nil
}

func (s *contractService) AutoCreatePrefilledContract(ctx context.Context, vehicleID string) (*domain.RentalContract, error) {
	v, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !v.Rentable() {
		return nil, nil
	}

	contracts, err := s.contracts.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	for i := range contracts {
		if contracts[i].IsPrefilled() {
			// at most one ready placeholder per vehicle
			return nil, nil
		}
		if contracts[i].EndDate.Before(now) {
			continue
		}
		// a real booking is active or upcoming; never stack a placeholder
		// on top of it
		return nil, nil
	}

	return s.CreatePrefilledContract(ctx, vehicleID)
}

func (s *contractService) HasPrefilledContract(ctx context.Context, vehicleID string) (bool, error) {
	contracts, err := s.contracts.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	for i := range contracts {
		if contracts[i].IsPrefilled() {
			return true, nil
		}
	}
	return false, nil
}

// scheduleReminders plans the contract's four triggers and schedules the ones
// still in the future. Triggers whose instant already passed are skipped
// silently; a scheduler failure is logged and does not fail the mutation.
func (s *contractService) scheduleReminders(ctx context.Context, c *domain.RentalContract) {
	now := s.clock.Now()
	for _, r := range reminder.Plan(c) {
		if !r.FireAt.After(now) {
			continue
		}
		if err := s.notifier.Schedule(ctx, r); err != nil {
			logger.Error("Failed to schedule reminder", "reminder_id", r.ID, "error", err)
		}
	}
}
