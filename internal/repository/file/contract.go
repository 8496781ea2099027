package file

import (
	"context"

	"garagebook-backend/internal/domain"
	"garagebook-backend/internal/repository"
)

type contractRepository struct {
	store *Store
}

func (r *contractRepository) Create(ctx context.Context, c *domain.RentalContract) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contracts = append(s.contracts, *c)
	if err := s.persistContracts(); err != nil {
		// roll back the in-memory append so memory and disk stay in sync
		s.contracts = s.contracts[:len(s.contracts)-1]
		return err
	}
	return nil
}

func (r *contractRepository) GetByID(ctx context.Context, id string) (*domain.RentalContract, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contracts {
		if s.contracts[i].ID == id {
			c := s.contracts[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Update replaces the stored contract in place. An unknown id is a no-op.
func (r *contractRepository) Update(ctx context.Context, c *domain.RentalContract) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contracts {
		if s.contracts[i].ID == c.ID {
			prev := s.contracts[i]
			s.contracts[i] = *c
			if err := s.persistContracts(); err != nil {
				s.contracts[i] = prev
				return err
			}
			return nil
		}
	}
	return nil
}

func (r *contractRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contracts {
		if s.contracts[i].ID == id {
			prev := s.contracts[i]
			s.contracts = append(s.contracts[:i], s.contracts[i+1:]...)
			if err := s.persistContracts(); err != nil {
				s.contracts = append(s.contracts[:i], append([]domain.RentalContract{prev}, s.contracts[i:]...)...)
				return err
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *contractRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalContract, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.RentalContract
	for i := range s.contracts {
		if s.contracts[i].VehicleID == vehicleID {
			out = append(out, s.contracts[i])
		}
	}
	return out, nil
}

func (r *contractRepository) List(ctx context.Context) ([]domain.RentalContract, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.RentalContract, len(s.contracts))
	copy(out, s.contracts)
	return out, nil
}
