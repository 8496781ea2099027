package file

import (
	"context"

	"garagebook-backend/internal/domain"
	"garagebook-backend/internal/repository"
)

type vehicleRepository struct {
	store *Store
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vehicles = append(s.vehicles, *v)
	if err := s.persistVehicles(); err != nil {
		s.vehicles = s.vehicles[:len(s.vehicles)-1]
		return err
	}
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			v := s.vehicles[i]
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vehicles {
		if s.vehicles[i].ID == v.ID {
			prev := s.vehicles[i]
			s.vehicles[i] = *v
			if err := s.persistVehicles(); err != nil {
				s.vehicles[i] = prev
				return err
			}
			return nil
		}
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			prev := s.vehicles[i]
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			if err := s.persistVehicles(); err != nil {
				s.vehicles = append(s.vehicles[:i], append([]domain.Vehicle{prev}, s.vehicles[i:]...)...)
				return err
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out, nil
}

func (r *vehicleRepository) ListRentable(ctx context.Context) ([]domain.Vehicle, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Vehicle
	for i := range s.vehicles {
		if s.vehicles[i].Rentable() {
			out = append(out, s.vehicles[i])
		}
	}
	return out, nil
}
