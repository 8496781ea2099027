// Package file implements the repositories over JSON snapshot files. The
// whole collection is rewritten on every mutation, which is acceptable at
// garage scale (dozens of contracts).
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"garagebook-backend/internal/domain"
	"garagebook-backend/internal/repository"
)

const (
	contractsFile = "contracts.json"
	vehiclesFile  = "vehicles.json"
)

// Store holds both collections in memory and snapshots them to disk.
type Store struct {
	mu      sync.Mutex
	dataDir string

	contracts []domain.RentalContract
	vehicles  []domain.Vehicle
}

// Open loads (or initializes) the snapshot files under dataDir.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &Store{dataDir: dataDir}
	if err := loadSnapshot(filepath.Join(dataDir, contractsFile), &s.contracts); err != nil {
		return nil, err
	}
	if err := loadSnapshot(filepath.Join(dataDir, vehiclesFile), &s.vehicles); err != nil {
		return nil, err
	}
	return s, nil
}

// ContractRepository returns the contract collection view of the store.
func (s *Store) ContractRepository() repository.ContractRepository {
	return &contractRepository{store: s}
}

// VehicleRepository returns the vehicle collection view of the store.
func (s *Store) VehicleRepository() repository.VehicleRepository {
	return &vehicleRepository{store: s}
}

func loadSnapshot(path string, dst any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// persistContracts rewrites the full contract collection. Caller holds s.mu.
func (s *Store) persistContracts() error {
	return writeSnapshot(filepath.Join(s.dataDir, contractsFile), s.contracts)
}

// persistVehicles rewrites the full vehicle collection. Caller holds s.mu.
func (s *Store) persistVehicles() error {
	return writeSnapshot(filepath.Join(s.dataDir, vehiclesFile), s.vehicles)
}

func writeSnapshot(path string, src any) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
