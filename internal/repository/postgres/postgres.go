package postgres

import (
	"database/sql"

	"garagebook-backend/internal/repository"

	_ "github.com/lib/pq"
)

// Store bundles the PostgreSQL-backed repositories. It is the indexed
// alternative to the JSON snapshot store for larger datasets.
type Store struct {
	db *sql.DB
	repository.ContractRepository
	repository.VehicleRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		ContractRepository: NewContractRepository(db),
		VehicleRepository:  NewVehicleRepository(db),
	}
}
