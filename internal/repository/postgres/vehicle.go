package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"garagebook-backend/internal/domain"
	"garagebook-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, name, make, model, is_available_for_rent, rental_price_cents, deposit_cents, minimum_rental_days, created_on, updated_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (id, name, make, model, is_available_for_rent, rental_price_cents, deposit_cents, minimum_rental_days, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, v.ID, v.Name, v.Make, v.Model, v.IsAvailableForRent,
		v.RentalPriceCents, v.DepositCents, v.MinimumRentalDays, time.Now(), time.Now())
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Name, &v.Make, &v.Model, &v.IsAvailableForRent,
		&v.RentalPriceCents, &v.DepositCents, &v.MinimumRentalDays, &v.CreatedOn, &v.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET name=$1, make=$2, model=$3, is_available_for_rent=$4,
	          rental_price_cents=$5, deposit_cents=$6, minimum_rental_days=$7, updated_on=$8
	          WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, v.Name, v.Make, v.Model, v.IsAvailableForRent,
		v.RentalPriceCents, v.DepositCents, v.MinimumRentalDays, time.Now(), v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func (r *vehicleRepository) ListRentable(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE is_available_for_rent = TRUE AND rental_price_cents > 0`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func scanVehicles(rows *sql.Rows) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Make, &v.Model, &v.IsAvailableForRent,
			&v.RentalPriceCents, &v.DepositCents, &v.MinimumRentalDays, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}
