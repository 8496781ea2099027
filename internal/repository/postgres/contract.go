package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"garagebook-backend/internal/domain"
	"garagebook-backend/internal/repository"
)

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, vehicle_id, renter_name, start_date, end_date, price_per_day_cents, total_price_cents, deposit_cents, condition_report, created_on, updated_on`

func (r *contractRepository) Create(ctx context.Context, c *domain.RentalContract) error {
	query := `INSERT INTO contracts (id, vehicle_id, renter_name, start_date, end_date, price_per_day_cents, total_price_cents, deposit_cents, condition_report, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.VehicleID, c.RenterName, c.StartDate, c.EndDate,
		c.PricePerDayCents, c.TotalPriceCents, c.DepositCents, c.ConditionReport, time.Now(), time.Now())
	return err
}

func (r *contractRepository) GetByID(ctx context.Context, id string) (*domain.RentalContract, error) {
	c := &domain.RentalContract{}
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.VehicleID, &c.RenterName, &c.StartDate, &c.EndDate,
		&c.PricePerDayCents, &c.TotalPriceCents, &c.DepositCents, &c.ConditionReport, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the stored row. An unknown id affects zero rows and is a no-op.
func (r *contractRepository) Update(ctx context.Context, c *domain.RentalContract) error {
	query := `UPDATE contracts SET vehicle_id=$1, renter_name=$2, start_date=$3, end_date=$4,
	          price_per_day_cents=$5, total_price_cents=$6, deposit_cents=$7, condition_report=$8, updated_on=$9
	          WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, c.VehicleID, c.RenterName, c.StartDate, c.EndDate,
		c.PricePerDayCents, c.TotalPriceCents, c.DepositCents, c.ConditionReport, time.Now(), c.ID)
	return err
}

func (r *contractRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *contractRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE vehicle_id = $1`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContracts(rows)
}

func (r *contractRepository) List(ctx context.Context) ([]domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContracts(rows)
}

func scanContracts(rows *sql.Rows) ([]domain.RentalContract, error) {
	var contracts []domain.RentalContract
	for rows.Next() {
		var c domain.RentalContract
		if err := rows.Scan(&c.ID, &c.VehicleID, &c.RenterName, &c.StartDate, &c.EndDate,
			&c.PricePerDayCents, &c.TotalPriceCents, &c.DepositCents, &c.ConditionReport, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
