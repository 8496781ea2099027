package postgres

import (
	"context"
	"testing"
	"time"

	"garagebook-backend/internal/domain"
	"garagebook-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractRepository(db)
	ctx := context.Background()

	c := &domain.RentalContract{
		ID:               "c1",
		VehicleID:        "v1",
		RenterName:       "Ada",
		StartDate:        time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC),
		PricePerDayCents: 5000,
		TotalPriceCents:  35000,
		DepositCents:     20000,
		ConditionReport:  "clean",
	}

	mock.ExpectExec("INSERT INTO contracts").
		WithArgs(c.ID, c.VehicleID, c.RenterName, c.StartDate, c.EndDate,
			c.PricePerDayCents, c.TotalPriceCents, c.DepositCents, c.ConditionReport,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(ctx, c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "vehicle_id", "renter_name", "start_date", "end_date",
			"price_per_day_cents", "total_price_cents", "deposit_cents", "condition_report", "created_on", "updated_on"}).
			AddRow("c1", "v1", "Ada", time.Now(), time.Now(), 5000, 35000, 0, "clean", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM contracts WHERE id = \\$1").
			WithArgs("c1").
			WillReturnRows(rows)

		c, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "v1", c.VehicleID)
		assert.Equal(t, int64(35000), c.TotalPriceCents)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM contracts WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestContractRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM contracts WHERE id = \\$1").
			WithArgs("c1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.Delete(ctx, "c1"))
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM contracts WHERE id = \\$1").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.Delete(ctx, "missing"), repository.ErrNotFound)
	})
}

func TestContractRepository_ListByVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "vehicle_id", "renter_name", "start_date", "end_date",
		"price_per_day_cents", "total_price_cents", "deposit_cents", "condition_report", "created_on", "updated_on"}).
		AddRow("c1", "v1", "Ada", time.Now(), time.Now(), 5000, 35000, 0, "", time.Now(), time.Now()).
		AddRow("c2", "v1", "", time.Now(), time.Now(), 5000, 35000, 0, "", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM contracts WHERE vehicle_id = \\$1").
		WithArgs("v1").
		WillReturnRows(rows)

	contracts, err := repo.ListByVehicle(ctx, "v1")
	require.NoError(t, err)
	assert.Len(t, contracts, 2)
}
