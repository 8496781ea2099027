package reminder

import (
	"testing"
	"time"

	"garagebook-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	start := time.Date(2025, 4, 10, 10, 30, 0, 0, time.UTC)
	end := time.Date(2025, 4, 17, 16, 0, 0, 0, time.UTC)
	c := &domain.RentalContract{
		ID:         "c1",
		VehicleID:  "v1",
		RenterName: "Ada",
		StartDate:  start,
		EndDate:    end,
	}

	reminders := Plan(c)
	require.Len(t, reminders, 4)

	byKind := map[domain.ReminderKind]domain.Reminder{}
	for _, r := range reminders {
		byKind[r.Kind] = r
		assert.Equal(t, "c1", r.ContractID)
		assert.Equal(t, domain.ReminderID("c1", r.Kind), r.ID)
	}

	t.Run("Evening before pickup at 18:00", func(t *testing.T) {
		assert.Equal(t, time.Date(2025, 4, 9, 18, 0, 0, 0, time.UTC),
			byKind[domain.ReminderPickupEve].FireAt)
	})

	t.Run("Two hours before pickup", func(t *testing.T) {
		assert.Equal(t, start.Add(-2*time.Hour),
			byKind[domain.ReminderPickupSoon].FireAt)
	})

	t.Run("Return day at 09:00", func(t *testing.T) {
		assert.Equal(t, time.Date(2025, 4, 17, 9, 0, 0, 0, time.UTC),
			byKind[domain.ReminderReturnDue].FireAt)
	})

	t.Run("Day before return keeps the end time of day", func(t *testing.T) {
		assert.Equal(t, time.Date(2025, 4, 16, 16, 0, 0, 0, time.UTC),
			byKind[domain.ReminderReturnTomorrow].FireAt)
	})
}

func TestPlanIsDeterministic(t *testing.T) {
	c := &domain.RentalContract{
		ID:        "c1",
		StartDate: time.Date(2025, 4, 10, 10, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 4, 17, 10, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, Plan(c), Plan(c))
}

func TestCancelIDs(t *testing.T) {
	ids := CancelIDs("c1")
	assert.ElementsMatch(t, []string{
		"c1:pickup_eve",
		"c1:pickup_soon",
		"c1:return_tomorrow",
		"c1:return_due",
	}, ids)
}
