package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRentalDays(t *testing.T) {
	t.Run("Whole weeks", func(t *testing.T) {
		days, err := RentalDays(date(2025, 3, 1), date(2025, 3, 8))
		assert.NoError(t, err)
		assert.Equal(t, int64(7), days)
	})

	t.Run("Partial day rounds up", func(t *testing.T) {
		start := date(2025, 3, 1)
		end := start.Add(26 * time.Hour)
		days, err := RentalDays(start, end)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), days)
	})

	t.Run("Less than one day bills one day", func(t *testing.T) {
		start := date(2025, 3, 1)
		days, err := RentalDays(start, start.Add(2*time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, int64(1), days)
	})

	t.Run("Start equals end", func(t *testing.T) {
		_, err := RentalDays(date(2025, 3, 1), date(2025, 3, 1))
		assert.Error(t, err)
	})

	t.Run("End before start", func(t *testing.T) {
		_, err := RentalDays(date(2025, 3, 8), date(2025, 3, 1))
		assert.Error(t, err)
	})
}

func TestTotalPriceCents(t *testing.T) {
	// 7 days at 50.00/day -> 350.00
	total, err := TotalPriceCents(date(2025, 3, 1), date(2025, 3, 8), 5000)
	assert.NoError(t, err)
	assert.Equal(t, int64(35000), total)
}
