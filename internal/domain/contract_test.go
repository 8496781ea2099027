package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	t.Run("Overlapping ranges", func(t *testing.T) {
		assert.True(t, Overlaps(day(1), day(8), day(5), day(10)))
	})

	t.Run("Disjoint ranges", func(t *testing.T) {
		assert.False(t, Overlaps(day(1), day(3), day(5), day(10)))
	})

	t.Run("Back to back is not an overlap", func(t *testing.T) {
		assert.False(t, Overlaps(day(1), day(8), day(8), day(12)))
		assert.False(t, Overlaps(day(8), day(12), day(1), day(8)))
	})

	t.Run("Containment", func(t *testing.T) {
		assert.True(t, Overlaps(day(1), day(10), day(3), day(5)))
	})

	t.Run("Symmetry", func(t *testing.T) {
		pairs := [][4]time.Time{
			{day(1), day(8), day(5), day(10)},
			{day(1), day(3), day(5), day(10)},
			{day(1), day(8), day(8), day(12)},
			{day(1), day(10), day(3), day(5)},
		}
		for _, p := range pairs {
			assert.Equal(t,
				Overlaps(p[0], p[1], p[2], p[3]),
				Overlaps(p[2], p[3], p[0], p[1]))
		}
	})
}

func TestRentalContractStatus(t *testing.T) {
	c := &RentalContract{StartDate: day(5), EndDate: day(10)}

	t.Run("Active includes both bounds", func(t *testing.T) {
		assert.True(t, c.IsActive(day(5)))
		assert.True(t, c.IsActive(day(7)))
		assert.True(t, c.IsActive(day(10)))
		assert.False(t, c.IsActive(day(4)))
		assert.False(t, c.IsActive(day(11)))
	})

	t.Run("Upcoming", func(t *testing.T) {
		assert.True(t, c.IsUpcoming(day(4)))
		assert.False(t, c.IsUpcoming(day(5)))
	})

	t.Run("Expired", func(t *testing.T) {
		assert.False(t, c.IsExpired(day(10)))
		assert.True(t, c.IsExpired(day(11)))
	})
}

func TestIsPrefilled(t *testing.T) {
	assert.True(t, (&RentalContract{}).IsPrefilled())
	assert.False(t, (&RentalContract{RenterName: "Ada"}).IsPrefilled())
}
