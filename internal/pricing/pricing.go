package pricing

import (
	"fmt"
	"time"
)

const hoursPerDay = 24

// RentalDays returns the number of billable whole days between start and end.
// Partial days round up: any remainder past a whole day charges a full extra
// day. A period shorter than one day still bills one day.
func RentalDays(start, end time.Time) (int64, error) {
	if !start.Before(end) {
		return 0, fmt.Errorf("end date must be after start date")
	}

	hours := end.Sub(start).Hours()
	days := int64(hours / hoursPerDay)
	if hours > float64(days*hoursPerDay) {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days, nil
}

// TotalPriceCents derives a contract's total from its period and daily rate.
func TotalPriceCents(start, end time.Time, pricePerDayCents int64) (int64, error) {
	days, err := RentalDays(start, end)
	if err != nil {
		return 0, err
	}
	return days * pricePerDayCents, nil
}
