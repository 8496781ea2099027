package domain

import "time"

// RentalContract books one vehicle to one renter over a date range.
// Field names are part of the persisted format and must stay stable.
type RentalContract struct {
	ID               string    `json:"id"`
	VehicleID        string    `json:"vehicle_id"`
	RenterName       string    `json:"renter_name"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	TotalPriceCents  int64     `json:"total_price_cents"`
	DepositCents     int64     `json:"deposit_cents"`
	ConditionReport  string    `json:"condition_report"`
	CreatedOn        time.Time `json:"created_on"`
	UpdatedOn        time.Time `json:"updated_on"`
}

// IsPrefilled reports whether the contract is a placeholder awaiting a renter.
// An empty renter name is the prefilled sentinel, not invalid data.
func (c *RentalContract) IsPrefilled() bool {
	return c.RenterName == ""
}

// IsActive reports whether now falls within the booking, both bounds inclusive.
func (c *RentalContract) IsActive(now time.Time) bool {
	return !now.Before(c.StartDate) && !now.After(c.EndDate)
}

// IsUpcoming reports whether the booking starts after now.
func (c *RentalContract) IsUpcoming(now time.Time) bool {
	return c.StartDate.After(now)
}

// IsExpired reports whether the booking ended before now.
func (c *RentalContract) IsExpired(now time.Time) bool {
	return now.After(c.EndDate)
}

// Overlaps tests the half-open ranges [s1,e1) and [s2,e2) for a shared
// instant. A contract ending exactly when another starts does not overlap,
// so back-to-back bookings are allowed.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	if !e1.After(s2) {
		// first range ends at or before the second starts
		return false
	}
	if !s1.Before(e2) {
		// first range starts at or after the second ends
		return false
	}
	return true
}
