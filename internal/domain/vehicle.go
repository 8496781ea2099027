package domain

import "time"

// DefaultMinimumRentalDays is used when a vehicle does not specify its own
// minimum rental period.
const DefaultMinimumRentalDays = 7

// Vehicle is the read-only view of a garage vehicle this component needs.
// The vehicle entity itself is owned by the garage registry.
type Vehicle struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Make               string    `json:"make"`
	Model              string    `json:"model"`
	IsAvailableForRent bool      `json:"is_available_for_rent"`
	RentalPriceCents   int64     `json:"rental_price_cents"`
	DepositCents       int64     `json:"deposit_cents"`
	MinimumRentalDays  int       `json:"minimum_rental_days"`
	CreatedOn          time.Time `json:"created_on"`
	UpdatedOn          time.Time `json:"updated_on"`
}

// Rentable reports whether prefilled contracts may be created for the vehicle.
func (v *Vehicle) Rentable() bool {
	return v.IsAvailableForRent && v.RentalPriceCents > 0
}

// RentalDaysOrDefault returns the vehicle's minimum rental period, falling
// back to DefaultMinimumRentalDays when unset.
func (v *Vehicle) RentalDaysOrDefault() int {
	if v.MinimumRentalDays > 0 {
		return v.MinimumRentalDays
	}
	return DefaultMinimumRentalDays
}
