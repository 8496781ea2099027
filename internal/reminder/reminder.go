// Package reminder derives the four fixed notification triggers of a rental
// contract. Planning is deterministic: the same contract always yields the
// same (identifier, fire time) pairs, so cancellation can target exactly the
// four triggers.
package reminder

import (
	"fmt"
	"time"

	"garagebook-backend/internal/domain"
)

const (
	pickupEveHour = 18 // evening before pickup
	returnDueHour = 9  // morning of the return day
)

// Plan derives all four triggers from the contract's start and end dates.
// Triggers already in the past are still returned; the caller decides which
// are worth scheduling.
func Plan(c *domain.RentalContract) []domain.Reminder {
	return []domain.Reminder{
		{
			ID:         domain.ReminderID(c.ID, domain.ReminderPickupEve),
			ContractID: c.ID,
			Kind:       domain.ReminderPickupEve,
			Title:      "Rental pickup tomorrow",
			Body:       fmt.Sprintf("Handover for %s is scheduled tomorrow at %s.", renterLabel(c), c.StartDate.Format("15:04")),
			FireAt:     atHour(c.StartDate.AddDate(0, 0, -1), pickupEveHour),
		},
		{
			ID:         domain.ReminderID(c.ID, domain.ReminderPickupSoon),
			ContractID: c.ID,
			Kind:       domain.ReminderPickupSoon,
			Title:      "Rental pickup in two hours",
			Body:       fmt.Sprintf("Handover for %s starts at %s.", renterLabel(c), c.StartDate.Format("15:04")),
			FireAt:     c.StartDate.Add(-2 * time.Hour),
		},
		{
			ID:         domain.ReminderID(c.ID, domain.ReminderReturnTomorrow),
			ContractID: c.ID,
			Kind:       domain.ReminderReturnTomorrow,
			Title:      "Vehicle return due tomorrow",
			Body:       fmt.Sprintf("The rental to %s ends tomorrow at %s.", renterLabel(c), c.EndDate.Format("15:04")),
			FireAt:     c.EndDate.AddDate(0, 0, -1),
		},
		{
			ID:         domain.ReminderID(c.ID, domain.ReminderReturnDue),
			ContractID: c.ID,
			Kind:       domain.ReminderReturnDue,
			Title:      "Vehicle return due today",
			Body:       fmt.Sprintf("The rental to %s ends today at %s.", renterLabel(c), c.EndDate.Format("15:04")),
			FireAt:     atHour(c.EndDate, returnDueHour),
		},
	}
}

// CancelIDs returns the identifiers of all four triggers of a contract,
// whether or not they were ever scheduled.
func CancelIDs(contractID string) []string {
	ids := make([]string, 0, len(domain.ReminderKinds))
	for _, kind := range domain.ReminderKinds {
		ids = append(ids, domain.ReminderID(contractID, kind))
	}
	return ids
}

// atHour pins t's calendar day to a fixed local hour.
func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

func renterLabel(c *domain.RentalContract) string {
	if c.IsPrefilled() {
		return "the upcoming rental"
	}
	return c.RenterName
}
