package domain

import (
	"fmt"
	"time"
)

// ReminderKind identifies one of the four fixed triggers derived per contract.
type ReminderKind string

const (
	ReminderPickupEve      ReminderKind = "pickup_eve"      // 18:00 the evening before pickup
	ReminderPickupSoon     ReminderKind = "pickup_soon"     // two hours before pickup
	ReminderReturnDue      ReminderKind = "return_due"      // 09:00 on the return day
	ReminderReturnTomorrow ReminderKind = "return_tomorrow" // one day before return, same time of day
)

// ReminderKinds lists every trigger kind, in firing order.
var ReminderKinds = []ReminderKind{
	ReminderPickupEve,
	ReminderPickupSoon,
	ReminderReturnTomorrow,
	ReminderReturnDue,
}

// Reminder is a single scheduled local-notification trigger. Its identifier
// is namespaced by contract id and kind so cancellation can target exactly
// the four triggers of one contract.
type Reminder struct {
	ID         string       `json:"id"`
	ContractID string       `json:"contract_id"`
	Kind       ReminderKind `json:"kind"`
	Title      string       `json:"title"`
	Body       string       `json:"body"`
	FireAt     time.Time    `json:"fire_at"`
}

// ReminderID builds the deterministic identifier for a contract's trigger.
func ReminderID(contractID string, kind ReminderKind) string {
	return fmt.Sprintf("%s:%s", contractID, kind)
}
