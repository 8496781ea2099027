// Package notify defines the local-notification scheduler collaborator: given
// a timestamp, identifier, title and body, fire an alert at that wall-clock
// time, and allow cancellation by identifier. Delivery itself is out of scope;
// the queue implementation stands in for the platform scheduler.
package notify

import (
	"context"

	"garagebook-backend/internal/domain"
)

// Scheduler schedules and cancels reminder triggers.
type Scheduler interface {
	Schedule(ctx context.Context, r domain.Reminder) error
	// Cancel removes the given identifiers. Cancelling an identifier that
	// was never scheduled is not an error.
	Cancel(ctx context.Context, ids []string) error
}
