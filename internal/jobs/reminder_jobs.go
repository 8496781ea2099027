package jobs

import (
	"garagebook-backend/internal/logger"
)

// DispatchDueReminders drains the reminder queue and fires every trigger
// whose wall-clock time has passed. Dispatch here is the local-notification
// hand-off point; delivery to a device is outside this service.
func (jr *JobRunner) DispatchDueReminders() {
	jr.runWithRecovery("DispatchDueReminders", func() {
		due := jr.queue.Due(jr.clock.Now())
		for _, r := range due {
			logger.Info("Reminder fired",
				"reminder_id", r.ID,
				"contract_id", r.ContractID,
				"kind", r.Kind,
				"title", r.Title,
				"fire_at", r.FireAt)
		}
		if len(due) > 0 {
			logger.Info("Due reminders dispatched", "count", len(due))
		}
	})
}
