package http

import (
	"net/http"

	"garagebook-backend/internal/notify"
)

// ReminderHandler exposes the pending reminder queue for inspection
type ReminderHandler struct {
	queue *notify.Queue
}

func NewReminderHandler(queue *notify.Queue) *ReminderHandler {
	return &ReminderHandler{queue: queue}
}

// ListPending handles GET /api/v1/reminders/pending
func (h *ReminderHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.queue.Pending())
}
