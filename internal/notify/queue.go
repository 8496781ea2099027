package notify

import (
	"context"
	"sort"
	"sync"
	"time"

	"garagebook-backend/internal/domain"
	"garagebook-backend/internal/logger"
)

// Queue is an in-process Scheduler. Pending triggers are held keyed by
// identifier and handed out by Due once their fire time has passed; the
// dispatch job drains them on a cron tick.
type Queue struct {
	mu      sync.Mutex
	pending map[string]domain.Reminder
}

func NewQueue() *Queue {
	return &Queue{pending: make(map[string]domain.Reminder)}
}

// Schedule registers a trigger. Re-scheduling the same identifier replaces
// the previous trigger.
func (q *Queue) Schedule(ctx context.Context, r domain.Reminder) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending[r.ID] = r
	logger.Debug("Reminder scheduled", "id", r.ID, "fire_at", r.FireAt)
	return nil
}

// Cancel removes the given identifiers, ignoring ones that were never
// scheduled.
func (q *Queue) Cancel(ctx context.Context, ids []string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, id := range ids {
		delete(q.pending, id)
	}
	return nil
}

// Due removes and returns every trigger whose fire time is at or before now,
// ordered by fire time.
func (q *Queue) Due(now time.Time) []domain.Reminder {
	q.mu.Lock()
	defer q.mu.Unlock()

	var due []domain.Reminder
	for id, r := range q.pending {
		if !r.FireAt.After(now) {
			due = append(due, r)
			delete(q.pending, id)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].FireAt.Before(due[j].FireAt) })
	return due
}

// Pending returns a copy of every scheduled trigger, ordered by fire time.
func (q *Queue) Pending() []domain.Reminder {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]domain.Reminder, 0, len(q.pending))
	for _, r := range q.pending {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FireAt.Before(out[j].FireAt) })
	return out
}
