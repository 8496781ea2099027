package notify

import (
	"context"
	"testing"
	"time"

	"garagebook-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reminderAt(id string, fireAt time.Time) domain.Reminder {
	return domain.Reminder{ID: id, ContractID: "c1", Kind: domain.ReminderPickupSoon, FireAt: fireAt}
}

func TestQueueDue(t *testing.T) {
	q := NewQueue()
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, q.Schedule(ctx, reminderAt("a", now.Add(-time.Hour))))
	require.NoError(t, q.Schedule(ctx, reminderAt("b", now)))
	require.NoError(t, q.Schedule(ctx, reminderAt("c", now.Add(time.Hour))))

	due := q.Due(now)
	require.Len(t, due, 2)
	assert.Equal(t, "a", due[0].ID)
	assert.Equal(t, "b", due[1].ID)

	// drained triggers do not fire twice
	assert.Empty(t, q.Due(now))
	assert.Len(t, q.Pending(), 1)
}

func TestQueueCancelIsIdempotent(t *testing.T) {
	q := NewQueue()
	ctx := context.Background()

	require.NoError(t, q.Schedule(ctx, reminderAt("a", time.Now().Add(time.Hour))))

	assert.NoError(t, q.Cancel(ctx, []string{"a", "never-scheduled"}))
	assert.NoError(t, q.Cancel(ctx, []string{"a"}))
	assert.Empty(t, q.Pending())
}

func TestQueueRescheduleReplaces(t *testing.T) {
	q := NewQueue()
	ctx := context.Background()
	later := time.Now().Add(2 * time.Hour)

	require.NoError(t, q.Schedule(ctx, reminderAt("a", time.Now().Add(time.Hour))))
	require.NoError(t, q.Schedule(ctx, reminderAt("a", later)))

	pending := q.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, later, pending[0].FireAt)
}
