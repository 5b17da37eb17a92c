package queue

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plan-widget/internal/model"
)

func pendingTasks(n int) []model.PlannedTask {
	start := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	tasks := make([]model.PlannedTask, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, model.PlannedTask{
			EventID:         fmt.Sprintf("evt-%d", i),
			Title:           fmt.Sprintf("task %d", i),
			Priority:        model.PriorityShouldDo,
			DurationMinutes: 15,
			Status:          model.StatusPending,
			StartTime:       start.Add(time.Duration(i) * time.Hour),
			EndTime:         start.Add(time.Duration(i)*time.Hour + 15*time.Minute),
		})
	}
	return tasks
}

func TestFromTasks_Empty(t *testing.T) {
	q := FromTasks(nil)

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.PendingCount())
	_, ok := q.CurrentTask()
	assert.False(t, ok)
}

func TestFromTasks_FiltersNonPending(t *testing.T) {
	tasks := pendingTasks(3)
	tasks[1].Status = model.StatusCompleted

	q := FromTasks(tasks)

	assert.Equal(t, 2, q.PendingCount())
	assert.Equal(t, []string{"evt-0", "evt-2"}, q.EventIDs())
}

func TestFromTasks_OnlyNonPendingIsEmpty(t *testing.T) {
	tasks := pendingTasks(2)
	tasks[0].Status = model.StatusSkipped
	tasks[1].Status = model.StatusSnoozed

	assert.True(t, FromTasks(tasks).IsEmpty())
}

func TestSkip_TogglesVisibleEnd(t *testing.T) {
	q := FromTasks(pendingTasks(3))

	front, ok := q.CurrentTask()
	require.True(t, ok)
	assert.Equal(t, "evt-0", front.EventID)
	assert.Equal(t, 1, q.Position())

	skipped := q.Skip()
	back, ok := skipped.CurrentTask()
	require.True(t, ok)
	assert.Equal(t, "evt-2", back.EventID)
	assert.Equal(t, 3, skipped.Position())
	assert.Equal(t, 3, skipped.PendingCount())
}

func TestSkip_IsItsOwnInverse(t *testing.T) {
	q := FromTasks(pendingTasks(4))

	assert.Equal(t, q, q.Skip().Skip())
}

func TestSkip_OnEmptyIsNoOp(t *testing.T) {
	q := FromTasks(nil)

	assert.Equal(t, q, q.Skip())
}

func TestComplete_FromFrontKeepsShowingFront(t *testing.T) {
	q := FromTasks(pendingTasks(3)).Complete()

	current, ok := q.CurrentTask()
	require.True(t, ok)
	assert.Equal(t, "evt-1", current.EventID)
	assert.Equal(t, 1, q.Position())
	assert.Equal(t, 2, q.PendingCount())
}

func TestComplete_FromBackReturnsToFront(t *testing.T) {
	q := FromTasks(pendingTasks(3)).Skip().Complete()

	current, ok := q.CurrentTask()
	require.True(t, ok)
	assert.Equal(t, "evt-0", current.EventID)
	assert.Equal(t, 1, q.Position())
	assert.Equal(t, 2, q.PendingCount())
	assert.Equal(t, []string{"evt-0", "evt-1"}, q.EventIDs())
}

func TestComplete_DrainsQueue(t *testing.T) {
	q := FromTasks(pendingTasks(5))
	for i := 0; i < 5; i++ {
		assert.Equal(t, 1, q.Position())
		q = q.Complete()
	}

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.PendingCount())
	_, ok := q.CurrentTask()
	assert.False(t, ok)

	// Further transitions stay no-ops.
	assert.Equal(t, q, q.Complete())
	assert.Equal(t, q, q.Snooze())
}

func TestSnooze_MatchesCompleteMechanics(t *testing.T) {
	base := FromTasks(pendingTasks(3)).Skip()

	assert.Equal(t, base.Complete(), base.Snooze())
}

func TestEventIDs_TracksWindow(t *testing.T) {
	q := FromTasks(pendingTasks(3)).Complete().Skip().Snooze()

	// Window narrowed from both ends, middle task remains.
	assert.Equal(t, []string{"evt-1"}, q.EventIDs())
	assert.Equal(t, 1, q.PendingCount())
}
