// Package queue holds the in-memory cycling state over today's pending
// tasks. A TaskQueue never reorders or drops its backing list; transitions
// only narrow the [front, back] window and toggle which end is visible, and
// every transition returns a new value so states compare with ==-style
// equality in tests.
package queue

import "plan-widget/internal/model"

// TaskQueue is a value-semantics state machine over an ordered list of
// pending tasks, hardest-first as supplied by the planner. The queue is
// empty exactly when front > back or the backing list is empty.
type TaskQueue struct {
	tasks        []model.PlannedTask
	front        int
	back         int
	showingFront bool
}

// FromTasks builds a fresh queue from a task list, keeping only tasks whose
// status is pending. The window spans the whole filtered list and the hard
// end is shown first.
func FromTasks(tasks []model.PlannedTask) TaskQueue {
	var pending []model.PlannedTask
	for _, t := range tasks {
		if t.IsPending() {
			pending = append(pending, t)
		}
	}

	back := len(pending) - 1
	if back < 0 {
		back = 0
	}
	return TaskQueue{tasks: pending, front: 0, back: back, showingFront: true}
}

// IsEmpty reports whether no unconsumed task remains.
func (q TaskQueue) IsEmpty() bool {
	return len(q.tasks) == 0 || q.front > q.back
}

// PendingCount is the number of tasks still inside the window.
func (q TaskQueue) PendingCount() int {
	if q.IsEmpty() {
		return 0
	}
	return q.back - q.front + 1
}

// CurrentTask returns the task at the visible end of the window.
func (q TaskQueue) CurrentTask() (model.PlannedTask, bool) {
	if q.IsEmpty() {
		return model.PlannedTask{}, false
	}
	if q.showingFront {
		return q.tasks[q.front], true
	}
	return q.tasks[q.back], true
}

// Position is the 1-based slot to display: 1 for the hard end,
// PendingCount for the easy end.
func (q TaskQueue) Position() int {
	if q.IsEmpty() {
		return 0
	}
	if q.showingFront {
		return 1
	}
	return q.PendingCount()
}

// Skip presents the opposite extreme of the remaining window. It touches no
// persisted state and is its own inverse.
func (q TaskQueue) Skip() TaskQueue {
	if q.IsEmpty() {
		return q
	}
	q.showingFront = !q.showingFront
	return q
}

// Complete narrows the window from the visible end and returns to showing
// the hard end.
func (q TaskQueue) Complete() TaskQueue {
	return q.consume()
}

// Snooze narrows the window exactly like Complete; the two differ only in
// the external write that accompanies them.
func (q TaskQueue) Snooze() TaskQueue {
	return q.consume()
}

func (q TaskQueue) consume() TaskQueue {
	if q.IsEmpty() {
		return q
	}
	if q.showingFront {
		q.front++
	} else {
		q.back--
		q.showingFront = true
	}
	return q
}

// EventIDs lists the event ids still inside the window, front to back. The
// controller compares this against a freshly fetched pending set to decide
// whether the queue is stale.
func (q TaskQueue) EventIDs() []string {
	if q.IsEmpty() {
		return nil
	}
	ids := make([]string, 0, q.PendingCount())
	for i := q.front; i <= q.back; i++ {
		ids = append(ids, q.tasks[i].EventID)
	}
	return ids
}
