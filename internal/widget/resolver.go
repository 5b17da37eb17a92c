// Package widget contains the display core: the state resolver that merges
// the day plan with upcoming personal events, the single-owner controller
// driving it, and the gesture-to-action mapper.
package widget

import (
	"time"

	"plan-widget/internal/model"
	"plan-widget/internal/queue"
)

const (
	// DefaultLookahead is how far ahead personal events are considered.
	DefaultLookahead = 45 * time.Minute
	// DefaultTakeover is the horizon inside which an event fully takes
	// over the widget, pending tasks or not.
	DefaultTakeover = 15 * time.Minute
)

// Resolver turns one refresh cycle's inputs into a widget state.
type Resolver struct {
	Lookahead time.Duration
	Takeover  time.Duration
}

func NewResolver(lookahead, takeover time.Duration) Resolver {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	if takeover <= 0 {
		takeover = DefaultTakeover
	}
	return Resolver{Lookahead: lookahead, Takeover: takeover}
}

// Inputs is everything one resolution depends on. Tasks carry all of
// today's entries regardless of status; Events are already limited to the
// lookahead window, ascending, with all-day events filtered at the source.
type Inputs struct {
	Now              time.Time
	Tasks            []model.PlannedTask
	Events           []model.UserEvent
	DismissedEventID string
	Queue            *queue.TaskQueue // existing queue, nil when none
}

// Resolution is the resolved state plus the queue that produced it, so the
// owner can carry the queue into the next cycle.
type Resolution struct {
	State model.WidgetState
	Queue *queue.TaskQueue
}

// Resolve walks the priority chain: imminent event takeover, event with
// task preview, no plan, plan exhausted, next task. First match wins.
func (r Resolver) Resolve(in Inputs) Resolution {
	next, minutesUntil := r.nextEvent(in)
	pending := pendingTasks(in.Tasks)

	if next != nil && time.Duration(minutesUntil)*time.Minute < r.Takeover {
		// Full takeover. The queue is carried through untouched so the
		// user's place survives the event.
		return Resolution{State: model.UpcomingEvent{Event: *next, MinutesUntil: minutesUntil}, Queue: in.Queue}
	}

	if next != nil {
		if len(pending) == 0 {
			return Resolution{State: model.UpcomingEvent{Event: *next, MinutesUntil: minutesUntil}}
		}
		q := obtainQueue(in.Queue, pending)
		state := model.UpcomingEvent{Event: *next, MinutesUntil: minutesUntil}
		if task, ok := q.CurrentTask(); ok {
			state.TaskUnderneath = &task
		}
		return Resolution{State: state, Queue: &q}
	}

	if len(in.Tasks) == 0 {
		return Resolution{State: model.NoPlan{}}
	}

	if len(pending) == 0 {
		return Resolution{State: model.NeedMoreTasks{CompletedToday: completedCount(in.Tasks)}}
	}

	q := obtainQueue(in.Queue, pending)
	task, ok := q.CurrentTask()
	if !ok {
		// Pending tasks exist but the carried queue ran dry; the next
		// rebuild will pick them up.
		return Resolution{State: model.NeedMoreTasks{CompletedToday: completedCount(in.Tasks)}, Queue: &q}
	}
	return Resolution{
		State: model.NextTask{Task: task, Position: q.Position(), TotalPending: q.PendingCount()},
		Queue: &q,
	}
}

// nextEvent picks the earliest upcoming event that was not dismissed and
// still starts inside the lookahead. Minutes are clamped at zero so an
// event already in progress reads as "now".
func (r Resolver) nextEvent(in Inputs) (*model.UserEvent, int) {
	for _, event := range in.Events {
		if event.ID == in.DismissedEventID {
			continue
		}
		until := event.StartTime.Sub(in.Now)
		if until >= r.Lookahead {
			continue
		}
		minutes := int(until.Minutes())
		if minutes < 0 {
			minutes = 0
		}
		e := event
		return &e, minutes
	}
	return nil, 0
}

// obtainQueue reuses the carried queue while its window still matches the
// freshly fetched pending set, so a local-only skip survives a refresh;
// any change in the pending ids rebuilds from scratch.
func obtainQueue(existing *queue.TaskQueue, pending []model.PlannedTask) queue.TaskQueue {
	if existing != nil && sameIDSet(existing.EventIDs(), pending) {
		return *existing
	}
	return queue.FromTasks(pending)
}

func sameIDSet(queueIDs []string, pending []model.PlannedTask) bool {
	if len(queueIDs) != len(pending) {
		return false
	}
	ids := make(map[string]struct{}, len(queueIDs))
	for _, id := range queueIDs {
		ids[id] = struct{}{}
	}
	for _, task := range pending {
		if _, ok := ids[task.EventID]; !ok {
			return false
		}
	}
	return true
}

func pendingTasks(tasks []model.PlannedTask) []model.PlannedTask {
	var pending []model.PlannedTask
	for _, t := range tasks {
		if t.IsPending() {
			pending = append(pending, t)
		}
	}
	return pending
}

func completedCount(tasks []model.PlannedTask) int {
	count := 0
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			count++
		}
	}
	return count
}
