package widget

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"plan-widget/internal/calendar"
	"plan-widget/internal/model"
	"plan-widget/internal/queue"
)

// Fixed user-facing messages for the two failure classes.
const (
	PermissionDeniedMessage = "Calendar access is needed to show your plan. Grant it in settings."
	GenericErrorMessage     = "Could not refresh your plan. It will retry shortly."
)

// Controller is the single owner of all display state: the carried queue,
// the dismissal id and the last resolved widget state. Refreshes arrive
// from the periodic timer and from user gestures; the mutex serializes
// them so transitions never interleave.
type Controller struct {
	gateway  calendar.Gateway
	resolver Resolver
	now      func() time.Time

	mu         sync.Mutex
	queue      *queue.TaskQueue
	dismissed  string
	state      model.WidgetState
	hadSession bool
}

func NewController(gateway calendar.Gateway, resolver Resolver) *Controller {
	return &Controller{
		gateway:  gateway,
		resolver: resolver,
		now:      time.Now,
		state:    model.Loading{},
	}
}

// State returns the last resolved widget state without refreshing.
func (c *Controller) State() model.WidgetState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Refresh fetches, resolves and stores a new widget state.
func (c *Controller) Refresh(ctx context.Context) model.WidgetState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

// CompleteCurrent writes the completed status for the visible task,
// advances the queue and refreshes. Without a current task it is a no-op.
func (c *Controller) CompleteCurrent(ctx context.Context) model.WidgetState {
	c.mu.Lock()
	defer c.mu.Unlock()

	task, ok := c.currentTaskLocked()
	if !ok {
		return c.state
	}

	if c.gateway.WriteTaskStatus(ctx, task.EventID, model.StatusCompleted, nil) {
		next := c.queue.Complete()
		c.queue = &next
	} else {
		log.Printf("complete write failed for %s, keeping queue position", task.EventID)
	}
	return c.refreshLocked(ctx)
}

// SkipCurrent flips the queue to its other end. Local only: no write
// happens and the refresh below reuses the queue, so the flip sticks.
func (c *Controller) SkipCurrent(ctx context.Context) model.WidgetState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.currentTaskLocked(); !ok {
		return c.state
	}
	next := c.queue.Skip()
	c.queue = &next
	return c.refreshLocked(ctx)
}

// SnoozeCurrent writes the snoozed status with tomorrow's local date,
// advances the queue and refreshes.
func (c *Controller) SnoozeCurrent(ctx context.Context) model.WidgetState {
	c.mu.Lock()
	defer c.mu.Unlock()

	task, ok := c.currentTaskLocked()
	if !ok {
		return c.state
	}

	tomorrow := tomorrowDate(c.now())
	if c.gateway.WriteTaskStatus(ctx, task.EventID, model.StatusSnoozed, &tomorrow) {
		next := c.queue.Snooze()
		c.queue = &next
	} else {
		log.Printf("snooze write failed for %s, keeping queue position", task.EventID)
	}
	return c.refreshLocked(ctx)
}

// DismissEvent suppresses the currently shown upcoming event until a
// different one arrives. In-memory only, no write.
func (c *Controller) DismissEvent(ctx context.Context) model.WidgetState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if shown, ok := shownEvent(c.state); ok {
		c.dismissed = shown.ID
	}
	return c.refreshLocked(ctx)
}

func (c *Controller) refreshLocked(ctx context.Context) model.WidgetState {
	now := c.now()

	tasks, err := c.gateway.FetchPlannedTasks(ctx, now)
	if err != nil {
		return c.failLocked(err)
	}
	events, err := c.gateway.FetchUpcomingEvents(ctx, now, c.resolver.Lookahead)
	if err != nil {
		return c.failLocked(err)
	}

	res := c.resolver.Resolve(Inputs{
		Now:              now,
		Tasks:            tasks,
		Events:           events,
		DismissedEventID: c.dismissed,
		Queue:            c.queue,
	})
	c.queue = res.Queue
	c.state = res.State
	c.hadSession = true
	return c.state
}

func (c *Controller) failLocked(err error) model.WidgetState {
	log.Printf("refresh: %v", err)
	switch {
	case errors.Is(err, calendar.ErrPermissionDenied):
		if c.hadSession {
			c.state = model.ErrorState{Message: PermissionDeniedMessage}
		} else {
			c.state = model.SignInRequired{}
		}
	case c.hadSession && cacheable(c.state):
		c.state = model.Offline{Cached: unwrapOffline(c.state)}
	default:
		c.state = model.ErrorState{Message: GenericErrorMessage}
	}
	return c.state
}

// cacheable reports whether a state is worth keeping on screen while the
// store is unreachable. Error banners and the sign-in prompt are not.
func cacheable(state model.WidgetState) bool {
	switch unwrapOffline(state).(type) {
	case model.ErrorState, model.SignInRequired, model.Loading:
		return false
	default:
		return true
	}
}

func (c *Controller) currentTaskLocked() (model.PlannedTask, bool) {
	if c.queue == nil {
		return model.PlannedTask{}, false
	}
	return c.queue.CurrentTask()
}

// shownEvent digs the displayed upcoming event out of the state, looking
// through the offline wrapper.
func shownEvent(state model.WidgetState) (model.UserEvent, bool) {
	switch s := state.(type) {
	case model.UpcomingEvent:
		return s.Event, true
	case model.Offline:
		return shownEvent(s.Cached)
	default:
		return model.UserEvent{}, false
	}
}

func unwrapOffline(state model.WidgetState) model.WidgetState {
	if off, ok := state.(model.Offline); ok {
		return off.Cached
	}
	return state
}

func tomorrowDate(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, now.Location())
}
