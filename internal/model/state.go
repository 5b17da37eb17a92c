package model

// WidgetState is the single resolved display state of the home-screen
// widget. Exactly one variant is active at a time; the resolver recomputes
// the whole state rather than patching it. The unexported marker keeps the
// union closed so every consumer switches over a known set of variants.
type WidgetState interface {
	widgetState()
}

// Loading is shown before the first resolution finishes.
type Loading struct{}

// ErrorState carries a fixed user-facing message for a failed refresh.
type ErrorState struct {
	Message string
}

// NoPlan means no planner entries exist for today at all.
type NoPlan struct{}

// SignInRequired means calendar access has not been granted yet.
type SignInRequired struct{}

// NeedMoreTasks means a plan exists but every pending task was consumed.
type NeedMoreTasks struct {
	CompletedToday int
}

// NextTask presents the queue's current task.
type NextTask struct {
	Task         PlannedTask
	Position     int // 1 when showing the hard end, PendingCount on the easy end
	TotalPending int
}

// UpcomingEvent takes over the widget for an imminent personal event.
// TaskUnderneath is nil when the event is close enough to fully take over
// or when no pending task exists.
type UpcomingEvent struct {
	Event          UserEvent
	MinutesUntil   int
	TaskUnderneath *PlannedTask
}

// Offline wraps the last successfully resolved state while the store is
// unreachable.
type Offline struct {
	Cached WidgetState
}

func (Loading) widgetState()        {}
func (ErrorState) widgetState()     {}
func (NoPlan) widgetState()         {}
func (SignInRequired) widgetState() {}
func (NeedMoreTasks) widgetState()  {}
func (NextTask) widgetState()       {}
func (UpcomingEvent) widgetState()  {}
func (Offline) widgetState()        {}
