// Package calendar defines the gateway through which the widget reads the
// day plan and the user's personal events, and writes status annotations
// back. The store behind it is an on-device calendar database; access may
// require a runtime-granted permission.
package calendar

import (
	"context"
	"errors"
	"time"

	"plan-widget/internal/model"
)

// PlanCalendarName is the calendar collection holding planner-generated
// task entries for the day.
const PlanCalendarName = "Day Plan"

// ErrPermissionDenied signals that calendar access has not been granted.
// It is recoverable by the user and surfaced distinctly from other
// failures.
var ErrPermissionDenied = errors.New("calendar access denied")

// Gateway is the widget's only view of the calendar store.
type Gateway interface {
	// FetchPlannedTasks returns the planning calendar's entries for the
	// given local day, ordered by start time ascending (hardest-first as
	// pre-sorted by the planner). A missing planning calendar yields an
	// empty list, not an error.
	FetchPlannedTasks(ctx context.Context, date time.Time) ([]model.PlannedTask, error)

	// FetchUpcomingEvents returns personal-calendar entries starting
	// between now and now+lookahead, excluding the planning calendar and
	// all-day entries, ordered by start time ascending.
	FetchUpcomingEvents(ctx context.Context, now time.Time, lookahead time.Duration) ([]model.UserEvent, error)

	// WriteTaskStatus rewrites only the structured metadata lines of the
	// entry's description. It reports success instead of propagating
	// storage errors.
	WriteTaskStatus(ctx context.Context, eventID string, status model.Status, targetDate *time.Time) bool
}
