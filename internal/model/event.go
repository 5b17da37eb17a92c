package model

import "time"

// UserEvent is a personal-calendar entry, distinct from planner tasks.
type UserEvent struct {
	ID          string
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	MeetingLink string
	IsAllDay    bool
}

// DurationMinutes is the whole-minute length of the event.
func (e UserEvent) DurationMinutes() int {
	return int(e.EndTime.Sub(e.StartTime).Minutes())
}
