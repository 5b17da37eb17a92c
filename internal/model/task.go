package model

import (
	"strings"
	"time"
)

// Priority orders tasks by how much the planner insists on them.
type Priority int

const (
	PriorityNiceToHave Priority = iota + 1
	PriorityShouldDo
	PriorityMustDo
)

func (p Priority) String() string {
	switch p {
	case PriorityMustDo:
		return "must do"
	case PriorityNiceToHave:
		return "nice to have"
	default:
		return "should do"
	}
}

// Status is the persisted lifecycle state of a planned task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
	StatusSnoozed   Status = "snoozed"
)

// ParseStatus maps a stored status value to a Status, case-insensitively.
// Unrecognized or empty input falls back to StatusPending.
func ParseStatus(raw string) Status {
	switch Status(normalize(raw)) {
	case StatusCompleted:
		return StatusCompleted
	case StatusSkipped:
		return StatusSkipped
	case StatusSnoozed:
		return StatusSnoozed
	default:
		return StatusPending
	}
}

// PlannedTask is one planner-generated entry for the day, decoded from the
// planning calendar. Values are never mutated in place; a status change
// produces a new persisted entry and a new in-memory value.
type PlannedTask struct {
	EventID         string // stable identifier of the underlying calendar entry
	TaskID          *int64 // optional external planner reference
	Title           string // display title, decorations already stripped
	Domain          string
	Priority        Priority
	DurationMinutes int
	Category        string
	Status          Status
	StartTime       time.Time
	EndTime         time.Time
}

func (t PlannedTask) IsPending() bool {
	return t.Status == StatusPending
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
