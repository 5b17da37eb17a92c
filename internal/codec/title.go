// Package codec translates between the textual calendar-entry encoding and
// the widget's value types. Decoding never fails: malformed or partial
// encodings degrade to defaults so a garbled entry still shows up as a task.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"plan-widget/internal/model"
)

// DefaultDurationMinutes is used when the title carries no parseable
// duration suffix.
const DefaultDurationMinutes = 15

// DecodeTitle splits a raw entry title into display title, priority and
// duration. Priority is a leading bracketed run of 1-3 exclamation marks
// ([!!!] must do, [!!] should do, [!] nice to have); a missing or malformed
// bracket means should-do. Duration is a trailing "(Nm)"; anything else
// means the default.
func DecodeTitle(raw string) (string, model.Priority, int) {
	title := strings.TrimSpace(raw)
	priority := model.PriorityShouldDo

	if strings.HasPrefix(title, "[") {
		if end := strings.Index(title, "]"); end > 1 {
			if p, ok := priorityFromMarks(title[1:end]); ok {
				priority = p
				title = strings.TrimSpace(title[end+1:])
			}
		}
	}

	duration := DefaultDurationMinutes
	if strings.HasSuffix(title, ")") {
		if open := strings.LastIndex(title, "("); open >= 0 {
			inner := title[open+1 : len(title)-1]
			if n, ok := parseDuration(inner); ok {
				duration = n
				title = strings.TrimSpace(title[:open])
			}
		}
	}

	return title, priority, duration
}

// EncodeTitle renders the title the way the planner writes it, so that a
// decode of the result round-trips.
func EncodeTitle(title string, priority model.Priority, durationMinutes int) string {
	return fmt.Sprintf("[%s] %s (%dm)", strings.Repeat("!", marksFor(priority)), strings.TrimSpace(title), durationMinutes)
}

func priorityFromMarks(marks string) (model.Priority, bool) {
	if len(marks) < 1 || len(marks) > 3 || strings.Trim(marks, "!") != "" {
		return 0, false
	}
	switch len(marks) {
	case 1:
		return model.PriorityNiceToHave, true
	case 2:
		return model.PriorityShouldDo, true
	default:
		return model.PriorityMustDo, true
	}
}

func marksFor(priority model.Priority) int {
	switch priority {
	case model.PriorityMustDo:
		return 3
	case model.PriorityNiceToHave:
		return 1
	default:
		return 2
	}
}

func parseDuration(inner string) (int, bool) {
	inner = strings.TrimSpace(inner)
	if !strings.HasSuffix(inner, "m") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(inner, "m"))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
