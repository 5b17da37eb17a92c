package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"plan-widget/internal/model"
)

const (
	keyDomain      = "domain"
	keyTaskID      = "task id"
	keyCategory    = "category"
	keyStatus      = "status"
	keyCompletedAt = "completedat"
	keySkippedAt   = "skippedat"
	keySnoozedAt   = "snoozedat"
	keySnoozedTo   = "snoozedto"
)

// Metadata holds the structured lines recognized in an entry description.
type Metadata struct {
	Domain   string
	TaskID   *int64
	Category string
	Status   model.Status
}

// DecodeDescription extracts metadata from "Key: value" lines. Keys match
// case-insensitively; unknown lines and non-numeric task ids are ignored.
func DecodeDescription(raw string) Metadata {
	meta := Metadata{Status: model.StatusPending}
	for _, line := range strings.Split(raw, "\n") {
		key, value, ok := splitLine(line)
		if !ok {
			continue
		}
		switch key {
		case keyDomain:
			meta.Domain = value
		case keyTaskID:
			if id, err := strconv.ParseInt(value, 10, 64); err == nil {
				meta.TaskID = &id
			}
		case keyCategory:
			meta.Category = value
		case keyStatus:
			meta.Status = model.ParseStatus(value)
		}
	}
	return meta
}

// ApplyStatus rewrites only the status block of a description: any existing
// Status/CompletedAt/SkippedAt/SnoozedAt/SnoozedTo lines are removed
// (case-insensitive prefix match), every other line is preserved verbatim
// and in order, and the new status line plus its timestamp line are
// appended. Pending writes no timestamp; only Snoozed writes a SnoozedTo
// date.
func ApplyStatus(description string, status model.Status, now time.Time, snoozedTo *time.Time) string {
	var kept []string
	for _, line := range strings.Split(description, "\n") {
		if isStatusBlockLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	for len(kept) > 0 && strings.TrimSpace(kept[len(kept)-1]) == "" {
		kept = kept[:len(kept)-1]
	}

	kept = append(kept, fmt.Sprintf("Status: %s", status))
	switch status {
	case model.StatusCompleted:
		kept = append(kept, fmt.Sprintf("CompletedAt: %s", now.Format(time.RFC3339)))
	case model.StatusSkipped:
		kept = append(kept, fmt.Sprintf("SkippedAt: %s", now.Format(time.RFC3339)))
	case model.StatusSnoozed:
		kept = append(kept, fmt.Sprintf("SnoozedAt: %s", now.Format(time.RFC3339)))
		if snoozedTo != nil {
			kept = append(kept, fmt.Sprintf("SnoozedTo: %s", snoozedTo.Format("2006-01-02")))
		}
	}
	return strings.Join(kept, "\n")
}

func splitLine(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(line[:idx])), strings.TrimSpace(line[idx+1:]), true
}

func isStatusBlockLine(line string) bool {
	key, _, ok := splitLine(line)
	if !ok {
		return false
	}
	switch key {
	case keyStatus, keyCompletedAt, keySkippedAt, keySnoozedAt, keySnoozedTo:
		return true
	default:
		return false
	}
}
