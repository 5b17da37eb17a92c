package calendar

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"

	"plan-widget/internal/codec"
	"plan-widget/internal/model"
	"plan-widget/internal/repository"
)

// StoreGateway implements Gateway on top of the SQLite calendar store.
type StoreGateway struct {
	repo *repository.CalendarRepository
}

func NewStoreGateway(repo *repository.CalendarRepository) *StoreGateway {
	return &StoreGateway{repo: repo}
}

func (g *StoreGateway) FetchPlannedTasks(ctx context.Context, date time.Time) ([]model.PlannedTask, error) {
	from := startOfDay(date)
	to := from.AddDate(0, 0, 1)

	entries, err := g.repo.ListByCalendar(ctx, PlanCalendarName, from, to)
	if err != nil {
		return nil, wrapStoreError("fetch planned tasks", err)
	}

	tasks := make([]model.PlannedTask, 0, len(entries))
	for _, entry := range entries {
		task, ok := decodeTask(entry)
		if !ok {
			// Entries without an identifier or a title are unusable.
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (g *StoreGateway) FetchUpcomingEvents(ctx context.Context, now time.Time, lookahead time.Duration) ([]model.UserEvent, error) {
	entries, err := g.repo.ListUpcomingExcluding(ctx, PlanCalendarName, now, now.Add(lookahead))
	if err != nil {
		return nil, wrapStoreError("fetch upcoming events", err)
	}

	events := make([]model.UserEvent, 0, len(entries))
	for _, entry := range entries {
		if entry.EventID == "" || strings.TrimSpace(entry.Title) == "" {
			continue
		}
		events = append(events, model.UserEvent{
			ID:          entry.EventID,
			Title:       strings.TrimSpace(entry.Title),
			StartTime:   entry.StartTime,
			EndTime:     entry.EndTime,
			Location:    entry.Location,
			MeetingLink: entry.MeetingLink,
			IsAllDay:    entry.AllDay,
		})
	}
	return events, nil
}

func (g *StoreGateway) WriteTaskStatus(ctx context.Context, eventID string, status model.Status, targetDate *time.Time) bool {
	entry, err := g.repo.FindByEventID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("write status %s for %s: %v", status, eventID, err)
		}
		return false
	}

	updated := codec.ApplyStatus(entry.Description, status, time.Now(), targetDate)
	if err := g.repo.UpdateDescription(ctx, eventID, updated); err != nil {
		log.Printf("write status %s for %s: %v", status, eventID, err)
		return false
	}
	return true
}

func decodeTask(entry repository.CalendarEntry) (model.PlannedTask, bool) {
	if entry.EventID == "" {
		return model.PlannedTask{}, false
	}

	title, priority, duration := codec.DecodeTitle(entry.Title)
	if title == "" {
		return model.PlannedTask{}, false
	}

	meta := codec.DecodeDescription(entry.Description)

	end := entry.EndTime
	if end.Before(entry.StartTime) {
		end = entry.StartTime
	}

	return model.PlannedTask{
		EventID:         entry.EventID,
		TaskID:          meta.TaskID,
		Title:           title,
		Domain:          meta.Domain,
		Priority:        priority,
		DurationMinutes: duration,
		Category:        meta.Category,
		Status:          meta.Status,
		StartTime:       entry.StartTime,
		EndTime:         end,
	}, true
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// wrapStoreError maps access-denied storage failures to the distinct
// permission sentinel so callers can offer sign-in instead of a generic
// error banner.
func wrapStoreError(op string, err error) error {
	if isPermissionError(err) {
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isPermissionError(err error) bool {
	if errors.Is(err, os.ErrPermission) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "access denied") ||
		strings.Contains(msg, "readonly database")
}
