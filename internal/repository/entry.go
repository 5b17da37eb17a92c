package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// CalendarEntry is one row of the on-device calendar store. Both the
// planning calendar's task entries and the user's personal events live in
// the same table, told apart by CalendarName.
type CalendarEntry struct {
	ID           uint   `gorm:"primaryKey"`
	EventID      string `gorm:"uniqueIndex"`
	CalendarName string `gorm:"index"`
	Title        string
	Description  string
	StartTime    time.Time `gorm:"index"`
	EndTime      time.Time
	AllDay       bool
	Location     string
	MeetingLink  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CalendarRepository handles CRUD for calendar entries.
type CalendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

func (r *CalendarRepository) Create(ctx context.Context, entry *CalendarEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

// ListByCalendar returns entries of one calendar starting within [from, to),
// ordered by start time ascending.
func (r *CalendarRepository) ListByCalendar(ctx context.Context, calendarName string, from, to time.Time) ([]CalendarEntry, error) {
	var entries []CalendarEntry
	if err := r.db.WithContext(ctx).
		Where("calendar_name = ? AND start_time >= ? AND start_time < ?", calendarName, from, to).
		Order("start_time ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListUpcomingExcluding returns non-all-day entries outside the given
// calendar starting within [from, to), ordered by start time ascending.
func (r *CalendarRepository) ListUpcomingExcluding(ctx context.Context, excludeCalendar string, from, to time.Time) ([]CalendarEntry, error) {
	var entries []CalendarEntry
	if err := r.db.WithContext(ctx).
		Where("calendar_name <> ? AND all_day = ? AND start_time >= ? AND start_time < ?", excludeCalendar, false, from, to).
		Order("start_time ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *CalendarRepository) FindByEventID(ctx context.Context, eventID string) (*CalendarEntry, error) {
	var entry CalendarEntry
	if err := r.db.WithContext(ctx).Where("event_id = ?", eventID).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateDescription rewrites only the description of an entry.
func (r *CalendarRepository) UpdateDescription(ctx context.Context, eventID, description string) error {
	result := r.db.WithContext(ctx).Model(&CalendarEntry{}).
		Where("event_id = ?", eventID).
		Update("description", description)
	if result.Error != nil {
		return fmt.Errorf("update description: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
