package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *CalendarRepository {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	return NewCalendarRepository(db)
}

func TestListByCalendar_OrderedAndBounded(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	entries := []CalendarEntry{
		{EventID: "b", CalendarName: "Day Plan", Title: "second", StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour)},
		{EventID: "a", CalendarName: "Day Plan", Title: "first", StartTime: day.Add(9 * time.Hour), EndTime: day.Add(10 * time.Hour)},
		{EventID: "c", CalendarName: "Day Plan", Title: "next day", StartTime: day.Add(26 * time.Hour), EndTime: day.Add(27 * time.Hour)},
		{EventID: "d", CalendarName: "Personal", Title: "not ours", StartTime: day.Add(9 * time.Hour), EndTime: day.Add(10 * time.Hour)},
	}
	for i := range entries {
		require.NoError(t, repo.Create(ctx, &entries[i]))
	}

	got, err := repo.ListByCalendar(ctx, "Day Plan", day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].EventID)
	assert.Equal(t, "b", got[1].EventID)
}

func TestListUpcomingExcluding_SkipsPlanAndAllDay(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	entries := []CalendarEntry{
		{EventID: "meeting", CalendarName: "Personal", Title: "1:1", StartTime: now.Add(20 * time.Minute), EndTime: now.Add(50 * time.Minute)},
		{EventID: "allday", CalendarName: "Personal", Title: "birthday", AllDay: true, StartTime: now.Add(10 * time.Minute), EndTime: now.Add(24 * time.Hour)},
		{EventID: "plantask", CalendarName: "Day Plan", Title: "task", StartTime: now.Add(5 * time.Minute), EndTime: now.Add(20 * time.Minute)},
		{EventID: "later", CalendarName: "Personal", Title: "dinner", StartTime: now.Add(3 * time.Hour), EndTime: now.Add(4 * time.Hour)},
	}
	for i := range entries {
		require.NoError(t, repo.Create(ctx, &entries[i]))
	}

	got, err := repo.ListUpcomingExcluding(ctx, "Day Plan", now, now.Add(45*time.Minute))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "meeting", got[0].EventID)
}

func TestUpdateDescription(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	entry := CalendarEntry{EventID: "x", CalendarName: "Day Plan", Title: "t", Description: "Status: pending",
		StartTime: time.Now(), EndTime: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, &entry))

	require.NoError(t, repo.UpdateDescription(ctx, "x", "Status: completed"))

	got, err := repo.FindByEventID(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "Status: completed", got.Description)
}

func TestUpdateDescription_MissingEntry(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.UpdateDescription(context.Background(), "nope", "Status: completed")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
