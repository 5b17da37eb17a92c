package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plan-widget/internal/model"
)

func TestRender_NextTask(t *testing.T) {
	text, markup := Render(model.NextTask{
		Task: model.PlannedTask{
			EventID:         "a",
			Title:           "Write <report>",
			Domain:          "work",
			Priority:        model.PriorityMustDo,
			DurationMinutes: 30,
			Status:          model.StatusPending,
		},
		Position:     1,
		TotalPending: 3,
	})

	assert.Contains(t, text, "Write &lt;report&gt;")
	assert.Contains(t, text, "30 min · 1 of 3")
	assert.Contains(t, text, "work")

	require.Len(t, markup.InlineKeyboard, 1)
	require.Len(t, markup.InlineKeyboard[0], 3)
	assert.Equal(t, cbComplete, *markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, cbSkip, *markup.InlineKeyboard[0][1].CallbackData)
	assert.Equal(t, cbSnooze, *markup.InlineKeyboard[0][2].CallbackData)
}

func TestRender_UpcomingEventWithPreview(t *testing.T) {
	under := model.PlannedTask{Title: "Prep notes", Priority: model.PriorityShouldDo, DurationMinutes: 15}
	text, markup := Render(model.UpcomingEvent{
		Event:          model.UserEvent{ID: "e", Title: "1:1", Location: "Room 4"},
		MinutesUntil:   30,
		TaskUnderneath: &under,
	})

	assert.Contains(t, text, "in 30 min")
	assert.Contains(t, text, "Room 4")
	assert.Contains(t, text, "Prep notes")
	assert.Equal(t, cbDismiss, *markup.InlineKeyboard[0][0].CallbackData)
}

func TestRender_EventInProgress(t *testing.T) {
	text, _ := Render(model.UpcomingEvent{Event: model.UserEvent{ID: "e", Title: "Standup"}})

	assert.Contains(t, text, "now")
	assert.NotContains(t, text, "Up next")
}

func TestRender_OfflineWrapsCached(t *testing.T) {
	text, markup := Render(model.Offline{Cached: model.NeedMoreTasks{CompletedToday: 4}})

	assert.Contains(t, text, "Offline")
	assert.Contains(t, text, "4 task(s) completed")
	assert.Equal(t, cbRefresh, *markup.InlineKeyboard[0][0].CallbackData)
}

func TestRender_EveryVariantProducesText(t *testing.T) {
	states := []model.WidgetState{
		model.Loading{},
		model.ErrorState{Message: "boom"},
		model.NoPlan{},
		model.SignInRequired{},
		model.NeedMoreTasks{CompletedToday: 1},
		model.NextTask{Task: model.PlannedTask{Title: "t"}, Position: 1, TotalPending: 1},
		model.UpcomingEvent{Event: model.UserEvent{Title: "e"}},
		model.Offline{Cached: model.NoPlan{}},
	}
	for _, state := range states {
		text, markup := Render(state)
		assert.NotEmpty(t, text)
		assert.NotEmpty(t, markup.InlineKeyboard)
	}
}
