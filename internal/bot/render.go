package bot

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"plan-widget/internal/model"
)

const (
	cbComplete = "complete"
	cbSkip     = "skip"
	cbSnooze   = "snooze"
	cbDismiss  = "dismiss"
	cbRefresh  = "refresh"
)

// Render turns a widget state into the message text and gesture buttons.
// The switch is exhaustive over the closed state union; a new variant must
// be handled here before it can ship.
func Render(state model.WidgetState) (string, tgbotapi.InlineKeyboardMarkup) {
	switch s := state.(type) {
	case model.Loading:
		return "⏳ Loading your plan…", refreshKeyboard()
	case model.ErrorState:
		return fmt.Sprintf("⚠️ %s", escape(s.Message)), refreshKeyboard()
	case model.NoPlan:
		return "🗓 No plan for today yet.\nYour planner has not scheduled anything.", refreshKeyboard()
	case model.SignInRequired:
		return "🔐 Sign in to your calendar to see today's plan.", refreshKeyboard()
	case model.NeedMoreTasks:
		return fmt.Sprintf("🎉 All caught up!\n%d task(s) completed today. Ask your planner for more.", s.CompletedToday), refreshKeyboard()
	case model.NextTask:
		return renderTask(s.Task, s.Position, s.TotalPending), taskKeyboard()
	case model.UpcomingEvent:
		return renderEvent(s), eventKeyboard()
	case model.Offline:
		text, markup := Render(s.Cached)
		return "📡 Offline — showing the last known state.\n\n" + text, markup
	default:
		return "⚠️ Unknown widget state.", refreshKeyboard()
	}
}

func renderTask(task model.PlannedTask, position, total int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s <b>%s</b>\n", priorityIcon(task.Priority), escape(task.Title)))
	b.WriteString(fmt.Sprintf("⏱ %d min · %d of %d", task.DurationMinutes, position, total))
	if task.Domain != "" {
		b.WriteString(fmt.Sprintf(" · <i>%s</i>", escape(task.Domain)))
	}
	if task.Category != "" {
		b.WriteString(fmt.Sprintf("\n🏷 %s", escape(task.Category)))
	}
	return b.String()
}

func renderEvent(s model.UpcomingEvent) string {
	var b strings.Builder
	switch {
	case s.MinutesUntil == 0:
		b.WriteString(fmt.Sprintf("📅 <b>%s</b> — now\n", escape(s.Event.Title)))
	default:
		b.WriteString(fmt.Sprintf("📅 <b>%s</b> — in %d min\n", escape(s.Event.Title), s.MinutesUntil))
	}
	if s.Event.Location != "" {
		b.WriteString(fmt.Sprintf("📍 %s\n", escape(s.Event.Location)))
	}
	if s.Event.MeetingLink != "" {
		b.WriteString(fmt.Sprintf("🔗 %s\n", escape(s.Event.MeetingLink)))
	}
	if s.TaskUnderneath != nil {
		b.WriteString(fmt.Sprintf("\nUp next: %s %s (%dm)",
			priorityIcon(s.TaskUnderneath.Priority), escape(s.TaskUnderneath.Title), s.TaskUnderneath.DurationMinutes))
	}
	return strings.TrimSpace(b.String())
}

func priorityIcon(p model.Priority) string {
	switch p {
	case model.PriorityMustDo:
		return "🔴"
	case model.PriorityNiceToHave:
		return "🟢"
	default:
		return "🟡"
	}
}

func taskKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Done", cbComplete),
			tgbotapi.NewInlineKeyboardButtonData("⏭ Skip", cbSkip),
			tgbotapi.NewInlineKeyboardButtonData("😴 Snooze", cbSnooze),
		),
	)
}

func eventKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🙈 Dismiss", cbDismiss),
			tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh", cbRefresh),
		),
	)
}

func refreshKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh", cbRefresh),
		),
	)
}

func escape(s string) string {
	return html.EscapeString(s)
}
