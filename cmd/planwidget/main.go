package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"plan-widget/internal/bot"
	"plan-widget/internal/calendar"
	"plan-widget/internal/codec"
	"plan-widget/internal/config"
	"plan-widget/internal/model"
	"plan-widget/internal/repository"
	"plan-widget/internal/service"
	"plan-widget/internal/widget"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	repo := repository.NewCalendarRepository(db)
	if cfg.SeedDemo {
		if err := seedDemo(ctx, repo); err != nil {
			log.Printf("seed demo: %v", err)
		}
	}

	gateway := calendar.NewStoreGateway(repo)
	resolver := widget.NewResolver(cfg.Lookahead, cfg.Takeover)
	controller := widget.NewController(gateway, resolver)

	widgetBot, err := bot.New(cfg.TelegramToken, controller)
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	scheduler := service.NewScheduler(time.Local)
	if _, err := scheduler.ScheduleInterval(cfg.RefreshInterval, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		controller.Refresh(jobCtx)
	}); err != nil {
		log.Fatalf("schedule refresh: %v", err)
	}
	if cfg.PushTime != "" {
		if _, err := scheduler.ScheduleDaily(cfg.PushTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := widgetBot.PushWidgets(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("daily push: %v", err)
			}
		}); err != nil {
			log.Fatalf("schedule daily push: %v", err)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Plan widget started.")
	if err := widgetBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}

// seedDemo inserts a small day plan and two personal events so the widget
// has something to show on a fresh database.
func seedDemo(ctx context.Context, repo *repository.CalendarRepository) error {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	existing, err := repo.ListByCalendar(ctx, calendar.PlanCalendarName, midnight, midnight.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	day := midnight.Add(9 * time.Hour)

	plan := []struct {
		title    string
		priority model.Priority
		minutes  int
		domain   string
	}{
		{"Write quarterly report", model.PriorityMustDo, 45, "work"},
		{"Review pull requests", model.PriorityShouldDo, 30, "work"},
		{"Evening walk", model.PriorityNiceToHave, 20, "health"},
	}
	for i, p := range plan {
		start := day.Add(time.Duration(i) * time.Hour)
		entry := repository.CalendarEntry{
			EventID:      uuid.NewString(),
			CalendarName: calendar.PlanCalendarName,
			Title:        codec.EncodeTitle(p.title, p.priority, p.minutes),
			Description:  "Domain: " + p.domain + "\nStatus: pending",
			StartTime:    start,
			EndTime:      start.Add(time.Duration(p.minutes) * time.Minute),
		}
		if err := repo.Create(ctx, &entry); err != nil {
			return err
		}
	}

	meeting := repository.CalendarEntry{
		EventID:      uuid.NewString(),
		CalendarName: "Personal",
		Title:        "1:1 with Sam",
		Location:     "Room 4",
		StartTime:    now.Add(30 * time.Minute),
		EndTime:      now.Add(60 * time.Minute),
	}
	if err := repo.Create(ctx, &meeting); err != nil {
		return err
	}

	birthday := repository.CalendarEntry{
		EventID:      uuid.NewString(),
		CalendarName: "Personal",
		Title:        "Dad's birthday",
		AllDay:       true,
		StartTime:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		EndTime:      time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location()),
	}
	return repo.Create(ctx, &birthday)
}
