package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the widget host.
type Config struct {
	TelegramToken   string
	DatabaseURL     string
	RefreshInterval time.Duration
	Lookahead       time.Duration
	Takeover        time.Duration
	PushTime        string // HH:MM, empty disables the daily push
	SeedDemo        bool
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		TelegramToken:   strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RefreshInterval: parseSeconds(os.Getenv("REFRESH_INTERVAL_SECONDS")),
		Lookahead:       parseMinutes(os.Getenv("LOOKAHEAD_MINUTES")),
		Takeover:        parseMinutes(os.Getenv("EVENT_TAKEOVER_MINUTES")),
		PushTime:        strings.TrimSpace(os.Getenv("PUSH_TIME")),
		SeedDemo:        os.Getenv("SEED_DEMO") == "1",
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "plan_widget.db"
	}
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = time.Minute
	}
	if cfg.Lookahead == 0 {
		cfg.Lookahead = 45 * time.Minute
	}
	if cfg.Takeover == 0 {
		cfg.Takeover = 15 * time.Minute
	}

	if cfg.TelegramToken == "" {
		return cfg, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	return cfg, nil
}

func parseSeconds(raw string) time.Duration {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

func parseMinutes(raw string) time.Duration {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Minute
}
