package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/diegoclair/attendance-bot/internal/domain"
	"github.com/robfig/cron/v3"
)

type Config struct {
	SlackBotToken      string `env:"SLACK_BOT_TOKEN,required,notEmpty"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET,required,notEmpty"`
	BroadcastChannel   string `env:"BROADCAST_CHANNEL,required,notEmpty"`

	// Slack user group IDs standing in for the "Players" and "GMs" roles
	PlayersGroupID string `env:"PLAYERS_GROUP_ID"`
	GMsGroupID     string `env:"GMS_GROUP_ID"`

	DatabasePath string `env:"DATABASE_PATH" envDefault:"./attendance.db"`
	Port         string `env:"PORT" envDefault:"3000"`

	EventDay          int           `env:"EVENT_DAY" envDefault:"1"` // ISO weekday, 1=Mon ... 7=Sun
	LeadDays          int           `env:"REMINDER_LEAD_DAYS" envDefault:"3"`
	Timezone          string        `env:"TIMEZONE" envDefault:"UTC"`
	TickSpec          string        `env:"TICK_SPEC" envDefault:"@every 15m"`
	SendTimeout       time.Duration `env:"SEND_TIMEOUT" envDefault:"10s"`
	ReadyPollInterval time.Duration `env:"READY_POLL_INTERVAL" envDefault:"5s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON" envDefault:"false"`

	location *time.Location
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if !domain.ValidISOWeekday(c.EventDay) {
		errs = append(errs, fmt.Errorf("EVENT_DAY must be between 1 (Monday) and 7 (Sunday), got %d", c.EventDay))
	}

	if c.LeadDays < 1 || c.LeadDays > 6 {
		errs = append(errs, fmt.Errorf("REMINDER_LEAD_DAYS must be between 1 and 6, got %d", c.LeadDays))
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err))
	}
	c.location = loc

	if _, err := cron.ParseStandard(c.TickSpec); err != nil {
		errs = append(errs, fmt.Errorf("invalid TICK_SPEC %q: %w", c.TickSpec, err))
	}

	if c.SendTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SEND_TIMEOUT must be positive, got %s", c.SendTimeout))
	}

	return errors.Join(errs...)
}

// Location is the time zone used to decide weekdays.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// Schedule describes the weekly event from the configured days.
func (c *Config) Schedule() domain.WeeklySchedule {
	return domain.WeeklySchedule{
		EventDay: domain.ToWeekday(c.EventDay),
		LeadDays: c.LeadDays,
	}
}
