package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log     LogConfig
	Session SessionConfig
	Issues  IssuesConfig
	Booking BookingConfig
	Seed    SeedConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// SessionConfig tunes the session store.
type SessionConfig struct {
	LoginLatency time.Duration
}

// IssuesConfig tunes the issue reporting flow.
type IssuesConfig struct {
	SubmitLatency time.Duration
}

// BookingConfig bounds the bookable day. Slots are one hour wide, so a
// DayStart of 8 and DayEnd of 18 yields ten slots from 08:00 to 18:00.
type BookingConfig struct {
	DayStartHour int
	DayEndHour   int
}

// SeedConfig toggles loading of the demo fixture data.
type SeedConfig struct {
	DemoData bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Session = SessionConfig{
		LoginLatency: parseDuration(v.GetString("SESSION_LOGIN_LATENCY"), 500*time.Millisecond),
	}

	cfg.Issues = IssuesConfig{
		SubmitLatency: parseDuration(v.GetString("ISSUE_SUBMIT_LATENCY"), time.Second),
	}

	cfg.Booking = BookingConfig{
		DayStartHour: v.GetInt("BOOKING_DAY_START_HOUR"),
		DayEndHour:   v.GetInt("BOOKING_DAY_END_HOUR"),
	}

	cfg.Seed = SeedConfig{
		DemoData: v.GetBool("SEED_DEMO_DATA"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SESSION_LOGIN_LATENCY", "500ms")
	v.SetDefault("ISSUE_SUBMIT_LATENCY", "1s")

	v.SetDefault("BOOKING_DAY_START_HOUR", 8)
	v.SetDefault("BOOKING_DAY_END_HOUR", 18)

	v.SetDefault("SEED_DEMO_DATA", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
