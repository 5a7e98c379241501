package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	// DriverMemory uses a private in-process sqlite database that is gone on exit.
	DriverMemory = "memory"
)

type Config struct {
	ServerPort  string   `env:"SERVER_PORT" env-default:"8080"`
	LogLevel    string   `env:"LOG_LEVEL" env-default:"INFO"`
	CORSOrigins []string `env:"CORS_ORIGINS" env-separator:"," env-default:"*"`

	DB       DBConfig
	JWT      JWTConfig
	Timeline TimelineConfig
}

type DBConfig struct {
	Driver   string `env:"DB_DRIVER" env-default:"postgres"`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5431"`
	User     string `env:"DB_USER" env-default:"taskflow_user"`
	Password string `env:"DB_PASSWORD" env-default:"taskflow_pass"`
	Name     string `env:"DB_NAME" env-default:"taskflow_db"`
	Path     string `env:"DB_PATH" env-default:"taskflow.db"`
}

// DSN is the postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name,
	)
}

type JWTConfig struct {
	Secret      string `env:"JWT_SECRET" env-default:"supersecretkey"`
	ExpiryHours int    `env:"JWT_EXPIRY_HOURS" env-default:"720"`
}

func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpiryHours) * time.Hour
}

type TimelineConfig struct {
	BaseDayWidth  float64       `env:"TIMELINE_BASE_DAY_WIDTH" env-default:"50"`
	WeekStart     string        `env:"TIMELINE_WEEK_START" env-default:"sunday"`
	ThemePath     string        `env:"SVG_THEME_PATH"`
	ToastDuration time.Duration `env:"TOAST_DURATION" env-default:"2s"`
}

// Weekday returns the first day of the week shown on the chart.
func (c TimelineConfig) Weekday() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(c.WeekStart)) {
	case "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	}
	return 0, fmt.Errorf("TIMELINE_WEEK_START must be sunday or monday, got %q", c.WeekStart)
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("⚠️  No .env file found, using system environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("LOG_LEVEL must be DEBUG, INFO, WARN or ERROR, got %q", c.LogLevel)
	}
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("DB_DRIVER must be postgres, sqlite or memory, got %q", c.DB.Driver)
	}
	if c.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("JWT_EXPIRY_HOURS must be positive, got %d", c.JWT.ExpiryHours)
	}
	if c.Timeline.BaseDayWidth <= 0 {
		return fmt.Errorf("TIMELINE_BASE_DAY_WIDTH must be positive, got %v", c.Timeline.BaseDayWidth)
	}
	if _, err := c.Timeline.Weekday(); err != nil {
		return err
	}
	return nil
}
