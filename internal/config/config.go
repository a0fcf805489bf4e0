package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Auth     AuthConfig
	Segments SegmentsConfig
	Import   ImportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AuthConfig holds the reviewer credential the API authenticates against.
type AuthConfig struct {
	ReviewerUsername     string
	ReviewerPasswordHash string
}

// SegmentsConfig holds the working-day segment boundaries and thresholds.
type SegmentsConfig struct {
	MorningBegin       string
	MorningEnd         string
	AfternoonBegin     string
	AfternoonEnd       string
	EveningBegin       string
	MorningThreshold   int
	AfternoonThreshold int
}

// ImportConfig holds spreadsheet import options.
type ImportConfig struct {
	LexiconFile string
	WatchDir    string
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "punchsheet"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	config.Auth = AuthConfig{
		ReviewerUsername:     getEnv("REVIEWER_USERNAME", "reviewer"),
		ReviewerPasswordHash: getEnv("REVIEWER_PASSWORD_HASH", ""),
	}

	morningThreshold, err := strconv.Atoi(getEnv("MORNING_THRESHOLD_MINUTES", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid MORNING_THRESHOLD_MINUTES: %w", err)
	}
	afternoonThreshold, err := strconv.Atoi(getEnv("AFTERNOON_THRESHOLD_MINUTES", "210"))
	if err != nil {
		return nil, fmt.Errorf("invalid AFTERNOON_THRESHOLD_MINUTES: %w", err)
	}

	config.Segments = SegmentsConfig{
		MorningBegin:       getEnv("MORNING_BEGIN", "09:00"),
		MorningEnd:         getEnv("MORNING_END", "12:00"),
		AfternoonBegin:     getEnv("AFTERNOON_BEGIN", "13:30"),
		AfternoonEnd:       getEnv("AFTERNOON_END", "18:00"),
		EveningBegin:       getEnv("EVENING_BEGIN", "19:00"),
		MorningThreshold:   morningThreshold,
		AfternoonThreshold: afternoonThreshold,
	}

	config.Import = ImportConfig{
		LexiconFile: getEnv("LEXICON_FILE", ""),
		WatchDir:    getEnv("WATCH_DIR", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Auth.ReviewerPasswordHash == "" {
		return fmt.Errorf("REVIEWER_PASSWORD_HASH is required")
	}
	if _, err := c.SegmentConfig(); err != nil {
		return err
	}
	return nil
}

// SegmentConfig parses the configured segment boundaries.
func (c *Config) SegmentConfig() (timesheet.SegmentConfig, error) {
	sc := timesheet.DefaultSegmentConfig()

	parse := func(name, value string, dst *timesheet.ClockTime) error {
		ct, err := timesheet.ParseClockTime(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		*dst = ct
		return nil
	}
	if err := parse("MORNING_BEGIN", c.Segments.MorningBegin, &sc.MorningBegin); err != nil {
		return sc, err
	}
	if err := parse("MORNING_END", c.Segments.MorningEnd, &sc.MorningEnd); err != nil {
		return sc, err
	}
	if err := parse("AFTERNOON_BEGIN", c.Segments.AfternoonBegin, &sc.AfternoonBegin); err != nil {
		return sc, err
	}
	if err := parse("AFTERNOON_END", c.Segments.AfternoonEnd, &sc.AfternoonEnd); err != nil {
		return sc, err
	}
	if err := parse("EVENING_BEGIN", c.Segments.EveningBegin, &sc.EveningBegin); err != nil {
		return sc, err
	}
	sc.MorningThresholdMinutes = c.Segments.MorningThreshold
	sc.AfternoonThresholdMinutes = c.Segments.AfternoonThreshold

	if err := sc.Validate(); err != nil {
		return sc, fmt.Errorf("invalid segment configuration: %w", err)
	}
	return sc, nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
