package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// LogConfig controls the global zap logger.
type LogConfig struct {
	Level  string
	Format string
}

// ContactsConfig selects which scraped contacts feed the dashboard.
type ContactsConfig struct {
	SourceTag   string
	PhoneRegion string
	PhonePrefix string
}

// CRMConfig describes the outbound CRM webhook.
type CRMConfig struct {
	WebhookURL      string
	WebhookAudience string
	SourceTag       string
	RateLimit       RateLimitConfig
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL    string
	DBMaxConns     int32
	Port           string
	RequestTimeout time.Duration
	Locale         language.Tag
	DefaultOwner   string
	Contacts       ContactsConfig
	CRM            CRMConfig
	Log            LogConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           getEnv("PORT", "8080"),
		RequestTimeout: parseDuration(getEnv("REQUEST_TIMEOUT", "15s"), 15*time.Second),
		DefaultOwner:   getEnv("DEFAULT_OWNER", "VANESSA"),
		Contacts: ContactsConfig{
			SourceTag: getEnv("CONTACT_SOURCE_TAG", "linkedin_scrapping"),
		},
		CRM: CRMConfig{
			WebhookURL:      getEnv("CRM_WEBHOOK_URL", "https://n8n-study.gogroupgl.com/webhook/mar-de-leads-hub"),
			WebhookAudience: os.Getenv("CRM_WEBHOOK_AUDIENCE"),
			SourceTag:       getEnv("CRM_SOURCE_TAG", "CHINA-RPA"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	if err != nil || maxConns <= 0 {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS value: %q", os.Getenv("DB_MAX_CONNS"))
	}
	cfg.DBMaxConns = int32(maxConns)

	region, prefix, err := parsePhoneRegion(getEnv("CONTACT_PHONE_REGION", "BR"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONTACT_PHONE_REGION value: %w", err)
	}
	cfg.Contacts.PhoneRegion = region
	cfg.Contacts.PhonePrefix = prefix

	locale, err := language.Parse(getEnv("COLLATION_LOCALE", "pt-BR"))
	if err != nil {
		return nil, fmt.Errorf("invalid COLLATION_LOCALE value: %w", err)
	}
	cfg.Locale = locale

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_CRM", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CRM value: %w", err)
	}
	cfg.CRM.RateLimit = rl

	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL value: %w", err)
	}

	return cfg, nil
}

// InitLogger builds a zap logger from cfg and installs it as the global logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// parsePhoneRegion validates an ISO region code and returns it with its
// international dialing prefix, e.g. "br" -> ("BR", "+55").
func parsePhoneRegion(value string) (string, string, error) {
	region := strings.ToUpper(strings.TrimSpace(value))
	code := phonenumbers.GetCountryCodeForRegion(region)
	if code == 0 {
		return "", "", fmt.Errorf("unknown region %q", value)
	}
	return region, "+" + strconv.Itoa(code), nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
