package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
)

type Config struct {
	LogLevel     slog.Level
	LogFormat    string
	LogFile      string
	BindAddr     string
	DebugMode    bool
	Locale       language.Tag
	CoverBaseUrl string
}

// Load reads configuration from the environment. Values from a .env file are picked up when
// the binary imports godotenv/autoload.
func Load() (*Config, error) {
	cfg := &Config{
		LogFormat:    strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
		LogFile:      getEnvOrDefault("LOG_FILE", ""),
		BindAddr:     getEnvOrDefault("BIND_ADDR", ":8080"),
		DebugMode:    getBoolEnv("DEBUG_MODE"),
		CoverBaseUrl: getEnvOrDefault("COVER_BASE_URL", "/covers/"),
	}

	logLevel := strings.ToLower(getEnvOrDefault("LOG_LEVEL", "debug"))
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q, one of debug, info, warn or error expected", logLevel)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q, text or json expected", cfg.LogFormat)
	}

	locale := getEnvOrDefault("LOCALE", "und")
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid LOCALE %q: %w", locale, err)
	}
	cfg.Locale = tag

	return cfg, nil
}

func getEnvOrDefault(key, default_ string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}

	return default_
}

func getBoolEnv(key string) bool {
	if val := strings.ToLower(os.Getenv(key)); val == "yes" || val == "on" || val == "true" {
		return true
	}

	return false
}
