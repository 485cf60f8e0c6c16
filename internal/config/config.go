package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	PatternFile string // path to a patterns.yaml file (optional, empty = built-in patterns)
	Zone        string // IANA zone for ad-hoc patterns (default: UTC)
}

// Load reads the LOGSTAMP_* environment. Every variable has a default, so a
// bare environment yields a working configuration.
func Load() *Config {
	cfg := &Config{
		// Logging
		LogLevel:  getenv("LOGSTAMP_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LOGSTAMP_PRETTY_LOG", true),

		// Pattern sources
		PatternFile: getenv("LOGSTAMP_PATTERN_FILE", ""),
		Zone:        getenv("LOGSTAMP_ZONE", "UTC"),
	}

	// Log config only in debug mode
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", *cfg)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
