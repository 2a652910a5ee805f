package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/nextchile/nextchile/internal/rut"
)

// Config holds environment-driven settings for the validation and rounding hooks.
type Config struct {
	RUTStrictRange   bool
	RUTMinDigits     int
	RUTMaxDigits     int
	RUTMinBody       int64
	RUTMaxBody       int64
	RoundingEnabled  bool
	RoundingNotify   bool
	LogLevel         string
	LogFormat        string
	MetricsNamespace string
}

// LoadConfig reads an optional .env file (NEXTCHILE_ENV_FILE, default ".env")
// and then the process environment. Variables already set win over the file.
func LoadConfig() (Config, error) {
	envFile := getenv("NEXTCHILE_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the process environment only.
func FromEnv() Config {
	def := rut.DefaultPolicy()
	return Config{
		RUTStrictRange:   getBool("RUT_STRICT_RANGE", false),
		RUTMinDigits:     getInt("RUT_MIN_DIGITS", def.MinDigits),
		RUTMaxDigits:     getInt("RUT_MAX_DIGITS", def.MaxDigits),
		RUTMinBody:       getInt64("RUT_MIN_BODY", def.MinBody),
		RUTMaxBody:       getInt64("RUT_MAX_BODY", def.MaxBody),
		RoundingEnabled:  getBool("TAX_ROUNDING_ENABLED", true),
		RoundingNotify:   getBool("TAX_ROUNDING_NOTIFY", true),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFormat:        getenv("LOG_FORMAT", "text"),
		MetricsNamespace: getenv("METRICS_NAMESPACE", "nextchile"),
	}
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	def := rut.DefaultPolicy()
	return Config{
		RUTMinDigits:     def.MinDigits,
		RUTMaxDigits:     def.MaxDigits,
		RUTMinBody:       def.MinBody,
		RUTMaxBody:       def.MaxBody,
		RoundingEnabled:  true,
		RoundingNotify:   true,
		LogLevel:         "info",
		LogFormat:        "text",
		MetricsNamespace: "nextchile",
	}
}

// RUTPolicy converts the RUT settings into a validator policy.
func (c Config) RUTPolicy() rut.Policy {
	return rut.Policy{
		MinDigits:   c.RUTMinDigits,
		MaxDigits:   c.RUTMaxDigits,
		StrictRange: c.RUTStrictRange,
		MinBody:     c.RUTMinBody,
		MaxBody:     c.RUTMaxBody,
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getInt64(key string, def int64) int64 {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
