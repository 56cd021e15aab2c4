package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the server reads from the environment. API keys are
// deliberately not required at load time: a missing credential must surface as a
// per-request 500, not keep the server from starting.
type Config struct {
	Port string

	Engine string

	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	AnalyzeTimeout time.Duration
	MaxBodyBytes   int64

	CORSOrigins []string

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	// .env is a local-development convenience; in deployment the platform sets env vars.
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8000"),

		Engine: getEnv("ENGINE", "gemini"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		AnalyzeTimeout: getDuration("ANALYZE_TIMEOUT", 60*time.Second),
		MaxBodyBytes:   getInt64("MAX_BODY_BYTES", 1<<20),

		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.Warnf("invalid duration for %s: %v, using default %s", k, err, def)
		return def
	}
	return d
}

func getInt64(k string, def int64) int64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		logrus.Warnf("invalid value for %s: %q, using default %d", k, v, def)
		return def
	}
	return n
}
