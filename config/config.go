package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string // "development" or "production"
	DBUrl       string
	FrontendURL string
	// Telegram notification sink
	TelegramBotToken string
	TelegramChatID   string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	ContactRateLimitCount    int
	ContactRateLimitWindow   time.Duration
	// Duplicate Guard Configuration
	DuplicateTTL time.Duration
	// Validation policy
	SubjectRequired  bool
	MaxMessageLength int
	// Admin triage API
	AdminJWTSecret string
}

// IsProduction reports whether the server runs with the production error
// policy (persistence failures are hard failures, no error detail leaks).
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: strings.ToLower(getEnv("ENVIRONMENT", "development")),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Telegram Configuration
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		ContactRateLimitCount:    getEnvInt("CONTACT_RATE_LIMIT_COUNT", 3),      // 3 submissions per window
		ContactRateLimitWindow:   time.Duration(getEnvInt("CONTACT_RATE_LIMIT_WINDOW_HOURS", 4)) * time.Hour,
		// Duplicate Guard
		DuplicateTTL: time.Duration(getEnvInt("DUPLICATE_TTL_MINUTES", 5)) * time.Minute,
		// Validation policy
		SubjectRequired:  getEnvBool("SUBJECT_REQUIRED", true),
		MaxMessageLength: getEnvInt("MAX_MESSAGE_LENGTH", 2000),
		// Admin triage API
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Submissions will not be persisted.")
	}
	if cfg.TelegramBotToken == "" || cfg.TelegramChatID == "" {
		log.Println("WARNING: Telegram credentials not configured. Chat notifications disabled.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting and duplicate guard will use in-memory stores.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
