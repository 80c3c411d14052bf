package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// Email
	EmailFrom    string
	ResendAPIKey string

	// AI provider ("openai" or "gemini")
	AIProvider    string
	AITemperature float64
	AITimeout     time.Duration
	// AI - OpenAI
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string // Optional: for OpenAI-compatible gateways
	// AI - Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Coaching
	CoachRecentSessions int

	// Chat rate limiting (per client IP)
	ChatRateLimit  int
	ChatRateWindow time.Duration

	// Honor X-Forwarded-For / X-Real-IP; enable only behind a reverse proxy
	TrustProxyHeaders bool

	// Report archive (optional, S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.)
	S3Region        string
	S3Bucket        string // Empty disables archiving
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string // Optional: for S3-compatible services
	S3PresignExpiry time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Lifecoach"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:  envRequired("APP_URL"),
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/lifecoach.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Security
		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		// Email (RESEND_API_KEY optional in development, required in production)
		EmailFrom:    envString("EMAIL_FROM", "coach@example.com"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),

		// AI
		AIProvider:    envString("AI_PROVIDER", "openai"),
		AITemperature: envFloat("AI_TEMPERATURE", 0.7),
		AITimeout:     envDuration("AI_TIMEOUT", 60*time.Second),
		OpenAIAPIKey:  envString("OPENAI_API_KEY", ""),
		OpenAIModel:   envString("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: envString("OPENAI_BASE_URL", ""),
		GeminiAPIKey:  envString("GEMINI_API_KEY", ""),
		GeminiModel:   envString("GEMINI_MODEL", "gemini-2.0-flash"),

		// Coaching
		CoachRecentSessions: envInt("COACH_RECENT_SESSIONS", 5),

		// Chat rate limiting
		ChatRateLimit:  envInt("CHAT_RATE_LIMIT", 30),
		ChatRateWindow: envDuration("CHAT_RATE_WINDOW", time.Minute),

		TrustProxyHeaders: envBool("TRUST_PROXY_HEADERS", false),

		// Report archive
		S3Region:        envString("S3_REGION", "us-east-1"),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", time.Hour),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures all required services are configured for production deployments.
// Development allows email to run in log mode for easier local testing.
func validateProduction(cfg *Config) {
	if cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY",
			"hint", "set APP_ENV=development for local testing with email log mode")
		os.Exit(1)
	}

	if cfg.AIAPIKey() == "" {
		slog.Error("production deployment requires an API key for the selected AI provider",
			"provider", cfg.AIProvider)
		os.Exit(1)
	}
}

// AIAPIKey returns the API key of the configured AI provider.
func (c *Config) AIAPIKey() string {
	switch c.AIProvider {
	case "gemini":
		return c.GeminiAPIKey
	default:
		return c.OpenAIAPIKey
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("config invalid float, using default", "key", key, "value", v, "default", def)
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and API keys are excluded.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		AppURL:  c.AppURL,
		Port:    c.Port,

		EmailFrom: c.EmailFrom,

		AIProvider:    c.AIProvider,
		AITemperature: c.AITemperature,
		OpenAIModel:   c.OpenAIModel,
		GeminiModel:   c.GeminiModel,

		CoachRecentSessions: c.CoachRecentSessions,
	}
}
