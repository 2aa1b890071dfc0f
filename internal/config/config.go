package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Upload    UploadConfig
	MinIO     MinIOConfig
	Email     EmailConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
	// PublicBaseURL prefixes asset references handed to anonymous callers.
	PublicBaseURL string
	CORSOrigins   []string
}

type DatabaseConfig struct {
	Host              string
	Port              int
	User              string
	Password          string
	Database          string
	SSLMode           string
	MaxConns          int
	MinConns          int
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	ConnectTimeout    time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// =====================================================
// UPLOAD / OBJECT STORAGE
// =====================================================

type UploadConfig struct {
	Backend           string // local, minio
	Root              string
	AllowedExtensions []string
	MaxSizeMB         int
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// =====================================================
// NOTIFICATIONS
// =====================================================

type EmailConfig struct {
	Provider       string // log, smtp, sendgrid
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SendGridAPIKey string
	From           string
	FromName       string
	NotifyTo       string
}

// AdminConfig is the credential used when no admin identity exists yet.
type AdminConfig struct {
	Username string
	Email    string
	Password string
}

type RateLimitConfig struct {
	LoginAttempts   int
	LoginWindow     time.Duration
	ContactAttempts int
	ContactWindow   time.Duration
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:          getEnv("APP_NAME", "Portfolio API"),
			Environment:   getEnv("APP_ENV", "development"),
			Port:          getEnv("APP_PORT", "8080"),
			Version:       getEnv("APP_VERSION", "1.0.0"),
			LogLevel:      getEnv("LOG_LEVEL", "info"),
			PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
			CORSOrigins:   getEnvList("CORS_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Host:              getEnv("DB_HOST", "localhost"),
			Port:              getEnvInt("DB_PORT", 5432),
			User:              getEnv("DB_USER", "postgres"),
			Password:          getEnv("DB_PASSWORD", ""),
			Database:          getEnv("DB_NAME", "portfolio"),
			SSLMode:           getEnv("DB_SSLMODE", "disable"),
			MaxConns:          getEnvInt("DB_MAX_CONNS", 10),
			MinConns:          getEnvInt("DB_MIN_CONNS", 2),
			MaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
			MaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", time.Minute),
			HealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
			MaxRetries:        getEnvInt("DB_MAX_RETRIES", 5),
			RetryDelay:        getEnvDuration("DB_RETRY_DELAY", time.Second),
			ConnectTimeout:    getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", defaultJWTSecret),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 168), // 7 days
		},
		Upload: UploadConfig{
			Backend:           strings.ToLower(getEnv("UPLOAD_BACKEND", "local")),
			Root:              getEnv("UPLOAD_ROOT", "uploads"),
			AllowedExtensions: getEnvList("UPLOAD_ALLOWED_EXTENSIONS", []string{"png", "jpg", "jpeg", "gif", "svg", "webp"}),
			MaxSizeMB:         getEnvInt("UPLOAD_MAX_SIZE_MB", 16),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "portfolio"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Email: EmailConfig{
			Provider:       strings.ToLower(getEnv("EMAIL_PROVIDER", "log")),
			SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:       getEnvInt("SMTP_PORT", 587),
			SMTPUsername:   getEnv("SMTP_USERNAME", ""),
			SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
			SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			From:           getEnv("EMAIL_FROM", "noreply@portfolio.local"),
			FromName:       getEnv("EMAIL_FROM_NAME", "Portfolio"),
			NotifyTo:       getEnv("EMAIL_NOTIFY_TO", ""),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Email:    getEnv("ADMIN_EMAIL", "admin@portfolio.com"),
			Password: getEnv("ADMIN_PASSWORD", "Admin@1234"),
		},
		RateLimit: RateLimitConfig{
			LoginAttempts:   getEnvInt("RATE_LIMIT_LOGIN_ATTEMPTS", 5),
			LoginWindow:     getEnvDuration("RATE_LIMIT_LOGIN_WINDOW", 15*time.Minute),
			ContactAttempts: getEnvInt("RATE_LIMIT_CONTACT_ATTEMPTS", 5),
			ContactWindow:   getEnvDuration("RATE_LIMIT_CONTACT_WINDOW", time.Hour),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded config for values the process cannot run with.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("JWT_EXPIRY_HOURS must be positive")
	}

	switch c.Upload.Backend {
	case "local", "minio":
	default:
		return fmt.Errorf("UPLOAD_BACKEND must be local or minio, got %q", c.Upload.Backend)
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		return fmt.Errorf("UPLOAD_ALLOWED_EXTENSIONS must list at least one extension")
	}

	switch c.Email.Provider {
	case "log", "smtp", "sendgrid":
	default:
		return fmt.Errorf("EMAIL_PROVIDER must be log, smtp or sendgrid, got %q", c.Email.Provider)
	}
	if c.Email.Provider == "sendgrid" && c.Email.SendGridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY must be set when EMAIL_PROVIDER=sendgrid")
	}

	// Production environment must not run on development secrets
	if c.IsProduction() {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Email.NotifyTo == "" {
			fmt.Println("WARNING: EMAIL_NOTIFY_TO not set - contact notifications are disabled")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// JWTTTL returns the session token lifetime.
func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWT.ExpiryHours) * time.Hour
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvList splits a comma separated value, dropping blanks.
func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
