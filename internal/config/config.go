package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		ENV string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		Driver   string
		DSN      string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	GRPC struct {
		Host string
		Port string
	}

	Metrics struct {
		Addr string
	}

	Sentry struct {
		DSN string
	}

	Auth struct {
		JWTSecret            string
		JWTIssuer            string
		OperatorToken        string
		OperatorPasswordHash string
		// Identity provider admin API, used to revoke external identities.
		AdminURL string
		AdminKey string
	}

	Campus struct {
		Domain string
		Infix  string
	}

	Dice struct {
		Timezone      string
		MatchTTL      time.Duration
		SweepInterval time.Duration
	}

	Moderation struct {
		WarnThreshold int
		BanThreshold  int
	}

	Presence struct {
		TTL time.Duration
	}
}

// New loads configuration from the environment. A .env file in the working
// directory is read first when present; real environment variables win.
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.App.ENV = getEnvDefault("APP_ENV", "development")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "campus_server")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.Driver = strings.ToLower(getEnvDefault("DB_DRIVER", "postgres"))
	cfg.DB.DSN = os.Getenv("DATABASE_URL")
	if cfg.DB.DSN == "" {
		cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
		cfg.DB.User = getEnvDefault("DB_USER", "postgres")
		cfg.DB.Password = getEnvDefault("DB_PASSWORD", "postgres")
		cfg.DB.Name = getEnvDefault("DB_NAME", "campus")
		cfg.DB.SSLMode = getEnvDefault("DB_SSLMODE", "disable")

		switch cfg.DB.Driver {
		case "mysql":
			cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
			cfg.DB.DSN = fmt.Sprintf(
				"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
				cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
			)
		default:
			cfg.DB.Port = getEnvDefault("DB_PORT", "5432")
			cfg.DB.DSN = fmt.Sprintf(
				"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
				cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port, cfg.DB.SSLMode,
			)
		}
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	cfg.Metrics.Addr = getEnvDefault("METRICS_ADDR", ":9090")
	cfg.Sentry.DSN = os.Getenv("SENTRY_DSN")

	// Auth
	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.Auth.JWTIssuer = getEnvDefault("JWT_ISSUER", "")
	cfg.Auth.OperatorToken = os.Getenv("OPERATOR_TOKEN")
	cfg.Auth.OperatorPasswordHash = os.Getenv("OPERATOR_PASSWORD_HASH")
	cfg.Auth.AdminURL = strings.TrimRight(getEnvDefault("IDENTITY_ADMIN_URL", ""), "/")
	cfg.Auth.AdminKey = os.Getenv("IDENTITY_ADMIN_KEY")

	// Campus
	cfg.Campus.Domain = strings.ToLower(getEnvDefault("CAMPUS_EMAIL_DOMAIN", "institution.domain"))
	cfg.Campus.Infix = strings.ToLower(getEnvDefault("CAMPUS_EMAIL_INFIX", "eg"))

	// Dice
	cfg.Dice.Timezone = getEnvDefault("DICE_TIMEZONE", "UTC")
	cfg.Dice.MatchTTL = getEnvDuration("DICE_MATCH_TTL", 24*time.Hour)
	cfg.Dice.SweepInterval = getEnvDuration("DICE_SWEEP_INTERVAL", 5*time.Minute)

	// Moderation
	cfg.Moderation.WarnThreshold = getEnvInt("MODERATION_WARN_THRESHOLD", 3)
	cfg.Moderation.BanThreshold = getEnvInt("MODERATION_BAN_THRESHOLD", 5)

	cfg.Presence.TTL = getEnvDuration("PRESENCE_TTL", 5*time.Minute)

	return cfg
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v, err := strconv.Atoi(getEnvDefault(k, "")); err == nil {
		return v
	}
	return def
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnvDefault(k, "")); err == nil && d > 0 {
		return d
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
