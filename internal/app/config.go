package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go-hris-leave/internal/notification"
	"go-hris-leave/internal/shared/connection"
)

type Config struct {
	DB                  connection.DBConfig
	RedisAddr           string
	KafkaBroker         string
	EligibilityCacheTTL time.Duration
	RBACModelPath       string
	Mail                notification.MailConfig
}

// LoadConfig reads the environment. godotenv has already merged .env into it
// by the time the mains call this.
func LoadConfig() Config {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))
	if driver == "" {
		driver = connection.DriverPostgres
	}

	return Config{
		DB: connection.DBConfig{
			Driver:   driver,
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
			DSN:      os.Getenv("DB_DSN"),
		},
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		KafkaBroker:         os.Getenv("KAFKA_BROKER"),
		EligibilityCacheTTL: envDuration("ELIGIBILITY_CACHE_TTL", 0),
		RBACModelPath:       os.Getenv("RBAC_MODEL_PATH"),
		Mail: notification.MailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     envInt("SMTP_PORT", 587),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
	}
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

// envDuration accepts Go durations ("90s") or plain seconds.
func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
