package app

import (
	"testing"
	"time"

	"go-hris-leave/internal/shared/connection"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("ELIGIBILITY_CACHE_TTL", "90")
	t.Setenv("SMTP_PORT", "not-a-port")
	t.Setenv("SMTP_HOST", "mail.local")

	cfg := LoadConfig()

	assert.Equal(t, connection.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, 90*time.Second, cfg.EligibilityCacheTTL)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "mail.local", cfg.Mail.Host)
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("X_TTL", "2m")
	assert.Equal(t, 2*time.Minute, envDuration("X_TTL", time.Second))

	t.Setenv("X_TTL", "soon")
	assert.Equal(t, time.Second, envDuration("X_TTL", time.Second))
}
