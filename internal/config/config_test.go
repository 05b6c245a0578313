package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDataSource(t *testing.T) {
	tests := []struct {
		name       string
		dataSource string
		legacy     string
		want       string
	}{
		{"default", "", "", DataSourceMemory},
		{"postgres", "postgres", "", DataSourcePostgres},
		{"case insensitive", "ENCORE", "", DataSourceEncore},
		{"legacy flag", "", "true", DataSourceEncore},
		{"explicit wins over legacy", "memory", "true", DataSourceMemory},
		{"unknown falls back", "mongo", "", DataSourceMemory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATA_SOURCE", tt.dataSource)
			t.Setenv("USE_ENCORE_BACKEND", tt.legacy)
			assert.Equal(t, tt.want, dataSource())
		})
	}
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("MOCK_LATENCY_MS", "250")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("JWT_TTL", "not-a-duration")
	t.Setenv("ENCORE_RATE_PER_SECOND", "2.5")

	cfg := Load()
	assert.Equal(t, 250*time.Millisecond, cfg.App.MockLatency)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 2.5, cfg.Encore.RatePerSecond)
	assert.Equal(t, 15*time.Minute, cfg.Uploads.TicketTTL)
	assert.False(t, cfg.IsProduction())
}
