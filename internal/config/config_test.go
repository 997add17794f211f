package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 90000, cfg.DefaultBalance)
	assert.Equal(t, 3, cfg.UserDailyCap)
	assert.Equal(t, 3, cfg.SongDailyCap)
	assert.Equal(t, "file://./data", cfg.StoreURL)
	assert.True(t, cfg.RestoreState)
}

func TestParseRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Parse()
	assert.Error(t, err)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("USER_DAILY_CAP", "5")
	t.Setenv("PLAYBACK_SPEED", "30")
	t.Setenv("RESTORE_STATE", "false")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.UserDailyCap)
	assert.Equal(t, 30.0, cfg.PlaybackSpeed)
	assert.False(t, cfg.RestoreState)
}

func TestRateLimitNormalize(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	rl := LoadRateLimitConfig()
	assert.Equal(t, 1, rl.Capacity)
	assert.Equal(t, 2*time.Second, rl.RefillInterval)
	assert.Equal(t, 10*time.Second, rl.TTL)
}

func TestRedisAddress(t *testing.T) {
	assert.Equal(t, "cache:6380", RedisConfig{Host: "cache", Port: "6380", Addr: "localhost:6379"}.address())
	assert.Equal(t, "localhost:6379", RedisConfig{Addr: "localhost:6379"}.address())
}
