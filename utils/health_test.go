package utils

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestPingRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	assert.True(t, pingRedis(client, "session cache"))

	mr.Close()
	assert.False(t, pingRedis(client, "session cache"))
}

func TestGetHealthStatusReturnsSnapshot(t *testing.T) {
	now := time.Now()
	healthMu.Lock()
	latestHealth = HealthStatus{Database: true, SessionCache: true, AuthCache: false, CheckedAt: now}
	healthMu.Unlock()
	t.Cleanup(func() {
		healthMu.Lock()
		latestHealth = HealthStatus{}
		healthMu.Unlock()
	})

	got := GetHealthStatus()
	assert.True(t, got.Database)
	assert.True(t, got.SessionCache)
	assert.False(t, got.AuthCache)
	assert.Equal(t, now, got.CheckedAt)
}
