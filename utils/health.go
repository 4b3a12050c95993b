// File: utils/health.go
package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// How often dependencies are pinged, and how long a single ping may take.
const (
	healthCheckInterval = 60 * time.Second
	healthCheckTimeout  = 5 * time.Second
)

// HealthStatus is the latest snapshot of dependency connectivity.
type HealthStatus struct {
	Database     bool      `json:"database"`
	SessionCache bool      `json:"sessionCache"`
	AuthCache    bool      `json:"authCache"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	healthMu     sync.RWMutex
	latestHealth HealthStatus
)

// GetHealthStatus returns the most recent dependency snapshot. Before the
// first check completes the zero value is returned.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return latestHealth
}

func pingRedis(client *redis.Client, component string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Sugar().Warnf("health: %s unreachable: %v", component, err)
		return false
	}
	return true
}

func pingMongo(client *mongo.Client) bool {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		GetLogger().Sugar().Warnf("health: mongodb unreachable: %v", err)
		return false
	}
	return true
}

// StartHealthMonitor pings MongoDB and both Redis caches on a fixed
// interval, keeping an in-memory snapshot for the health endpoint. The
// first check runs immediately.
func StartHealthMonitor(sessionCache, authCache *redis.Client, mongoClient *mongo.Client) {
	check := func() {
		snapshot := HealthStatus{
			Database:     pingMongo(mongoClient),
			SessionCache: pingRedis(sessionCache, "session cache"),
			AuthCache:    pingRedis(authCache, "auth cache"),
			CheckedAt:    time.Now(),
		}
		healthMu.Lock()
		latestHealth = snapshot
		healthMu.Unlock()
	}

	go func() {
		check()
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
