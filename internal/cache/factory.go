// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"log/slog"
	"time"
)

// New selects the cache backend. With a Redis URL configured it tries
// Redis first and falls back to memory when the connection fails, so a
// missing Redis never takes the dashboard down.
func New(redisURL, prefix string, defaultTTL time.Duration) Cache {
	if redisURL != "" {
		rc, err := NewRedisCache(redisURL, prefix, defaultTTL)
		if err == nil {
			slog.Info("using redis cache", "prefix", prefix)
			return rc
		}
		slog.Warn("redis unavailable, falling back to memory cache", "error", err)
	}
	return NewMemoryCache(defaultTTL, 5*time.Minute)
}
