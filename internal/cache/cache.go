// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the short-lived cache in front of the
// dashboard aggregations: an in-memory store by default, Redis when
// configured.
package cache

import (
	"context"
	"time"
)

// Cache is the interface both backends implement. Values are []byte
// (serialized JSON payloads). Implementations must be thread-safe.
type Cache interface {
	// Get returns the value for key, or ErrCacheMiss if absent or
	// expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value. A zero TTL means the backend default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases any resources held by the cache.
	Close() error
}

// Error is the error type for cache operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrCacheMiss indicates the key was not found or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)
