// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/profnitt/clubadmin/internal/cache"
	"github.com/profnitt/clubadmin/internal/service"
)

// DashboardHandler serves the dashboard aggregations behind a short
// TTL cache. A broken cache degrades to recomputing, never to an
// error.
type DashboardHandler struct {
	svc   *service.DashboardService
	cache cache.Cache
	ttl   time.Duration
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *service.DashboardService, c cache.Cache, ttl time.Duration) *DashboardHandler {
	return &DashboardHandler{svc: svc, cache: c, ttl: ttl}
}

// serveCached writes the cached payload for key if present, otherwise
// computes it, caches it, and writes it.
func (h *DashboardHandler) serveCached(w http.ResponseWriter, r *http.Request, key string, compute func(context.Context) (any, error)) {
	ctx := r.Context()

	if h.cache != nil {
		if raw, err := h.cache.Get(ctx, key); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(raw)
			return
		}
	}

	data, err := compute(ctx)
	if err != nil {
		writeEntityError(w, err)
		return
	}

	payload, err := json.Marshal(Response{Data: data})
	if err != nil {
		writeEntityError(w, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, payload, h.ttl); err != nil {
			slog.Warn("dashboard cache set failed", "key", key, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// Summary handles GET /api/dashboard/summary.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "dashboard:summary", func(ctx context.Context) (any, error) {
		return h.svc.Summary(ctx)
	})
}

// Activity handles GET /api/dashboard/activity.
func (h *DashboardHandler) Activity(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "dashboard:activity", func(ctx context.Context) (any, error) {
		return h.svc.Activity(ctx)
	})
}

// Logins handles GET /api/dashboard/logins.
func (h *DashboardHandler) Logins(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "dashboard:logins", func(ctx context.Context) (any, error) {
		return h.svc.Logins(ctx)
	})
}
