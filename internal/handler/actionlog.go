// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"

	"github.com/profnitt/clubadmin/internal/middleware"
	"github.com/profnitt/clubadmin/internal/service"
)

// ActionLogHandler exposes the raw action log.
type ActionLogHandler struct {
	audit *service.AuditService
}

// NewActionLogHandler creates a new ActionLogHandler.
func NewActionLogHandler(audit *service.AuditService) *ActionLogHandler {
	return &ActionLogHandler{audit: audit}
}

// AppendEntryRequest is the request body for a direct log append.
type AppendEntryRequest struct {
	Action     string `json:"action"`
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
}

// List handles GET /api/action-log. An optional ?limit= caps the
// number of entries; anything unparseable means no limit.
func (h *ActionLogHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.audit.List(r.Context(), limit)
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, entries)
}

// Append handles POST /api/action-log for out-of-band entries. The
// actor always comes from the session, never the body.
func (h *ActionLogHandler) Append(w http.ResponseWriter, r *http.Request) {
	var req AppendEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.audit.Record(r.Context(), req.Action, req.TargetType, req.TargetID, middleware.ActorName(r))
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteCreated(w, entry)
}
