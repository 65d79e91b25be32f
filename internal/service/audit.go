// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic on top of the store layer:
// the audit log, the audited-mutation coordinator, and the dashboard
// aggregations.
package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/profnitt/clubadmin/internal/model"
	"github.com/profnitt/clubadmin/internal/store"
)

// AuditService records and lists action log entries. The log is
// append-only; there are no update or delete paths.
type AuditService struct {
	queries *store.Queries
}

// NewAuditService creates a new AuditService.
func NewAuditService(db *sql.DB) *AuditService {
	return &AuditService{
		queries: store.New(db),
	}
}

// Record appends an entry to the action log. Action and target type
// must come from the closed sets; the actor may be anything, including
// empty (stored as "unknown").
func (s *AuditService) Record(ctx context.Context, action, targetType, targetID, performedBy string) (model.ActionLogEntry, error) {
	if !model.IsValidAction(action) {
		return model.ActionLogEntry{}, model.NewValidationError("action", fmt.Sprintf("unknown action %q", action))
	}
	if !model.IsValidTargetType(targetType) {
		return model.ActionLogEntry{}, model.NewValidationError("targetType", fmt.Sprintf("unknown target type %q", targetType))
	}
	if targetID == "" {
		return model.ActionLogEntry{}, model.NewValidationError("targetId", "target id is required")
	}

	entry, err := s.queries.AppendActionLog(ctx, store.AppendActionLogParams{
		Action:      action,
		TargetType:  targetType,
		TargetID:    targetID,
		PerformedBy: performedBy,
	})
	if err != nil {
		return model.ActionLogEntry{}, fmt.Errorf("appending action log: %w", err)
	}
	return entry, nil
}

// List returns action log entries most recent first. A limit of zero
// or less returns the whole log.
func (s *AuditService) List(ctx context.Context, limit int) ([]model.ActionLogEntry, error) {
	entries, err := s.queries.ListActionLog(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("listing action log: %w", err)
	}
	return entries, nil
}
