// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/profnitt/clubadmin/internal/model"
)

// AppendActionLogParams holds the payload for appending an audit entry. A
// zero Timestamp is replaced with the server time at append.
type AppendActionLogParams struct {
	Action      string
	TargetType  string
	TargetID    string
	PerformedBy string
	Timestamp   time.Time
}

// AppendActionLog persists one audit entry. performedBy is accepted as-is,
// "unknown" included; an empty value is stored as "unknown". The log is
// append-only: no update or delete queries exist for this table.
func (q *Queries) AppendActionLog(ctx context.Context, arg AppendActionLogParams) (model.ActionLogEntry, error) {
	entry := model.ActionLogEntry{
		Action:      arg.Action,
		TargetType:  arg.TargetType,
		TargetID:    arg.TargetID,
		PerformedBy: arg.PerformedBy,
		Timestamp:   arg.Timestamp,
	}
	if entry.PerformedBy == "" {
		entry.PerformedBy = model.ActorUnknown
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	res, err := q.db.ExecContext(ctx, `
		INSERT INTO action_log (action, target_type, target_id, performed_by, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		entry.Action, entry.TargetType, entry.TargetID, entry.PerformedBy, entry.Timestamp)
	if err != nil {
		return model.ActionLogEntry{}, fmt.Errorf("appending action log entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.ActionLogEntry{}, fmt.Errorf("reading action log entry id: %w", err)
	}
	entry.ID = id

	return entry, nil
}

// ListActionLog returns audit entries most recent first. limit <= 0 returns
// the full log.
func (q *Queries) ListActionLog(ctx context.Context, limit int64) ([]model.ActionLogEntry, error) {
	query := `SELECT id, action, target_type, target_id, performed_by, timestamp
		FROM action_log ORDER BY timestamp DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing action log: %w", err)
	}
	defer rows.Close()

	entries := []model.ActionLogEntry{}
	for rows.Next() {
		var e model.ActionLogEntry
		if err := rows.Scan(&e.ID, &e.Action, &e.TargetType, &e.TargetID, &e.PerformedBy, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning action log entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing action log: %w", err)
	}
	return entries, nil
}

// CountActionLogForTarget returns how many entries reference the given
// target, regardless of whether the entity still exists.
func (q *Queries) CountActionLogForTarget(ctx context.Context, targetType, targetID string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM action_log WHERE target_type = ? AND target_id = ?`,
		targetType, targetID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting action log entries: %w", err)
	}
	return count, nil
}
