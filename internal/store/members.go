// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/profnitt/clubadmin/internal/model"
)

const memberColumns = `id, name, role, type, photo_url, bio, linkedin_url,
	added_by, views, edits, deletions, created_at, updated_at`

// CreateMemberParams holds the payload for creating a member.
type CreateMemberParams struct {
	Name        string
	Role        string
	Type        string
	PhotoURL    string
	Bio         string
	LinkedinURL string
	AddedBy     string
}

// CreateMember validates the payload, assigns an id and timestamps, and
// persists the record. Type may be empty; an empty type never shows up in
// the dashboard distributions.
func (q *Queries) CreateMember(ctx context.Context, arg CreateMemberParams) (model.Member, error) {
	now := time.Now().UTC()
	m := model.Member{
		ID:          newID(),
		Name:        arg.Name,
		Role:        arg.Role,
		Type:        arg.Type,
		PhotoURL:    arg.PhotoURL,
		Bio:         arg.Bio,
		LinkedinURL: arg.LinkedinURL,
		AddedBy:     arg.AddedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := m.Validate(); err != nil {
		return model.Member{}, err
	}

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO members (id, name, role, type, photo_url, bio, linkedin_url,
			added_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Role, m.Type, m.PhotoURL, m.Bio, m.LinkedinURL,
		m.AddedBy, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return model.Member{}, fmt.Errorf("inserting member: %w", err)
	}

	return m, nil
}

// GetMember returns a single member by id.
func (q *Queries) GetMember(ctx context.Context, id string) (model.Member, error) {
	id, err := parseID(id)
	if err != nil {
		return model.Member{}, err
	}

	row := q.db.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM members WHERE id = ?`, id)
	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, ErrNotFound
		}
		return model.Member{}, fmt.Errorf("getting member: %w", err)
	}
	return m, nil
}

// ListMembers returns all members, newest first.
func (q *Queries) ListMembers(ctx context.Context) ([]model.Member, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+memberColumns+` FROM members ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	members := []model.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	return members, nil
}

// UpdateMemberParams holds the partial payload for updating a member. Nil
// fields are left unchanged.
type UpdateMemberParams struct {
	Name        *string
	Role        *string
	Type        *string
	PhotoURL    *string
	Bio         *string
	LinkedinURL *string
}

// UpdateMember merges the partial payload into the stored record. A
// non-empty type outside the closed set is rejected.
func (q *Queries) UpdateMember(ctx context.Context, id string, arg UpdateMemberParams) (model.Member, error) {
	m, err := q.GetMember(ctx, id)
	if err != nil {
		return model.Member{}, err
	}

	if arg.Type != nil && *arg.Type != "" && !model.IsValidMemberType(*arg.Type) {
		return model.Member{}, model.NewValidationError("type", "must be 'Core', 'Manager' or 'Coordinator'")
	}

	if arg.Name != nil {
		m.Name = *arg.Name
	}
	if arg.Role != nil {
		m.Role = *arg.Role
	}
	if arg.Type != nil {
		m.Type = *arg.Type
	}
	if arg.PhotoURL != nil {
		m.PhotoURL = *arg.PhotoURL
	}
	if arg.Bio != nil {
		m.Bio = *arg.Bio
	}
	if arg.LinkedinURL != nil {
		m.LinkedinURL = *arg.LinkedinURL
	}
	m.UpdatedAt = time.Now().UTC()

	_, err = q.db.ExecContext(ctx, `
		UPDATE members
		SET name = ?, role = ?, type = ?, photo_url = ?, bio = ?, linkedin_url = ?,
			updated_at = ?
		WHERE id = ?`,
		m.Name, m.Role, m.Type, m.PhotoURL, m.Bio, m.LinkedinURL,
		m.UpdatedAt, m.ID)
	if err != nil {
		return model.Member{}, fmt.Errorf("updating member: %w", err)
	}

	return m, nil
}

// DeleteMember removes the record and returns the removed snapshot.
func (q *Queries) DeleteMember(ctx context.Context, id string) (model.Member, error) {
	m, err := q.GetMember(ctx, id)
	if err != nil {
		return model.Member{}, err
	}

	if _, err := q.db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, m.ID); err != nil {
		return model.Member{}, fmt.Errorf("deleting member: %w", err)
	}

	m.Deletions++
	return m, nil
}

// BumpMemberViews increments the informational view counter.
func (q *Queries) BumpMemberViews(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := q.db.ExecContext(ctx, `UPDATE members SET views = views + 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("bumping member views: %w", err)
	}
	return nil
}

func scanMember(row interface{ Scan(...any) error }) (model.Member, error) {
	var m model.Member
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Type, &m.PhotoURL, &m.Bio, &m.LinkedinURL,
		&m.AddedBy, &m.Views, &m.Edits, &m.Deletions, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return model.Member{}, err
	}
	return m, nil
}
