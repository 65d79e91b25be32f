// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/profnitt/clubadmin/internal/model"
)

// ErrEmailTaken is returned when signup hits an already registered email.
var ErrEmailTaken = errors.New("email already registered")

const adminColumns = `id, name, email, password_hash, role, created_at, updated_at`

// CreateAdminParams holds the payload for creating an admin account.
type CreateAdminParams struct {
	Name         string
	Email        string
	PasswordHash string
}

// CreateAdmin persists a new admin account. Emails are stored lowercased
// and must be unique.
func (q *Queries) CreateAdmin(ctx context.Context, arg CreateAdminParams) (model.Admin, error) {
	now := time.Now().UTC()
	admin := model.Admin{
		Name:         arg.Name,
		Email:        strings.ToLower(strings.TrimSpace(arg.Email)),
		PasswordHash: arg.PasswordHash,
		Role:         model.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := q.db.ExecContext(ctx, `
		INSERT INTO admins (name, email, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		admin.Name, admin.Email, admin.PasswordHash, admin.Role, admin.CreatedAt, admin.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.Admin{}, ErrEmailTaken
		}
		return model.Admin{}, fmt.Errorf("inserting admin: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Admin{}, fmt.Errorf("reading admin id: %w", err)
	}
	admin.ID = id

	return admin, nil
}

// GetAdminByEmail returns the admin account for a login email.
func (q *Queries) GetAdminByEmail(ctx context.Context, email string) (model.Admin, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email)))
	return scanAdmin(row)
}

// GetAdminByID returns the admin account for a session user id.
func (q *Queries) GetAdminByID(ctx context.Context, id int64) (model.Admin, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = ?`, id)
	return scanAdmin(row)
}

// UpdateAdminPassword replaces the stored hash, used when login detects
// outdated argon2 parameters.
func (q *Queries) UpdateAdminPassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE admins SET password_hash = ?, updated_at = ? WHERE id = ?`,
		passwordHash, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating admin password: %w", err)
	}
	return nil
}

// UpdateAdminLastLogin stamps the most recent successful login.
func (q *Queries) UpdateAdminLastLogin(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE admins SET last_login_at = ? WHERE id = ?`,
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating admin last login: %w", err)
	}
	return nil
}

func scanAdmin(row *sql.Row) (model.Admin, error) {
	var a model.Admin
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Admin{}, ErrNotFound
		}
		return model.Admin{}, fmt.Errorf("scanning admin: %w", err)
	}
	return a, nil
}
