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

const projectColumns = `id, title, description, technologies, status, github_url, demo_url,
	created_by, views, edits, deletions, created_at, updated_at`

// CreateProjectParams holds the payload for creating a project.
type CreateProjectParams struct {
	Title        string
	Description  string
	Technologies []string
	Status       string
	GithubURL    string
	DemoURL      string
	CreatedBy    string
}

// CreateProject validates the payload, assigns an id and timestamps, and
// persists the record.
func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (model.Project, error) {
	now := time.Now().UTC()
	p := model.Project{
		ID:           newID(),
		Title:        arg.Title,
		Description:  arg.Description,
		Technologies: arg.Technologies,
		Status:       arg.Status,
		GithubURL:    arg.GithubURL,
		DemoURL:      arg.DemoURL,
		CreatedBy:    arg.CreatedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if err := p.Validate(); err != nil {
		return model.Project{}, err
	}

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO projects (id, title, description, technologies, status, github_url, demo_url,
			created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, marshalList(p.Technologies), p.Status,
		p.GithubURL, p.DemoURL, p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return model.Project{}, fmt.Errorf("inserting project: %w", err)
	}

	return p, nil
}

// GetProject returns a single project by id.
func (q *Queries) GetProject(ctx context.Context, id string) (model.Project, error) {
	id, err := parseID(id)
	if err != nil {
		return model.Project{}, err
	}

	row := q.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, ErrNotFound
		}
		return model.Project{}, fmt.Errorf("getting project: %w", err)
	}
	return p, nil
}

// ListProjects returns all projects, newest first.
func (q *Queries) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// UpdateProjectParams holds the partial payload for updating a project.
// Nil fields are left unchanged.
type UpdateProjectParams struct {
	Title        *string
	Description  *string
	Technologies *[]string
	Status       *string
	GithubURL    *string
	DemoURL      *string
}

// UpdateProject merges the partial payload into the stored record. A status
// outside the closed set is rejected.
func (q *Queries) UpdateProject(ctx context.Context, id string, arg UpdateProjectParams) (model.Project, error) {
	p, err := q.GetProject(ctx, id)
	if err != nil {
		return model.Project{}, err
	}

	if arg.Status != nil && !model.IsValidProjectStatus(*arg.Status) {
		return model.Project{}, model.NewValidationError("status", "must be 'ongoing' or 'completed'")
	}

	if arg.Title != nil {
		p.Title = *arg.Title
	}
	if arg.Description != nil {
		p.Description = *arg.Description
	}
	if arg.Technologies != nil {
		p.Technologies = *arg.Technologies
	}
	if arg.Status != nil {
		p.Status = *arg.Status
	}
	if arg.GithubURL != nil {
		p.GithubURL = *arg.GithubURL
	}
	if arg.DemoURL != nil {
		p.DemoURL = *arg.DemoURL
	}
	p.UpdatedAt = time.Now().UTC()

	_, err = q.db.ExecContext(ctx, `
		UPDATE projects
		SET title = ?, description = ?, technologies = ?, status = ?, github_url = ?,
			demo_url = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.Description, marshalList(p.Technologies), p.Status, p.GithubURL,
		p.DemoURL, p.UpdatedAt, p.ID)
	if err != nil {
		return model.Project{}, fmt.Errorf("updating project: %w", err)
	}

	return p, nil
}

// DeleteProject removes the record and returns the removed snapshot.
func (q *Queries) DeleteProject(ctx context.Context, id string) (model.Project, error) {
	p, err := q.GetProject(ctx, id)
	if err != nil {
		return model.Project{}, err
	}

	if _, err := q.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, p.ID); err != nil {
		return model.Project{}, fmt.Errorf("deleting project: %w", err)
	}

	p.Deletions++
	return p, nil
}

// BumpProjectViews increments the informational view counter.
func (q *Queries) BumpProjectViews(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := q.db.ExecContext(ctx, `UPDATE projects SET views = views + 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("bumping project views: %w", err)
	}
	return nil
}

func scanProject(row interface{ Scan(...any) error }) (model.Project, error) {
	var p model.Project
	var technologies string
	err := row.Scan(&p.ID, &p.Title, &p.Description, &technologies, &p.Status,
		&p.GithubURL, &p.DemoURL, &p.CreatedBy, &p.Views, &p.Edits, &p.Deletions,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Project{}, err
	}
	p.Technologies = unmarshalList(technologies)
	return p, nil
}
