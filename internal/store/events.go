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

const eventColumns = `id, title, description, date, venue, tags, image_url, event_type,
	created_by, views, edits, deletions, created_at, updated_at`

// CreateEventParams holds the payload for creating an event.
type CreateEventParams struct {
	Title       string
	Description string
	Date        time.Time
	Venue       string
	Tags        []string
	ImageURL    string
	EventType   string
	CreatedBy   string
}

// CreateEvent validates the payload, assigns an id and timestamps, and
// persists the record.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (model.Event, error) {
	now := time.Now().UTC()
	ev := model.Event{
		ID:          newID(),
		Title:       arg.Title,
		Description: arg.Description,
		Date:        arg.Date,
		Venue:       arg.Venue,
		Tags:        arg.Tags,
		ImageURL:    arg.ImageURL,
		EventType:   arg.EventType,
		CreatedBy:   arg.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ev.Tags == nil {
		ev.Tags = []string{}
	}
	if err := ev.Validate(); err != nil {
		return model.Event{}, err
	}

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO events (id, title, description, date, venue, tags, image_url, event_type,
			created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Title, ev.Description, ev.Date, ev.Venue, marshalList(ev.Tags),
		ev.ImageURL, ev.EventType, ev.CreatedBy, ev.CreatedAt, ev.UpdatedAt)
	if err != nil {
		return model.Event{}, fmt.Errorf("inserting event: %w", err)
	}

	return ev, nil
}

// GetEvent returns a single event by id.
func (q *Queries) GetEvent(ctx context.Context, id string) (model.Event, error) {
	id, err := parseID(id)
	if err != nil {
		return model.Event{}, err
	}

	row := q.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Event{}, ErrNotFound
		}
		return model.Event{}, fmt.Errorf("getting event: %w", err)
	}
	return ev, nil
}

// ListEvents returns all events, most recent event date first.
func (q *Queries) ListEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

// UpdateEventParams holds the partial payload for updating an event. Nil
// fields are left unchanged.
type UpdateEventParams struct {
	Title       *string
	Description *string
	Date        *time.Time
	Venue       *string
	Tags        *[]string
	ImageURL    *string
	EventType   *string
}

// UpdateEvent merges the partial payload into the stored record and
// refreshes the last-modified timestamp. Two concurrent updates against
// the same id interleave last-write-wins.
func (q *Queries) UpdateEvent(ctx context.Context, id string, arg UpdateEventParams) (model.Event, error) {
	ev, err := q.GetEvent(ctx, id)
	if err != nil {
		return model.Event{}, err
	}

	if arg.Title != nil {
		ev.Title = *arg.Title
	}
	if arg.Description != nil {
		ev.Description = *arg.Description
	}
	if arg.Date != nil {
		ev.Date = *arg.Date
	}
	if arg.Venue != nil {
		ev.Venue = *arg.Venue
	}
	if arg.Tags != nil {
		ev.Tags = *arg.Tags
	}
	if arg.ImageURL != nil {
		ev.ImageURL = *arg.ImageURL
	}
	if arg.EventType != nil {
		ev.EventType = *arg.EventType
	}
	ev.UpdatedAt = time.Now().UTC()

	_, err = q.db.ExecContext(ctx, `
		UPDATE events
		SET title = ?, description = ?, date = ?, venue = ?, tags = ?, image_url = ?,
			event_type = ?, updated_at = ?
		WHERE id = ?`,
		ev.Title, ev.Description, ev.Date, ev.Venue, marshalList(ev.Tags), ev.ImageURL,
		ev.EventType, ev.UpdatedAt, ev.ID)
	if err != nil {
		return model.Event{}, fmt.Errorf("updating event: %w", err)
	}

	return ev, nil
}

// DeleteEvent removes the record and returns the removed snapshot.
func (q *Queries) DeleteEvent(ctx context.Context, id string) (model.Event, error) {
	ev, err := q.GetEvent(ctx, id)
	if err != nil {
		return model.Event{}, err
	}

	if _, err := q.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, ev.ID); err != nil {
		return model.Event{}, fmt.Errorf("deleting event: %w", err)
	}

	ev.Deletions++
	return ev, nil
}

// BumpEventViews increments the informational view counter.
func (q *Queries) BumpEventViews(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := q.db.ExecContext(ctx, `UPDATE events SET views = views + 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("bumping event views: %w", err)
	}
	return nil
}

// scanEvent reads one event row from a *sql.Row or *sql.Rows.
func scanEvent(row interface{ Scan(...any) error }) (model.Event, error) {
	var ev model.Event
	var tags string
	err := row.Scan(&ev.ID, &ev.Title, &ev.Description, &ev.Date, &ev.Venue, &tags,
		&ev.ImageURL, &ev.EventType, &ev.CreatedBy, &ev.Views, &ev.Edits, &ev.Deletions,
		&ev.CreatedAt, &ev.UpdatedAt)
	if err != nil {
		return model.Event{}, err
	}
	ev.Tags = unmarshalList(tags)
	return ev, nil
}
