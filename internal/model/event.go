// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Event represents a club event record.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	EventType   string    `json:"eventType"`
	CreatedBy   string    `json:"createdBy"`
	Views       int64     `json:"views"`
	Edits       int64     `json:"edits"`
	Deletions   int64     `json:"deletions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate checks the required fields for creating an event.
func (e *Event) Validate() error {
	if err := requireField("title", e.Title); err != nil {
		return err
	}
	if e.Date.IsZero() {
		return NewValidationError("date", "is required")
	}
	if err := requireField("venue", e.Venue); err != nil {
		return err
	}
	return requireField("eventType", e.EventType)
}
