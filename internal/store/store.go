// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors surfaced to callers. Anything else coming out of a query
// method is a wrapped storage failure.
var (
	// ErrNotFound is returned when a well-formed identifier matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned when an identifier is not a valid UUID.
	ErrInvalidID = errors.New("invalid identifier")
)

// Queries provides access to all database queries. Create one with New and
// share it; it is safe for concurrent use.
type Queries struct {
	db *sql.DB
}

// New creates a Queries instance bound to the given database handle.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// newID returns a fresh record identifier.
func newID() string {
	return uuid.NewString()
}

// parseID validates that id is a well-formed record identifier.
func parseID(id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalidID
	}
	return id, nil
}

// marshalList encodes a string list for a JSON text column. nil encodes as
// an empty list.
func marshalList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// unmarshalList decodes a JSON text column into a string list.
func unmarshalList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	if items == nil {
		items = []string{}
	}
	return items
}
