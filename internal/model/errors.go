// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the persisted record types for the admin panel:
// the four content entities, the action log, and admin accounts.
package model

import "fmt"

// ValidationError reports a missing or malformed field in a create or
// update payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// requireField returns an untyped nil when the value is present so a
// direct `return requireField(...)` never yields a non-nil error interface
// wrapping a nil pointer.
func requireField(field, value string) error {
	if value == "" {
		return NewValidationError(field, "is required")
	}
	return nil
}
