// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Audit actions. The set is closed; entries carrying anything else are
// never written by the application and are ignored by the aggregations.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionView   = "view"
)

// Audit target types, one per entity kind.
const (
	TargetEvent   = "event"
	TargetProject = "project"
	TargetMember  = "member"
	TargetGallery = "gallery"
)

// ActorUnknown is recorded when no session actor can be resolved.
const ActorUnknown = "unknown"

// ActionLogEntry is one append-only audit record. TargetID is a plain
// reference: the entity it points at may have been deleted since.
type ActionLogEntry struct {
	ID          int64     `json:"id"`
	Action      string    `json:"action"`
	TargetType  string    `json:"targetType"`
	TargetID    string    `json:"targetId"`
	PerformedBy string    `json:"performedBy"`
	Timestamp   time.Time `json:"timestamp"`
}

// IsValidAction reports whether a is one of the four recognized actions.
func IsValidAction(a string) bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionView:
		return true
	}
	return false
}

// IsValidTargetType reports whether t names one of the entity kinds.
func IsValidTargetType(t string) bool {
	switch t {
	case TargetEvent, TargetProject, TargetMember, TargetGallery:
		return true
	}
	return false
}
