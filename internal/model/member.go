// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Member type values. The type field is optional but closed: an absent
// type is stored empty, an out-of-set value is rejected.
const (
	MemberTypeCore        = "Core"
	MemberTypeManager     = "Manager"
	MemberTypeCoordinator = "Coordinator"
)

// Member represents a team member record.
type Member struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Type        string    `json:"type,omitempty"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	Bio         string    `json:"bio"`
	LinkedinURL string    `json:"linkedinUrl,omitempty"`
	AddedBy     string    `json:"addedBy"`
	Views       int64     `json:"views"`
	Edits       int64     `json:"edits"`
	Deletions   int64     `json:"deletions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsValidMemberType reports whether t is in the closed member type set.
func IsValidMemberType(t string) bool {
	return t == MemberTypeCore || t == MemberTypeManager || t == MemberTypeCoordinator
}

// Validate checks the required fields for creating a member.
func (m *Member) Validate() error {
	if err := requireField("name", m.Name); err != nil {
		return err
	}
	if err := requireField("role", m.Role); err != nil {
		return err
	}
	if err := requireField("bio", m.Bio); err != nil {
		return err
	}
	if m.Type != "" && !IsValidMemberType(m.Type) {
		return NewValidationError("type", "must be 'Core', 'Manager' or 'Coordinator'")
	}
	return nil
}
