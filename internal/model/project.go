// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Project status values.
const (
	ProjectStatusOngoing   = "ongoing"
	ProjectStatusCompleted = "completed"
)

// Project represents a club project record.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Status       string    `json:"status"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	DemoURL      string    `json:"demoUrl,omitempty"`
	CreatedBy    string    `json:"createdBy"`
	Views        int64     `json:"views"`
	Edits        int64     `json:"edits"`
	Deletions    int64     `json:"deletions"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsValidProjectStatus reports whether s is in the closed status set.
func IsValidProjectStatus(s string) bool {
	return s == ProjectStatusOngoing || s == ProjectStatusCompleted
}

// Validate checks the required fields for creating a project.
func (p *Project) Validate() error {
	if err := requireField("title", p.Title); err != nil {
		return err
	}
	if err := requireField("description", p.Description); err != nil {
		return err
	}
	if err := requireField("status", p.Status); err != nil {
		return err
	}
	if !IsValidProjectStatus(p.Status) {
		return NewValidationError("status", "must be 'ongoing' or 'completed'")
	}
	return nil
}
