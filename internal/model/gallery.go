// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// GalleryImage represents a media gallery record. A single record can hold
// several hosted image URLs.
type GalleryImage struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	ImageURLs  []string  `json:"imageUrls"`
	Caption    string    `json:"caption,omitempty"`
	Tags       []string  `json:"tags"`
	UploadedBy string    `json:"uploadedBy"`
	Views      int64     `json:"views"`
	Edits      int64     `json:"edits"`
	Deletions  int64     `json:"deletions"`
	UploadedAt time.Time `json:"uploadedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate checks the required fields for creating a gallery record.
func (g *GalleryImage) Validate() error {
	if len(g.ImageURLs) == 0 {
		return NewValidationError("imageUrls", "at least one image is required")
	}
	for _, u := range g.ImageURLs {
		if u == "" {
			return NewValidationError("imageUrls", "image URLs must not be empty")
		}
	}
	return nil
}
