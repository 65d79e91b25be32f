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

const galleryColumns = `id, title, image_urls, caption, tags, uploaded_by,
	views, edits, deletions, uploaded_at, updated_at`

// CreateGalleryImageParams holds the payload for creating a gallery record.
type CreateGalleryImageParams struct {
	Title      string
	ImageURLs  []string
	Caption    string
	Tags       []string
	UploadedBy string
}

// CreateGalleryImage validates the payload (at least one image URL),
// assigns an id and timestamps, and persists the record.
func (q *Queries) CreateGalleryImage(ctx context.Context, arg CreateGalleryImageParams) (model.GalleryImage, error) {
	now := time.Now().UTC()
	g := model.GalleryImage{
		ID:         newID(),
		Title:      arg.Title,
		ImageURLs:  arg.ImageURLs,
		Caption:    arg.Caption,
		Tags:       arg.Tags,
		UploadedBy: arg.UploadedBy,
		UploadedAt: now,
		UpdatedAt:  now,
	}
	if g.Tags == nil {
		g.Tags = []string{}
	}
	if err := g.Validate(); err != nil {
		return model.GalleryImage{}, err
	}

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO gallery_images (id, title, image_urls, caption, tags, uploaded_by,
			uploaded_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Title, marshalList(g.ImageURLs), g.Caption, marshalList(g.Tags),
		g.UploadedBy, g.UploadedAt, g.UpdatedAt)
	if err != nil {
		return model.GalleryImage{}, fmt.Errorf("inserting gallery image: %w", err)
	}

	return g, nil
}

// GetGalleryImage returns a single gallery record by id.
func (q *Queries) GetGalleryImage(ctx context.Context, id string) (model.GalleryImage, error) {
	id, err := parseID(id)
	if err != nil {
		return model.GalleryImage{}, err
	}

	row := q.db.QueryRowContext(ctx, `SELECT `+galleryColumns+` FROM gallery_images WHERE id = ?`, id)
	g, err := scanGalleryImage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.GalleryImage{}, ErrNotFound
		}
		return model.GalleryImage{}, fmt.Errorf("getting gallery image: %w", err)
	}
	return g, nil
}

// ListGalleryImages returns all gallery records, newest upload first.
func (q *Queries) ListGalleryImages(ctx context.Context) ([]model.GalleryImage, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+galleryColumns+` FROM gallery_images ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing gallery images: %w", err)
	}
	defer rows.Close()

	images := []model.GalleryImage{}
	for rows.Next() {
		g, err := scanGalleryImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning gallery image: %w", err)
		}
		images = append(images, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing gallery images: %w", err)
	}
	return images, nil
}

// UpdateGalleryImageParams holds the partial payload for updating a gallery
// record. Nil fields are left unchanged.
type UpdateGalleryImageParams struct {
	Title     *string
	ImageURLs *[]string
	Caption   *string
	Tags      *[]string
}

// UpdateGalleryImage merges the partial payload into the stored record. An
// update may not empty the image list.
func (q *Queries) UpdateGalleryImage(ctx context.Context, id string, arg UpdateGalleryImageParams) (model.GalleryImage, error) {
	g, err := q.GetGalleryImage(ctx, id)
	if err != nil {
		return model.GalleryImage{}, err
	}

	if arg.ImageURLs != nil && len(*arg.ImageURLs) == 0 {
		return model.GalleryImage{}, model.NewValidationError("imageUrls", "at least one image is required")
	}

	if arg.Title != nil {
		g.Title = *arg.Title
	}
	if arg.ImageURLs != nil {
		g.ImageURLs = *arg.ImageURLs
	}
	if arg.Caption != nil {
		g.Caption = *arg.Caption
	}
	if arg.Tags != nil {
		g.Tags = *arg.Tags
	}
	g.UpdatedAt = time.Now().UTC()

	_, err = q.db.ExecContext(ctx, `
		UPDATE gallery_images
		SET title = ?, image_urls = ?, caption = ?, tags = ?, updated_at = ?
		WHERE id = ?`,
		g.Title, marshalList(g.ImageURLs), g.Caption, marshalList(g.Tags),
		g.UpdatedAt, g.ID)
	if err != nil {
		return model.GalleryImage{}, fmt.Errorf("updating gallery image: %w", err)
	}

	return g, nil
}

// DeleteGalleryImage removes the record and returns the removed snapshot.
func (q *Queries) DeleteGalleryImage(ctx context.Context, id string) (model.GalleryImage, error) {
	g, err := q.GetGalleryImage(ctx, id)
	if err != nil {
		return model.GalleryImage{}, err
	}

	if _, err := q.db.ExecContext(ctx, `DELETE FROM gallery_images WHERE id = ?`, g.ID); err != nil {
		return model.GalleryImage{}, fmt.Errorf("deleting gallery image: %w", err)
	}

	g.Deletions++
	return g, nil
}

// BumpGalleryImageViews increments the informational view counter.
func (q *Queries) BumpGalleryImageViews(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := q.db.ExecContext(ctx, `UPDATE gallery_images SET views = views + 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("bumping gallery image views: %w", err)
	}
	return nil
}

func scanGalleryImage(row interface{ Scan(...any) error }) (model.GalleryImage, error) {
	var g model.GalleryImage
	var imageURLs, tags string
	err := row.Scan(&g.ID, &g.Title, &imageURLs, &g.Caption, &tags, &g.UploadedBy,
		&g.Views, &g.Edits, &g.Deletions, &g.UploadedAt, &g.UpdatedAt)
	if err != nil {
		return model.GalleryImage{}, err
	}
	g.ImageURLs = unmarshalList(imageURLs)
	g.Tags = unmarshalList(tags)
	return g, nil
}
