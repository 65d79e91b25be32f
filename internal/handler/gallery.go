// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/profnitt/clubadmin/internal/middleware"
	"github.com/profnitt/clubadmin/internal/service"
	"github.com/profnitt/clubadmin/internal/store"
)

// GalleryHandler handles the gallery CRUD routes.
type GalleryHandler struct {
	coord *service.Coordinator
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(coord *service.Coordinator) *GalleryHandler {
	return &GalleryHandler{coord: coord}
}

// CreateGalleryRequest is the request body for creating a gallery record.
type CreateGalleryRequest struct {
	Title     string   `json:"title"`
	ImageURLs []string `json:"imageUrls"`
	Caption   string   `json:"caption"`
	Tags      []string `json:"tags"`
}

// UpdateGalleryRequest is the request body for a partial gallery update.
type UpdateGalleryRequest struct {
	Title     *string   `json:"title,omitempty"`
	ImageURLs *[]string `json:"imageUrls,omitempty"`
	Caption   *string   `json:"caption,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
}

// List handles GET /api/gallery.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.coord.ListGalleryImages(r.Context())
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, images)
}

// Create handles POST /api/gallery.
func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGalleryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	g, err := h.coord.CreateGalleryImage(r.Context(), middleware.ActorName(r), store.CreateGalleryImageParams{
		Title:     req.Title,
		ImageURLs: req.ImageURLs,
		Caption:   req.Caption,
		Tags:      req.Tags,
	})
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteCreated(w, g)
}

// Get handles GET /api/gallery/{id}.
func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.coord.ViewGalleryImage(r.Context(), middleware.ActorName(r), chi.URLParam(r, "id"))
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, g)
}

// Update handles PUT /api/gallery/{id}.
func (h *GalleryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateGalleryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	g, err := h.coord.UpdateGalleryImage(r.Context(), middleware.ActorName(r), chi.URLParam(r, "id"), store.UpdateGalleryImageParams{
		Title:     req.Title,
		ImageURLs: req.ImageURLs,
		Caption:   req.Caption,
		Tags:      req.Tags,
	})
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, g)
}

// Delete handles DELETE /api/gallery/{id}.
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	g, err := h.coord.DeleteGalleryImage(r.Context(), middleware.ActorName(r), chi.URLParam(r, "id"))
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, g)
}
