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

// MembersHandler handles the member CRUD routes.
type MembersHandler struct {
	coord *service.Coordinator
}

// NewMembersHandler creates a new MembersHandler.
func NewMembersHandler(coord *service.Coordinator) *MembersHandler {
	return &MembersHandler{coord: coord}
}

// CreateMemberRequest is the request body for creating a member.
type CreateMemberRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Type        string `json:"type"`
	PhotoURL    string `json:"photoUrl"`
	Bio         string `json:"bio"`
	LinkedinURL string `json:"linkedinUrl"`
}

// UpdateMemberRequest is the request body for a partial member update.
type UpdateMemberRequest struct {
	Name        *string `json:"name,omitempty"`
	Role        *string `json:"role,omitempty"`
	Type        *string `json:"type,omitempty"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	LinkedinURL *string `json:"linkedinUrl,omitempty"`
}

// List handles GET /api/members.
func (h *MembersHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.coord.ListMembers(r.Context())
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, members)
}

// Create handles POST /api/members.
func (h *MembersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.coord.CreateMember(r.Context(), middleware.ActorName(r), store.CreateMemberParams{
		Name:        req.Name,
		Role:        req.Role,
		Type:        req.Type,
		PhotoURL:    req.PhotoURL,
		Bio:         req.Bio,
		LinkedinURL: req.LinkedinURL,
	})
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteCreated(w, m)
}

// Get handles GET /api/members/{id}.
func (h *MembersHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.coord.ViewMember(r.Context(), middleware.ActorName(r), chi.URLParam(r, "id"))
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, m)
}

// Update handles PUT /api/members/{id}.
func (h *MembersHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.coord.UpdateMember(r.Context(), middleware.ActorName(r), chi.URLParam(r, "id"), store.UpdateMemberParams{
		Name:        req.Name,
		Role:        req.Role,
		Type:        req.Type,
		PhotoURL:    req.PhotoURL,
		Bio:         req.Bio,
		LinkedinURL: req.LinkedinURL,
	})
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, m)
}

// Delete handles DELETE /api/members/{id}.
func (h *MembersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	m, err := h.coord.DeleteMember(r.Context(), middleware.ActorName(r), chi.URLParam(r, "id"))
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, m)
}
