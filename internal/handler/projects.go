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

// ProjectsHandler handles the project CRUD routes.
type ProjectsHandler struct {
	coord *service.Coordinator
}

// NewProjectsHandler creates a new ProjectsHandler.
func NewProjectsHandler(coord *service.Coordinator) *ProjectsHandler {
	return &ProjectsHandler{coord: coord}
}

// CreateProjectRequest is the request body for creating a project.
type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Status       string   `json:"status"`
	GithubURL    string   `json:"githubUrl"`
	DemoURL      string   `json:"demoUrl"`
}

// UpdateProjectRequest is the request body for a partial project update.
type UpdateProjectRequest struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	Status       *string   `json:"status,omitempty"`
	GithubURL    *string   `json:"githubUrl,omitempty"`
	DemoURL      *string   `json:"demoUrl,omitempty"`
}

// List handles GET /api/projects.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.coord.ListProjects(r.Context())
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, projects)
}

// Create handles POST /api/projects.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.coord.CreateProject(r.Context(), middleware.ActorName(r), store.CreateProjectParams{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		Status:       req.Status,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
	})
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteCreated(w, p)
}

// Get handles GET /api/projects/{id}.
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.coord.ViewProject(r.Context(), middleware.ActorName(r), chi.URLParam(r, "id"))
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, p)
}

// Update handles PUT /api/projects/{id}.
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.coord.UpdateProject(r.Context(), middleware.ActorName(r), chi.URLParam(r, "id"), store.UpdateProjectParams{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		Status:       req.Status,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
	})
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, p)
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, err := h.coord.DeleteProject(r.Context(), middleware.ActorName(r), chi.URLParam(r, "id"))
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, p)
}
