// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/profnitt/clubadmin/internal/middleware"
	"github.com/profnitt/clubadmin/internal/service"
	"github.com/profnitt/clubadmin/internal/store"
)

// EventsHandler handles the event CRUD routes.
type EventsHandler struct {
	coord *service.Coordinator
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(coord *service.Coordinator) *EventsHandler {
	return &EventsHandler{coord: coord}
}

// CreateEventRequest is the request body for creating an event.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"imageUrl"`
	EventType   string    `json:"eventType"`
}

// UpdateEventRequest is the request body for a partial event update.
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Venue       *string    `json:"venue,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	EventType   *string    `json:"eventType,omitempty"`
}

// List handles GET /api/events.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.coord.ListEvents(r.Context())
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, events)
}

// Create handles POST /api/events.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ev, err := h.coord.CreateEvent(r.Context(), middleware.ActorName(r), store.CreateEventParams{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Venue:       req.Venue,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
		EventType:   req.EventType,
	})
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteCreated(w, ev)
}

// Get handles GET /api/events/{id}. Fetching a single record counts as
// a view, both on the record and in the action log.
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ev, err := h.coord.ViewEvent(r.Context(), middleware.ActorName(r), chi.URLParam(r, "id"))
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, ev)
}

// Update handles PUT /api/events/{id}.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ev, err := h.coord.UpdateEvent(r.Context(), middleware.ActorName(r), chi.URLParam(r, "id"), store.UpdateEventParams{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Venue:       req.Venue,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
		EventType:   req.EventType,
	})
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, ev)
}

// Delete handles DELETE /api/events/{id} and returns the removed
// record as it stood at deletion.
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ev, err := h.coord.DeleteEvent(r.Context(), middleware.ActorName(r), chi.URLParam(r, "id"))
	if err != nil {
		writeEntityError(w, err)
		return
	}
	WriteSuccess(w, ev)
}
