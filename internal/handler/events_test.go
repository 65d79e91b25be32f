// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/profnitt/clubadmin/internal/model"
	"github.com/profnitt/clubadmin/internal/service"
	"github.com/profnitt/clubadmin/internal/store"
)

func newEventsRouter(t *testing.T) (*chi.Mux, *service.Coordinator, *store.Queries) {
	t.Helper()
	db := setupTestDB(t)
	coord := service.NewCoordinator(db, nil)
	h := NewEventsHandler(coord)

	r := chi.NewRouter()
	r.Get("/api/events", h.List)
	r.Post("/api/events", h.Create)
	r.Get("/api/events/{id}", h.Get)
	r.Put("/api/events/{id}", h.Update)
	r.Delete("/api/events/{id}", h.Delete)

	return r, coord, store.New(db)
}

func decodeData[T any](t *testing.T, body *bytes.Buffer) T {
	t.Helper()
	var resp struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v (%s)", err, body.String())
	}
	return resp.Data
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestEventsCreate(t *testing.T) {
	router, _, _ := newEventsRouter(t)

	rec := postJSON(t, router, "/api/events", CreateEventRequest{
		Title:     "Algo Trading Workshop",
		Date:      time.Date(2026, 9, 12, 17, 0, 0, 0, time.UTC),
		Venue:     "Orion Hall",
		Tags:      []string{"finance"},
		EventType: "workshop",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}
	ev := decodeData[model.Event](t, rec.Body)
	if ev.ID == "" {
		t.Error("created event has no id")
	}
	if ev.Title != "Algo Trading Workshop" {
		t.Errorf("Title = %q", ev.Title)
	}
}

func TestEventsCreate_ValidationError(t *testing.T) {
	router, _, _ := newEventsRouter(t)

	rec := postJSON(t, router, "/api/events", CreateEventRequest{Title: "No venue", Date: time.Now()})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if resp.Error.Code != "bad_request" {
		t.Errorf("error code = %q", resp.Error.Code)
	}
	if _, ok := resp.Error.Details["venue"]; !ok {
		t.Errorf("details = %v, want venue message", resp.Error.Details)
	}
}

func TestEventsGet_LogsView(t *testing.T) {
	router, coord, q := newEventsRouter(t)
	ctx := context.Background()

	ev, err := coord.CreateEvent(ctx, "Asha", store.CreateEventParams{
		Title: "Quiz", Date: time.Now(), Venue: "LH1", EventType: "quiz",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/events/"+ev.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decodeData[model.Event](t, rec.Body)
	if got.Views != 1 {
		t.Errorf("Views = %d, want 1", got.Views)
	}

	entries, err := q.ListActionLog(ctx, 1)
	if err != nil {
		t.Fatalf("ListActionLog: %v", err)
	}
	if len(entries) == 0 || entries[0].Action != model.ActionView {
		t.Errorf("latest entry = %+v, want a view entry", entries)
	}
}

func TestEventsGet_BadID(t *testing.T) {
	router, _, _ := newEventsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestEventsGet_NotFound(t *testing.T) {
	router, _, _ := newEventsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/events/7b7ad120-13e6-4b4e-9f95-0f4f3a2b6b58", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestEventsUpdate_Partial(t *testing.T) {
	router, coord, _ := newEventsRouter(t)

	ev, err := coord.CreateEvent(context.Background(), "Asha", store.CreateEventParams{
		Title: "Quiz", Date: time.Now(), Venue: "LH1", EventType: "quiz",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	venue := "Barn Hall"
	raw, _ := json.Marshal(UpdateEventRequest{Venue: &venue})
	req := httptest.NewRequest(http.MethodPut, "/api/events/"+ev.ID, bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	got := decodeData[model.Event](t, rec.Body)
	if got.Venue != venue {
		t.Errorf("Venue = %q, want %q", got.Venue, venue)
	}
	if got.Title != "Quiz" {
		t.Errorf("Title changed on partial update: %q", got.Title)
	}
	if got.Edits != 0 {
		t.Errorf("Edits = %d, want 0; updates must not bump counters", got.Edits)
	}
}

func TestEventsDelete_ReturnsSnapshot(t *testing.T) {
	router, coord, _ := newEventsRouter(t)

	ev, err := coord.CreateEvent(context.Background(), "Asha", store.CreateEventParams{
		Title: "Quiz", Date: time.Now(), Venue: "LH1", EventType: "quiz",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+ev.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decodeData[model.Event](t, rec.Body)
	if got.ID != ev.ID {
		t.Errorf("snapshot id = %q, want %q", got.ID, ev.ID)
	}
	if got.Deletions != 1 {
		t.Errorf("Deletions = %d, want 1", got.Deletions)
	}

	// Gone afterwards.
	req = httptest.NewRequest(http.MethodDelete, "/api/events/"+ev.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestEventsList_SortedAndSilent(t *testing.T) {
	router, coord, q := newEventsRouter(t)
	ctx := context.Background()

	for i, d := range []time.Time{
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
	} {
		_, err := coord.CreateEvent(ctx, "Asha", store.CreateEventParams{
			Title: fmt.Sprintf("E%d", i), Date: d, Venue: "LH1", EventType: "talk",
		})
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}
	before, _ := q.ListActionLog(ctx, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	events := decodeData[[]model.Event](t, rec.Body)
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].Date.Before(events[1].Date) {
		t.Error("events not sorted newest date first")
	}

	after, _ := q.ListActionLog(ctx, 0)
	if len(after) != len(before) {
		t.Errorf("list read appended log entries: %d -> %d", len(before), len(after))
	}
}
