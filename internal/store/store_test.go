// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/profnitt/clubadmin/internal/model"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "clubadmin-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}

func createTestEvent(t *testing.T, q *Queries) model.Event {
	t.Helper()
	ev, err := q.CreateEvent(context.Background(), CreateEventParams{
		Title:     "Stock Pitch Night",
		Date:      time.Date(2026, 2, 20, 18, 30, 0, 0, time.UTC),
		Venue:     "Orion Hall",
		Tags:      []string{"finance", "competition"},
		EventType: "competition",
		CreatedBy: "Asha",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	return ev
}

func TestCreateEvent_ThenGet(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	ev := createTestEvent(t, q)
	if ev.ID == "" {
		t.Fatal("event ID should be assigned")
	}
	if ev.CreatedAt.IsZero() || ev.UpdatedAt.IsZero() {
		t.Error("timestamps should be assigned")
	}

	got, err := q.GetEvent(ctx, ev.ID)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if got.Title != ev.Title {
		t.Errorf("Title = %q, want %q", got.Title, ev.Title)
	}
	if got.Venue != ev.Venue {
		t.Errorf("Venue = %q, want %q", got.Venue, ev.Venue)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "finance" {
		t.Errorf("Tags = %v, want [finance competition]", got.Tags)
	}
	if !got.Date.Equal(ev.Date) {
		t.Errorf("Date = %v, want %v", got.Date, ev.Date)
	}
	if got.Views != 0 || got.Edits != 0 || got.Deletions != 0 {
		t.Errorf("fresh counters should be zero, got %d/%d/%d", got.Views, got.Edits, got.Deletions)
	}
}

func TestCreateEvent_MissingRequiredField(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	_, err := New(db).CreateEvent(context.Background(), CreateEventParams{
		Title: "No venue",
		Date:  time.Now(),
	})
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestGetEvent_InvalidID(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	_, err := New(db).GetEvent(context.Background(), "not-a-uuid")
	if !errors.Is(err, ErrInvalidID) {
		t.Errorf("want ErrInvalidID, got %v", err)
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	_, err := New(db).GetEvent(context.Background(), "7b7ad120-13e6-4b4e-9f95-0f4f3a2b6b58")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestListEvents_SortedByDateDesc(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	dates := []time.Time{
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		_, err := q.CreateEvent(ctx, CreateEventParams{
			Title: "Event", Date: d, Venue: "LH1", EventType: "talk",
		})
		if err != nil {
			t.Fatalf("CreateEvent %d: %v", i, err)
		}
	}

	events, err := q.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Date.After(events[i-1].Date) {
			t.Errorf("events not sorted by date desc at index %d", i)
		}
	}
}

func TestUpdateEvent_PartialMerge(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	ev := createTestEvent(t, q)

	newTitle := "Stock Pitch Night 2.0"
	updated, err := q.UpdateEvent(ctx, ev.ID, UpdateEventParams{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}

	if updated.Title != newTitle {
		t.Errorf("Title = %q, want %q", updated.Title, newTitle)
	}
	if updated.Venue != ev.Venue {
		t.Errorf("Venue changed on partial update: %q", updated.Venue)
	}
	if updated.Edits != 0 {
		t.Errorf("Edits = %d, want 0; updates must not bump counters", updated.Edits)
	}
	if !updated.UpdatedAt.After(ev.UpdatedAt) && !updated.UpdatedAt.Equal(ev.UpdatedAt) {
		t.Error("UpdatedAt should be refreshed")
	}
}

func TestUpdateEvent_Idempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	ev := createTestEvent(t, q)

	venue := "Barn Hall"
	first, err := q.UpdateEvent(ctx, ev.ID, UpdateEventParams{Venue: &venue})
	if err != nil {
		t.Fatalf("first UpdateEvent: %v", err)
	}
	second, err := q.UpdateEvent(ctx, ev.ID, UpdateEventParams{Venue: &venue})
	if err != nil {
		t.Fatalf("second UpdateEvent: %v", err)
	}

	// Second identical update drifts nothing but updatedAt.
	second.UpdatedAt = first.UpdatedAt
	if !reflect.DeepEqual(second, first) {
		t.Errorf("repeated update drifted attributes:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestUpdateEvent_NotFound(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	title := "x"
	_, err := New(db).UpdateEvent(context.Background(),
		"7b7ad120-13e6-4b4e-9f95-0f4f3a2b6b58", UpdateEventParams{Title: &title})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	ev := createTestEvent(t, q)

	removed, err := q.DeleteEvent(ctx, ev.ID)
	if err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if removed.ID != ev.ID {
		t.Errorf("removed snapshot ID = %q, want %q", removed.ID, ev.ID)
	}

	if _, err := q.GetEvent(ctx, ev.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: want ErrNotFound, got %v", err)
	}

	// Second delete is NotFound, not a silent no-op.
	if _, err := q.DeleteEvent(ctx, ev.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: want ErrNotFound, got %v", err)
	}
}

func TestBumpEventViews(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	ev := createTestEvent(t, q)

	if err := q.BumpEventViews(ctx, ev.ID); err != nil {
		t.Fatalf("BumpEventViews: %v", err)
	}
	got, err := q.GetEvent(ctx, ev.ID)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if got.Views != 1 {
		t.Errorf("Views = %d, want 1", got.Views)
	}
}

func TestConcurrentUpdates_LastWriteWins(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	ev := createTestEvent(t, q)

	var wg sync.WaitGroup
	titles := []string{"A", "B"}
	for _, title := range titles {
		wg.Add(1)
		go func(tt string) {
			defer wg.Done()
			if _, err := q.UpdateEvent(ctx, ev.ID, UpdateEventParams{Title: &tt}); err != nil {
				t.Errorf("concurrent UpdateEvent(%q): %v", tt, err)
			}
		}(title)
	}
	wg.Wait()

	got, err := q.GetEvent(ctx, ev.ID)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if got.Title != "A" && got.Title != "B" {
		t.Errorf("Title = %q, want A or B (no merged/corrupt value)", got.Title)
	}
}

func TestCreateProject_EnumValidation(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	_, err := q.CreateProject(ctx, CreateProjectParams{
		Title: "Portfolio Tracker", Description: "desc", Status: "paused",
	})
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("out-of-set status: want ValidationError, got %v", err)
	}

	p, err := q.CreateProject(ctx, CreateProjectParams{
		Title: "Portfolio Tracker", Description: "desc", Status: model.ProjectStatusCompleted,
		Technologies: []string{"go", "sqlite"},
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if p.Status != model.ProjectStatusCompleted {
		t.Errorf("Status = %q, want %q", p.Status, model.ProjectStatusCompleted)
	}
}

func TestUpdateProject_RejectsBadStatus(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	p, err := q.CreateProject(ctx, CreateProjectParams{
		Title: "Tracker", Description: "d", Status: model.ProjectStatusOngoing,
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	bad := "cancelled"
	if _, err := q.UpdateProject(ctx, p.ID, UpdateProjectParams{Status: &bad}); err == nil {
		t.Error("update with out-of-set status should fail")
	}
}

func TestCreateMember_OptionalType(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	m, err := q.CreateMember(ctx, CreateMemberParams{
		Name: "Ravi", Role: "Quant Lead", Bio: "bio",
	})
	if err != nil {
		t.Fatalf("CreateMember without type: %v", err)
	}
	if m.Type != "" {
		t.Errorf("Type = %q, want empty", m.Type)
	}

	if _, err := q.CreateMember(ctx, CreateMemberParams{
		Name: "Ravi", Role: "Quant Lead", Bio: "bio", Type: "Alumnus",
	}); err == nil {
		t.Error("out-of-set member type should be rejected")
	}
}

func TestCreateGalleryImage_RequiresImage(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if _, err := q.CreateGalleryImage(ctx, CreateGalleryImageParams{Title: "Empty"}); err == nil {
		t.Error("gallery record without images should be rejected")
	}

	g, err := q.CreateGalleryImage(ctx, CreateGalleryImageParams{
		Title:     "Induction 2026",
		ImageURLs: []string{"https://res.cloudinary.com/club/a.jpg", "https://res.cloudinary.com/club/b.jpg"},
		Tags:      []string{"induction"},
	})
	if err != nil {
		t.Fatalf("CreateGalleryImage: %v", err)
	}
	got, err := q.GetGalleryImage(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetGalleryImage: %v", err)
	}
	if len(got.ImageURLs) != 2 {
		t.Errorf("len(ImageURLs) = %d, want 2", len(got.ImageURLs))
	}
}

func TestAppendActionLog(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	entry, err := q.AppendActionLog(ctx, AppendActionLogParams{
		Action:      model.ActionCreate,
		TargetType:  model.TargetEvent,
		TargetID:    "7b7ad120-13e6-4b4e-9f95-0f4f3a2b6b58",
		PerformedBy: "Asha",
	})
	if err != nil {
		t.Fatalf("AppendActionLog: %v", err)
	}
	if entry.ID == 0 {
		t.Error("entry ID should be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("timestamp should be server-assigned when absent")
	}
}

func TestAppendActionLog_EmptyActorBecomesUnknown(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	entry, err := New(db).AppendActionLog(context.Background(), AppendActionLogParams{
		Action:     model.ActionView,
		TargetType: model.TargetMember,
		TargetID:   "7b7ad120-13e6-4b4e-9f95-0f4f3a2b6b58",
	})
	if err != nil {
		t.Fatalf("AppendActionLog: %v", err)
	}
	if entry.PerformedBy != model.ActorUnknown {
		t.Errorf("PerformedBy = %q, want %q", entry.PerformedBy, model.ActorUnknown)
	}
}

func TestListActionLog_MostRecentFirst(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := q.AppendActionLog(ctx, AppendActionLogParams{
			Action:     model.ActionUpdate,
			TargetType: model.TargetProject,
			TargetID:   "7b7ad120-13e6-4b4e-9f95-0f4f3a2b6b58",
			Timestamp:  base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("AppendActionLog %d: %v", i, err)
		}
	}

	entries, err := q.ListActionLog(ctx, 0)
	if err != nil {
		t.Fatalf("ListActionLog: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Errorf("entries not sorted most recent first at index %d", i)
		}
	}

	limited, err := q.ListActionLog(ctx, 2)
	if err != nil {
		t.Fatalf("ListActionLog limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(limited) = %d, want 2", len(limited))
	}
}

func TestActionLog_DanglingReferenceSurvivesDelete(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	ev := createTestEvent(t, q)

	_, err := q.AppendActionLog(ctx, AppendActionLogParams{
		Action: model.ActionCreate, TargetType: model.TargetEvent, TargetID: ev.ID, PerformedBy: "Asha",
	})
	if err != nil {
		t.Fatalf("AppendActionLog: %v", err)
	}

	if _, err := q.DeleteEvent(ctx, ev.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}

	count, err := q.CountActionLogForTarget(ctx, model.TargetEvent, ev.ID)
	if err != nil {
		t.Fatalf("CountActionLogForTarget: %v", err)
	}
	if count != 1 {
		t.Errorf("dangling entries = %d, want 1", count)
	}
}

func TestCreateAdmin(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	admin, err := q.CreateAdmin(ctx, CreateAdminParams{
		Name: "Asha", Email: "Asha@ProfNITT.example", PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if admin.ID == 0 {
		t.Error("admin ID should be assigned")
	}
	if admin.Email != "asha@profnitt.example" {
		t.Errorf("Email = %q, want lowercased", admin.Email)
	}
	if admin.Role != model.RoleAdmin {
		t.Errorf("Role = %q, want %q", admin.Role, model.RoleAdmin)
	}

	// Duplicate email is a distinct error.
	if _, err := q.CreateAdmin(ctx, CreateAdminParams{
		Name: "Other", Email: "asha@profnitt.example", PasswordHash: "hash2",
	}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("want ErrEmailTaken, got %v", err)
	}

	found, err := q.GetAdminByEmail(ctx, " ASHA@profnitt.example ")
	if err != nil {
		t.Fatalf("GetAdminByEmail: %v", err)
	}
	if found.ID != admin.ID {
		t.Errorf("ID = %d, want %d", found.ID, admin.ID)
	}
}
