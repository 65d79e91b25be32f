// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/profnitt/clubadmin/internal/model"
	"github.com/profnitt/clubadmin/internal/store"
)

// Coordinator wraps entity mutations with audit logging. The entity
// write runs first; on success the matching log entry is appended. A
// failed append is logged and swallowed so the mutation still stands,
// which means the log can under-report but a logged entry always refers
// to a mutation that happened.
type Coordinator struct {
	queries  *store.Queries
	audit    *AuditService
	sanitize *bluemonday.Policy
	log      *slog.Logger
}

// NewCoordinator creates a new Coordinator.
func NewCoordinator(db *sql.DB, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		queries:  store.New(db),
		audit:    NewAuditService(db),
		sanitize: bluemonday.StrictPolicy(),
		log:      logger,
	}
}

// Audit exposes the coordinator's audit service for raw log access.
func (c *Coordinator) Audit() *AuditService {
	return c.audit
}

// record appends an audit entry after a successful mutation. Failures
// are logged and dropped.
func (c *Coordinator) record(ctx context.Context, action, targetType, targetID, actor string) {
	if _, err := c.audit.Record(ctx, action, targetType, targetID, actor); err != nil {
		c.log.Error("audit append failed",
			"action", action,
			"target_type", targetType,
			"target_id", targetID,
			"error", err)
	}
}

func (c *Coordinator) clean(s string) string {
	return c.sanitize.Sanitize(s)
}

func (c *Coordinator) cleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := c.sanitize.Sanitize(*s)
	return &v
}

// --- Events ---

func (c *Coordinator) CreateEvent(ctx context.Context, actor string, arg store.CreateEventParams) (model.Event, error) {
	arg.Description = c.clean(arg.Description)
	arg.CreatedBy = actor
	ev, err := c.queries.CreateEvent(ctx, arg)
	if err != nil {
		return model.Event{}, err
	}
	c.record(ctx, model.ActionCreate, model.TargetEvent, ev.ID, actor)
	return ev, nil
}

func (c *Coordinator) UpdateEvent(ctx context.Context, actor, id string, arg store.UpdateEventParams) (model.Event, error) {
	arg.Description = c.cleanPtr(arg.Description)
	ev, err := c.queries.UpdateEvent(ctx, id, arg)
	if err != nil {
		return model.Event{}, err
	}
	c.record(ctx, model.ActionUpdate, model.TargetEvent, ev.ID, actor)
	return ev, nil
}

func (c *Coordinator) DeleteEvent(ctx context.Context, actor, id string) (model.Event, error) {
	ev, err := c.queries.DeleteEvent(ctx, id)
	if err != nil {
		return model.Event{}, err
	}
	c.record(ctx, model.ActionDelete, model.TargetEvent, ev.ID, actor)
	return ev, nil
}

// ViewEvent fetches a single event, bumps its view counter, and logs a
// view entry. List reads never log.
func (c *Coordinator) ViewEvent(ctx context.Context, actor, id string) (model.Event, error) {
	ev, err := c.queries.GetEvent(ctx, id)
	if err != nil {
		return model.Event{}, err
	}
	if err := c.queries.BumpEventViews(ctx, ev.ID); err != nil {
		c.log.Error("bumping event views", "id", ev.ID, "error", err)
	} else {
		ev.Views++
	}
	c.record(ctx, model.ActionView, model.TargetEvent, ev.ID, actor)
	return ev, nil
}

func (c *Coordinator) ListEvents(ctx context.Context) ([]model.Event, error) {
	return c.queries.ListEvents(ctx)
}

// --- Projects ---

func (c *Coordinator) CreateProject(ctx context.Context, actor string, arg store.CreateProjectParams) (model.Project, error) {
	arg.Description = c.clean(arg.Description)
	arg.CreatedBy = actor
	p, err := c.queries.CreateProject(ctx, arg)
	if err != nil {
		return model.Project{}, err
	}
	c.record(ctx, model.ActionCreate, model.TargetProject, p.ID, actor)
	return p, nil
}

func (c *Coordinator) UpdateProject(ctx context.Context, actor, id string, arg store.UpdateProjectParams) (model.Project, error) {
	arg.Description = c.cleanPtr(arg.Description)
	p, err := c.queries.UpdateProject(ctx, id, arg)
	if err != nil {
		return model.Project{}, err
	}
	c.record(ctx, model.ActionUpdate, model.TargetProject, p.ID, actor)
	return p, nil
}

func (c *Coordinator) DeleteProject(ctx context.Context, actor, id string) (model.Project, error) {
	p, err := c.queries.DeleteProject(ctx, id)
	if err != nil {
		return model.Project{}, err
	}
	c.record(ctx, model.ActionDelete, model.TargetProject, p.ID, actor)
	return p, nil
}

func (c *Coordinator) ViewProject(ctx context.Context, actor, id string) (model.Project, error) {
	p, err := c.queries.GetProject(ctx, id)
	if err != nil {
		return model.Project{}, err
	}
	if err := c.queries.BumpProjectViews(ctx, p.ID); err != nil {
		c.log.Error("bumping project views", "id", p.ID, "error", err)
	} else {
		p.Views++
	}
	c.record(ctx, model.ActionView, model.TargetProject, p.ID, actor)
	return p, nil
}

func (c *Coordinator) ListProjects(ctx context.Context) ([]model.Project, error) {
	return c.queries.ListProjects(ctx)
}

// --- Members ---

func (c *Coordinator) CreateMember(ctx context.Context, actor string, arg store.CreateMemberParams) (model.Member, error) {
	arg.Bio = c.clean(arg.Bio)
	arg.AddedBy = actor
	m, err := c.queries.CreateMember(ctx, arg)
	if err != nil {
		return model.Member{}, err
	}
	c.record(ctx, model.ActionCreate, model.TargetMember, m.ID, actor)
	return m, nil
}

func (c *Coordinator) UpdateMember(ctx context.Context, actor, id string, arg store.UpdateMemberParams) (model.Member, error) {
	arg.Bio = c.cleanPtr(arg.Bio)
	m, err := c.queries.UpdateMember(ctx, id, arg)
	if err != nil {
		return model.Member{}, err
	}
	c.record(ctx, model.ActionUpdate, model.TargetMember, m.ID, actor)
	return m, nil
}

func (c *Coordinator) DeleteMember(ctx context.Context, actor, id string) (model.Member, error) {
	m, err := c.queries.DeleteMember(ctx, id)
	if err != nil {
		return model.Member{}, err
	}
	c.record(ctx, model.ActionDelete, model.TargetMember, m.ID, actor)
	return m, nil
}

func (c *Coordinator) ViewMember(ctx context.Context, actor, id string) (model.Member, error) {
	m, err := c.queries.GetMember(ctx, id)
	if err != nil {
		return model.Member{}, err
	}
	if err := c.queries.BumpMemberViews(ctx, m.ID); err != nil {
		c.log.Error("bumping member views", "id", m.ID, "error", err)
	} else {
		m.Views++
	}
	c.record(ctx, model.ActionView, model.TargetMember, m.ID, actor)
	return m, nil
}

func (c *Coordinator) ListMembers(ctx context.Context) ([]model.Member, error) {
	return c.queries.ListMembers(ctx)
}

// --- Gallery ---

func (c *Coordinator) CreateGalleryImage(ctx context.Context, actor string, arg store.CreateGalleryImageParams) (model.GalleryImage, error) {
	arg.Caption = c.clean(arg.Caption)
	arg.UploadedBy = actor
	g, err := c.queries.CreateGalleryImage(ctx, arg)
	if err != nil {
		return model.GalleryImage{}, err
	}
	c.record(ctx, model.ActionCreate, model.TargetGallery, g.ID, actor)
	return g, nil
}

func (c *Coordinator) UpdateGalleryImage(ctx context.Context, actor, id string, arg store.UpdateGalleryImageParams) (model.GalleryImage, error) {
	arg.Caption = c.cleanPtr(arg.Caption)
	g, err := c.queries.UpdateGalleryImage(ctx, id, arg)
	if err != nil {
		return model.GalleryImage{}, err
	}
	c.record(ctx, model.ActionUpdate, model.TargetGallery, g.ID, actor)
	return g, nil
}

func (c *Coordinator) DeleteGalleryImage(ctx context.Context, actor, id string) (model.GalleryImage, error) {
	g, err := c.queries.DeleteGalleryImage(ctx, id)
	if err != nil {
		return model.GalleryImage{}, err
	}
	c.record(ctx, model.ActionDelete, model.TargetGallery, g.ID, actor)
	return g, nil
}

func (c *Coordinator) ViewGalleryImage(ctx context.Context, actor, id string) (model.GalleryImage, error) {
	g, err := c.queries.GetGalleryImage(ctx, id)
	if err != nil {
		return model.GalleryImage{}, err
	}
	if err := c.queries.BumpGalleryImageViews(ctx, g.ID); err != nil {
		c.log.Error("bumping gallery views", "id", g.ID, "error", err)
	} else {
		g.Views++
	}
	c.record(ctx, model.ActionView, model.TargetGallery, g.ID, actor)
	return g, nil
}

func (c *Coordinator) ListGalleryImages(ctx context.Context) ([]model.GalleryImage, error) {
	return c.queries.ListGalleryImages(ctx)
}
