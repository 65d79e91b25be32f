// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/profnitt/clubadmin/internal/model"
	"github.com/profnitt/clubadmin/internal/store"
)

// dayFormat matches the day labels the admin frontend renders (en-GB).
const dayFormat = "02/01/2006"

// DayCount is one point of a per-day activity series, split by action.
type DayCount struct {
	Day    string `json:"day"`
	Create int    `json:"create"`
	Update int    `json:"update"`
	Delete int    `json:"delete"`
	View   int    `json:"view"`
}

// GroupCount counts occurrences of each key. Empty keys are skipped, so
// records with an unset categorical field drop out of the distribution
// instead of producing a "" bucket.
func GroupCount(keys []string) map[string]int {
	counts := make(map[string]int)
	for _, k := range keys {
		if k == "" {
			continue
		}
		counts[k]++
	}
	return counts
}

// BucketByDay folds action log entries into a per-day series. The input
// is expected most recent first (the log's list order); buckets appear
// in first-occurrence order and the series is reversed at the end, so
// the result runs from the oldest seen day to the newest. Each entry
// increments only the field matching its action; entries whose action
// is outside the known set are counted nowhere.
func BucketByDay(entries []model.ActionLogEntry) []DayCount {
	var series []DayCount
	index := make(map[string]int)

	for _, e := range entries {
		if !model.IsValidAction(e.Action) {
			continue
		}
		day := e.Timestamp.In(time.UTC).Format(dayFormat)
		i, ok := index[day]
		if !ok {
			index[day] = len(series)
			series = append(series, DayCount{Day: day})
			i = index[day]
		}
		switch e.Action {
		case model.ActionCreate:
			series[i].Create++
		case model.ActionUpdate:
			series[i].Update++
		case model.ActionDelete:
			series[i].Delete++
		case model.ActionView:
			series[i].View++
		}
	}

	for l, r := 0, len(series)-1; l < r; l, r = l+1, r-1 {
		series[l], series[r] = series[r], series[l]
	}
	return series
}

// CountLoginEvents derives a login-activity series from the action log.
// There is no login action in the closed set; a single-member view is
// the closest proxy the log carries, so the series buckets entries with
// action=view and targetType=member per day.
func CountLoginEvents(entries []model.ActionLogEntry) []DayCount {
	filtered := make([]model.ActionLogEntry, 0, len(entries))
	for _, e := range entries {
		if e.Action == model.ActionView && e.TargetType == model.TargetMember {
			filtered = append(filtered, e)
		}
	}
	return BucketByDay(filtered)
}

// Summary is the dashboard's category distribution payload.
type Summary struct {
	EventsByType     map[string]int `json:"eventsByType"`
	ProjectsByStatus map[string]int `json:"projectsByStatus"`
	MembersByType    map[string]int `json:"membersByType"`
	Totals           map[string]int `json:"totals"`
}

// DashboardService assembles the dashboard aggregations from the store.
type DashboardService struct {
	queries *store.Queries
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(db *sql.DB) *DashboardService {
	return &DashboardService{
		queries: store.New(db),
	}
}

// Summary computes the category distributions over the full entity
// lists plus per-kind totals.
func (s *DashboardService) Summary(ctx context.Context) (Summary, error) {
	events, err := s.queries.ListEvents(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("listing events: %w", err)
	}
	projects, err := s.queries.ListProjects(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("listing projects: %w", err)
	}
	members, err := s.queries.ListMembers(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("listing members: %w", err)
	}
	gallery, err := s.queries.ListGalleryImages(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("listing gallery: %w", err)
	}

	eventTypes := make([]string, len(events))
	for i, ev := range events {
		eventTypes[i] = ev.EventType
	}
	projectStatuses := make([]string, len(projects))
	for i, p := range projects {
		projectStatuses[i] = p.Status
	}
	memberTypes := make([]string, len(members))
	for i, m := range members {
		memberTypes[i] = m.Type
	}

	return Summary{
		EventsByType:     GroupCount(eventTypes),
		ProjectsByStatus: GroupCount(projectStatuses),
		MembersByType:    GroupCount(memberTypes),
		Totals: map[string]int{
			"events":   len(events),
			"projects": len(projects),
			"members":  len(members),
			"gallery":  len(gallery),
		},
	}, nil
}

// Activity buckets the whole action log into a per-day series.
func (s *DashboardService) Activity(ctx context.Context) ([]DayCount, error) {
	entries, err := s.queries.ListActionLog(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("listing action log: %w", err)
	}
	return BucketByDay(entries), nil
}

// Logins derives the login-proxy series from the action log.
func (s *DashboardService) Logins(ctx context.Context) ([]DayCount, error) {
	entries, err := s.queries.ListActionLog(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("listing action log: %w", err)
	}
	return CountLoginEvents(entries), nil
}
