// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profnitt/clubadmin/internal/model"
	"github.com/profnitt/clubadmin/internal/store"
)

func logEntry(action, targetType string, ts time.Time) model.ActionLogEntry {
	return model.ActionLogEntry{
		Action:      action,
		TargetType:  targetType,
		TargetID:    "7b7ad120-13e6-4b4e-9f95-0f4f3a2b6b58",
		PerformedBy: "Asha",
		Timestamp:   ts,
	}
}

func TestGroupCount(t *testing.T) {
	got := GroupCount([]string{"Core", "Manager", "Core", "", "Coordinator", "Core", ""})

	assert.Equal(t, map[string]int{
		"Core":        3,
		"Manager":     1,
		"Coordinator": 1,
	}, got)
	assert.NotContains(t, got, "", "empty keys must be skipped, not bucketed")
}

func TestGroupCount_Empty(t *testing.T) {
	assert.Empty(t, GroupCount(nil))
	assert.Empty(t, GroupCount([]string{"", ""}))
}

func TestBucketByDay_ReversesToOldestSeenFirst(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 10, 0, 0, 0, time.UTC)
	}

	// Most recent first, as the log lists them.
	entries := []model.ActionLogEntry{
		logEntry(model.ActionUpdate, model.TargetEvent, day(12)),
		logEntry(model.ActionCreate, model.TargetEvent, day(12)),
		logEntry(model.ActionDelete, model.TargetProject, day(10)),
		logEntry(model.ActionView, model.TargetMember, day(10)),
		logEntry(model.ActionCreate, model.TargetMember, day(3)),
	}

	got := BucketByDay(entries)

	require.Len(t, got, 3)
	assert.Equal(t, []DayCount{
		{Day: "03/03/2026", Create: 1},
		{Day: "10/03/2026", Delete: 1, View: 1},
		{Day: "12/03/2026", Create: 1, Update: 1},
	}, got)
}

func TestBucketByDay_SkipsUnknownActions(t *testing.T) {
	ts := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	entries := []model.ActionLogEntry{
		logEntry(model.ActionCreate, model.TargetEvent, ts),
		logEntry("purge", model.TargetEvent, ts),
		logEntry("", model.TargetEvent, ts),
	}

	got := BucketByDay(entries)

	require.Len(t, got, 1)
	assert.Equal(t, DayCount{Day: "12/03/2026", Create: 1}, got[0],
		"unrecognized actions are counted nowhere")
}

func TestBucketByDay_Empty(t *testing.T) {
	assert.Empty(t, BucketByDay(nil))
}

func TestCountLoginEvents(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 9, 0, 0, 0, time.UTC)
	}
	entries := []model.ActionLogEntry{
		logEntry(model.ActionView, model.TargetMember, day(14)),
		logEntry(model.ActionView, model.TargetEvent, day(14)),  // wrong target
		logEntry(model.ActionCreate, model.TargetMember, day(14)), // wrong action
		logEntry(model.ActionView, model.TargetMember, day(14)),
		logEntry(model.ActionView, model.TargetMember, day(11)),
	}

	got := CountLoginEvents(entries)

	assert.Equal(t, []DayCount{
		{Day: "11/03/2026", View: 1},
		{Day: "14/03/2026", View: 2},
	}, got)
}

func TestDashboardSummary(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	q := store.New(db)

	for _, et := range []string{"workshop", "workshop", "talk"} {
		_, err := q.CreateEvent(ctx, store.CreateEventParams{
			Title: "E", Date: time.Now(), Venue: "LH1", EventType: et,
		})
		require.NoError(t, err)
	}
	for _, st := range []string{model.ProjectStatusOngoing, model.ProjectStatusCompleted, model.ProjectStatusOngoing} {
		_, err := q.CreateProject(ctx, store.CreateProjectParams{
			Title: "P", Description: "d", Status: st,
		})
		require.NoError(t, err)
	}
	// One member with no type: counted in the total, absent from the
	// distribution.
	for _, mt := range []string{model.MemberTypeCore, ""} {
		_, err := q.CreateMember(ctx, store.CreateMemberParams{
			Name: "M", Role: "r", Bio: "b", Type: mt,
		})
		require.NoError(t, err)
	}

	got, err := NewDashboardService(db).Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"workshop": 2, "talk": 1}, got.EventsByType)
	assert.Equal(t, map[string]int{"ongoing": 2, "completed": 1}, got.ProjectsByStatus)
	assert.Equal(t, map[string]int{"Core": 1}, got.MembersByType)
	assert.Equal(t, map[string]int{"events": 3, "projects": 3, "members": 2, "gallery": 0}, got.Totals)
}

func TestDashboardActivityAndLogins(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	q := store.New(db)

	base := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	appends := []struct {
		action, target string
		at             time.Time
	}{
		{model.ActionCreate, model.TargetEvent, base},
		{model.ActionView, model.TargetMember, base},
		{model.ActionView, model.TargetMember, base.Add(48 * time.Hour)},
		{model.ActionUpdate, model.TargetProject, base.Add(48 * time.Hour)},
	}
	for _, a := range appends {
		_, err := q.AppendActionLog(ctx, store.AppendActionLogParams{
			Action: a.action, TargetType: a.target,
			TargetID: "7b7ad120-13e6-4b4e-9f95-0f4f3a2b6b58", PerformedBy: "Asha",
			Timestamp: a.at,
		})
		require.NoError(t, err)
	}

	svc := NewDashboardService(db)

	activity, err := svc.Activity(ctx)
	require.NoError(t, err)
	assert.Equal(t, []DayCount{
		{Day: "02/05/2026", Create: 1, View: 1},
		{Day: "04/05/2026", Update: 1, View: 1},
	}, activity)

	logins, err := svc.Logins(ctx)
	require.NoError(t, err)
	assert.Equal(t, []DayCount{
		{Day: "02/05/2026", View: 1},
		{Day: "04/05/2026", View: 1},
	}, logins)
}
