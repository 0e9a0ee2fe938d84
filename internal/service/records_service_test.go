package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create_DefaultsAndNormalizesCode(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	svc := NewProjectService(s.projects)

	proj := &domain.Project{Name: "North Depot", Code: "bld-042"}
	require.NoError(t, svc.Create(ctx, proj))
	assert.NotEmpty(t, proj.ID, "UUID should be generated")
	assert.Equal(t, "BLD-042", proj.Code)
	assert.Equal(t, domain.ProjectPlanning, proj.Status)

	fetched, err := svc.Resolve(ctx, "bld-042")
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)

	byID, err := svc.Resolve(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "North Depot", byID.Name)
}

func TestProjectService_Create_InvalidCode(t *testing.T) {
	s := setupStore(t)
	svc := NewProjectService(s.projects)

	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"no digits", "DEPOT"},
		{"single letter", "B-01"},
		{"too many letters", "BUILDING-01"},
		{"special chars", "BL!01"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Create(context.Background(), &domain.Project{Name: "X", Code: tc.code})
			assert.Error(t, err, "code %q should be rejected", tc.code)
		})
	}
}

func TestProjectService_Create_DuplicateCode(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	svc := NewProjectService(s.projects)

	require.NoError(t, svc.Create(ctx, &domain.Project{Name: "A", Code: "BLD-001"}))
	err := svc.Create(ctx, &domain.Project{Name: "B", Code: "bld-001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in use")
}

func TestProjectService_Update_RejectsReversedTargets(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	svc := NewProjectService(s.projects)
	proj := s.seedProject(t, "Depot")

	start, finish := testutil.Date(2025, 6, 1), testutil.Date(2025, 5, 1)
	proj.TargetStart, proj.TargetFinish = &start, &finish
	assert.Error(t, svc.Update(ctx, proj))
}

func TestProjectService_Resolve_Unknown(t *testing.T) {
	s := setupStore(t)
	_, err := NewProjectService(s.projects).Resolve(context.Background(), "NOPE-01")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResourceService_CreateAndResolve(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	svc := NewResourceService(s.resources)

	r := &domain.Resource{Name: "  Civil Crew ", Role: "crew"}
	require.NoError(t, svc.Create(ctx, r))
	assert.Equal(t, "Civil Crew", r.Name)

	got, err := svc.Resolve(ctx, "civil crew")
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	got, err = svc.Resolve(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Civil Crew", got.Name)

	assert.Error(t, svc.Create(ctx, &domain.Resource{Name: "CIVIL CREW"}), "names are unique ignoring case")
	assert.Error(t, svc.Create(ctx, &domain.Resource{Name: "   "}))

	_, err = svc.Resolve(ctx, "Electricians")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPhaseService_Create_DerivesDurationAndDefaults(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	proj := s.seedProject(t, "Depot")
	svc := NewPhaseService(s.phases, s.projects)

	start, end := testutil.Date(2025, 3, 1), testutil.Date(2025, 3, 10)
	ph := &domain.Phase{ProjectID: proj.ID, Name: "Excavation", PlannedStart: &start, PlannedEnd: &end}
	require.NoError(t, svc.Create(ctx, ph))

	got := s.phase(t, ph.ID)
	assert.Equal(t, 10, got.DurationDays)
	assert.Equal(t, domain.PhasePlanned, got.Status)
	assert.Equal(t, domain.PriorityMedium, got.Priority)
}

func TestPhaseService_Create_RejectsReversedRange(t *testing.T) {
	s := setupStore(t)
	proj := s.seedProject(t, "Depot")
	svc := NewPhaseService(s.phases, s.projects)

	start, end := testutil.Date(2025, 3, 10), testutil.Date(2025, 3, 1)
	err := svc.Create(context.Background(), &domain.Phase{ProjectID: proj.ID, Name: "Backwards", PlannedStart: &start, PlannedEnd: &end})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before")
}

func TestPhaseService_Create_UnknownProject(t *testing.T) {
	s := setupStore(t)
	svc := NewPhaseService(s.phases, s.projects)
	err := svc.Create(context.Background(), &domain.Phase{ProjectID: "missing", Name: "Orphan"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPhaseService_UpdateAndDelete(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	proj := s.seedProject(t, "Depot")
	ph := s.seedPhase(t, proj.ID, "Framing")
	svc := NewPhaseService(s.phases, s.projects)

	ph.Status = domain.PhaseOnHold
	require.NoError(t, svc.Update(ctx, ph))
	assert.Equal(t, domain.PhaseOnHold, s.phase(t, ph.ID).Status)

	ph.Status = "Paused"
	assert.Error(t, svc.Update(ctx, ph))

	require.NoError(t, svc.Delete(ctx, ph.ID))
	_, err := svc.GetByID(ctx, ph.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMilestoneService_CreateAndComplete(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	proj := s.seedProject(t, "Depot")
	svc := NewMilestoneService(s.milestones, s.projects)

	target := testutil.Date(2025, 4, 1)
	m := &domain.Milestone{ProjectID: proj.ID, Name: "Handover", TargetDate: &target}
	require.NoError(t, svc.Create(ctx, m))
	assert.Equal(t, domain.MilestoneDelivery, m.Type)

	done, err := svc.Complete(ctx, m.ID, testutil.Date(2025, 4, 3))
	require.NoError(t, err)
	assert.True(t, done.IsCompleted())
	assert.Equal(t, 100, done.CompletionPct)

	list, err := svc.ListByProjects(ctx, []string{proj.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].ActualDate)
	assert.Equal(t, testutil.Date(2025, 4, 3), *list[0].ActualDate)
}

func TestMilestoneService_Create_UnknownType(t *testing.T) {
	s := setupStore(t)
	proj := s.seedProject(t, "Depot")
	svc := NewMilestoneService(s.milestones, s.projects)
	err := svc.Create(context.Background(), &domain.Milestone{ProjectID: proj.ID, Name: "X", Type: "party"})
	assert.Error(t, err)
}

func TestSettingsService_DefaultsUntilSaved(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	defaults := domain.DefaultViewSettings().WithZoom(domain.ZoomMonths)
	svc := NewSettingsService(s.settings, defaults)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ZoomMonths, got.Zoom)

	saved := got.WithGroupBy(domain.GroupResource).WithStatusFilter(string(domain.PhaseInProgress))
	require.NoError(t, svc.Save(ctx, saved))

	got, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GroupResource, got.GroupBy)
	assert.Equal(t, []string{"In Progress"}, got.StatusFilter)
}

func TestSettingsService_Save_RejectsInvalid(t *testing.T) {
	s := setupStore(t)
	svc := NewSettingsService(s.settings, domain.DefaultViewSettings())
	bad := domain.DefaultViewSettings().WithZoom("years")
	assert.Error(t, svc.Save(context.Background(), bad))
}
