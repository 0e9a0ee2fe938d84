package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/groundwork/internal/app"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimelineService(s *testStore, defaults domain.ViewSettings, obs ...UseCaseObserver) TimelineService {
	settings := NewSettingsService(s.settings, defaults)
	return NewTimelineService(s.projects, s.phases, s.milestones, s.resources, settings, 0, obs...)
}

func TestTimelineService_Build_LoadsAndResolvesResources(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	crew := s.seedResource(t, "Civil Crew")
	proj := s.seedProject(t, "Depot")
	s.seedPhase(t, proj.ID, "Excavation",
		testutil.WithPlanned(testutil.Date(2025, 3, 1), testutil.Date(2025, 3, 10)),
		testutil.WithResource(crew.ID))
	s.seedPhase(t, proj.ID, "Footings",
		testutil.WithPlanned(testutil.Date(2025, 3, 12), testutil.Date(2025, 3, 20)))
	s.seedMilestone(t, proj.ID, "Handover", testutil.WithTargetDate(testutil.Date(2025, 4, 1)))

	obs := &recordingObserver{}
	svc := newTimelineService(s, domain.DefaultViewSettings().WithGroupBy(domain.GroupResource), obs)
	resp, err := svc.Build(ctx, app.TimelineRequest{Now: testutil.Date(2025, 3, 5)})
	require.NoError(t, err)

	chart := resp.Chart
	require.Len(t, chart.Lanes, 2)
	assert.Equal(t, "Civil Crew", chart.Lanes[0].Label)
	assert.Equal(t, "Unassigned", chart.Lanes[1].Label)
	assert.Len(t, chart.Dependencies, 1)
	assert.Len(t, chart.Milestones, 1)
	require.NotNil(t, chart.Today)
	assert.Equal(t, testutil.Date(2025, 3, 5), resp.GeneratedAt)
	assert.Len(t, resp.Projects, 1)
	assert.Len(t, resp.Resources, 1)

	ev := obs.last()
	assert.Equal(t, "build-timeline", ev.Name)
	assert.Equal(t, 2, ev.Fields["phases"])
	assert.Equal(t, "resource", ev.Fields["group_by"])
}

func TestTimelineService_Build_ScopesToProjects(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	a := s.seedProject(t, "Depot")
	b := s.seedProject(t, "Bridge")
	s.seedPhase(t, a.ID, "A1", testutil.WithPlanned(testutil.Date(2025, 3, 1), testutil.Date(2025, 3, 2)))
	s.seedPhase(t, b.ID, "B1", testutil.WithPlanned(testutil.Date(2025, 3, 1), testutil.Date(2025, 3, 2)))

	resp, err := newTimelineService(s, domain.DefaultViewSettings()).Build(ctx, app.TimelineRequest{
		ProjectIDs: []string{b.ID},
		Now:        testutil.Date(2025, 3, 1),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Chart.RowCount())
	assert.Equal(t, "B1", resp.Chart.Lanes[0].Bars[0].Phase.Name)
	assert.Equal(t, "Bridge", resp.Chart.Lanes[0].Label)
}

func TestTimelineService_Build_SettingsPrecedence(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	svc := newTimelineService(s, domain.DefaultViewSettings())
	now := testutil.Date(2025, 3, 1)

	resp, err := svc.Build(ctx, app.TimelineRequest{Now: now})
	require.NoError(t, err)
	assert.Equal(t, domain.ZoomWeeks, resp.Chart.Settings.Zoom, "defaults before anything is saved")

	require.NoError(t, NewSettingsService(s.settings, domain.DefaultViewSettings()).Save(ctx, domain.DefaultViewSettings().WithZoom(domain.ZoomQuarters)))
	resp, err = svc.Build(ctx, app.TimelineRequest{Now: now})
	require.NoError(t, err)
	assert.Equal(t, domain.ZoomQuarters, resp.Chart.Settings.Zoom, "saved settings")

	override := domain.DefaultViewSettings().WithZoom(domain.ZoomDays)
	resp, err = svc.Build(ctx, app.TimelineRequest{Now: now, Settings: &override})
	require.NoError(t, err)
	assert.Equal(t, domain.ZoomDays, resp.Chart.Settings.Zoom, "request override")

	bad := domain.DefaultViewSettings().WithZoom("fortnights")
	_, err = svc.Build(ctx, app.TimelineRequest{Now: now, Settings: &bad})
	assert.Error(t, err)
}

func TestTimelineService_Build_UnknownProject(t *testing.T) {
	s := setupStore(t)
	_, err := newTimelineService(s, domain.DefaultViewSettings()).Build(context.Background(), app.TimelineRequest{ProjectIDs: []string{"nope"}})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
