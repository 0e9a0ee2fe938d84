package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, repo *SQLiteProjectRepo, name string) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(name)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestPhaseRepo_RoundTripsAllFields(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	resources := NewSQLiteResourceRepo(db)
	repo := NewSQLitePhaseRepo(db)
	ctx := context.Background()

	proj := seedProject(t, projects, "Depot")
	crew := testutil.NewTestResource("Civil Crew", "subcontractor")
	require.NoError(t, resources.Create(ctx, crew))

	actualEnd := testutil.Date(2024, 3, 12)
	ph := testutil.NewTestPhase(proj.ID, "Excavation",
		testutil.WithPlanned(testutil.Date(2024, 3, 1), testutil.Date(2024, 3, 10)),
		testutil.WithActual(testutil.Date(2024, 3, 2), &actualEnd),
		testutil.WithBaseline(testutil.Date(2024, 2, 26), testutil.Date(2024, 3, 6), 10),
		testutil.WithPhaseStatus(domain.PhaseCompleted),
		testutil.WithPriority(domain.PriorityHigh),
		testutil.WithCompletion(100),
		testutil.WithResource(crew.ID),
		testutil.WithCriticalPath(),
		testutil.WithEffort(320.5),
	)
	ph.Color = "#d79921"
	require.NoError(t, repo.Create(ctx, ph))

	fetched, err := repo.GetByID(ctx, ph.ID)
	require.NoError(t, err)
	assert.Equal(t, ph, fetched)
}

func TestPhaseRepo_UnassignedAndUndatedStayNil(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePhaseRepo(db)
	ctx := context.Background()

	proj := seedProject(t, NewSQLiteProjectRepo(db), "Depot")
	ph := testutil.NewTestPhase(proj.ID, "Permits")
	require.NoError(t, repo.Create(ctx, ph))

	fetched, err := repo.GetByID(ctx, ph.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.ResourceID)
	assert.Nil(t, fetched.PlannedStart)
	assert.Nil(t, fetched.BaselineEnd)
}

func TestPhaseRepo_ListKeepsInsertionOrderPerProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLitePhaseRepo(db)
	ctx := context.Background()

	depot := seedProject(t, projects, "Depot")
	bridge := seedProject(t, projects, "Bridge")
	for _, name := range []string{"Survey", "Excavation", "Footings"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestPhase(depot.ID, name)))
	}
	require.NoError(t, repo.Create(ctx, testutil.NewTestPhase(bridge.ID, "Piling")))

	depotPhases, err := repo.ListByProject(ctx, depot.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Survey", "Excavation", "Footings"}, phaseNames(depotPhases))

	scoped, err := repo.ListByProjects(ctx, []string{bridge.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Piling"}, phaseNames(scoped))

	all, err := repo.ListByProjects(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestPhaseRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePhaseRepo(db)
	ctx := context.Background()

	proj := seedProject(t, NewSQLiteProjectRepo(db), "Depot")
	ph := testutil.NewTestPhase(proj.ID, "Framing")
	require.NoError(t, repo.Create(ctx, ph))

	require.NoError(t, ph.SetProgress(55, ph.UpdatedAt))
	ph.Status = domain.PhaseInProgress
	require.NoError(t, repo.Update(ctx, ph))

	fetched, err := repo.GetByID(ctx, ph.ID)
	require.NoError(t, err)
	assert.Equal(t, 55, fetched.CompletionPct)
	assert.Equal(t, domain.PhaseInProgress, fetched.Status)

	require.NoError(t, repo.Delete(ctx, ph.ID))
	assert.ErrorIs(t, repo.Delete(ctx, ph.ID), ErrNotFound)
}

func TestPhaseRepo_UnknownProjectRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePhaseRepo(db)

	err := repo.Create(context.Background(), testutil.NewTestPhase("missing-project", "Orphan"))
	assert.Error(t, err)
}

func phaseNames(phases []*domain.Phase) []string {
	names := make([]string, len(phases))
	for i, p := range phases {
		names[i] = p.Name
	}
	return names
}
