package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testStore struct {
	db         *sql.DB
	projects   *repository.SQLiteProjectRepo
	resources  *repository.SQLiteResourceRepo
	phases     *repository.SQLitePhaseRepo
	milestones *repository.SQLiteMilestoneRepo
	settings   *repository.SQLiteViewSettingsRepo
	uow        db.UnitOfWork
}

func setupStore(t *testing.T) *testStore {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testStore{
		db:         database,
		projects:   repository.NewSQLiteProjectRepo(database),
		resources:  repository.NewSQLiteResourceRepo(database),
		phases:     repository.NewSQLitePhaseRepo(database),
		milestones: repository.NewSQLiteMilestoneRepo(database),
		settings:   repository.NewSQLiteViewSettingsRepo(database),
		uow:        testutil.NewTestUoW(database),
	}
}

func (s *testStore) seedProject(t *testing.T, name string, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(name, opts...)
	require.NoError(t, s.projects.Create(context.Background(), p))
	return p
}

func (s *testStore) seedPhase(t *testing.T, projectID, name string, opts ...testutil.PhaseOption) *domain.Phase {
	t.Helper()
	p := testutil.NewTestPhase(projectID, name, opts...)
	require.NoError(t, s.phases.Create(context.Background(), p))
	return p
}

func (s *testStore) seedResource(t *testing.T, name string) *domain.Resource {
	t.Helper()
	r := testutil.NewTestResource(name, "crew")
	require.NoError(t, s.resources.Create(context.Background(), r))
	return r
}

func (s *testStore) seedMilestone(t *testing.T, projectID, name string, opts ...testutil.MilestoneOption) *domain.Milestone {
	t.Helper()
	m := testutil.NewTestMilestone(projectID, name, opts...)
	require.NoError(t, s.milestones.Create(context.Background(), m))
	return m
}

func (s *testStore) phase(t *testing.T, id string) *domain.Phase {
	t.Helper()
	p, err := s.phases.GetByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func ptrStr(s string) *string { return &s }
func ptrInt(i int) *int       { return &i }
