package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/groundwork/internal/app"
	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
)

// scheduleService applies the mutation requests the timeline emits. Each
// request is one transaction; failures come back as *app.RequestError.
type scheduleService struct {
	uow      db.UnitOfWork
	provider app.CriticalPathProvider
	observer UseCaseObserver
}

func NewScheduleService(uow db.UnitOfWork, provider app.CriticalPathProvider, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		uow:      uow,
		provider: provider,
		observer: useCaseObserverOrNoop(observers),
	}
}

// UpdateProgress sets a phase's completion and refreshes its project's
// rolled-up completion.
func (s *scheduleService) UpdateProgress(ctx context.Context, phaseID string, pct int) (phase *domain.Phase, err error) {
	fields := map[string]any{"phase_id": phaseID, "completion_pct": pct}
	defer observe(ctx, s.observer, "update-progress", time.Now().UTC(), fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		phases := repository.NewSQLitePhaseRepo(tx)
		projects := repository.NewSQLiteProjectRepo(tx)
		now := time.Now().UTC()

		p, err := phases.GetByID(ctx, phaseID)
		if err != nil {
			return err
		}
		if err := p.SetProgress(pct, now); err != nil {
			return err
		}
		if err := phases.Update(ctx, p); err != nil {
			return err
		}
		if err := refreshProjectCompletion(ctx, projects, phases, p.ProjectID, now); err != nil {
			return err
		}
		phase = p
		return nil
	})
	if err != nil {
		return nil, &app.RequestError{Kind: app.RequestProgress, TargetID: phaseID, Err: err}
	}
	return phase, nil
}

// RecomputeCriticalPath asks the provider for the project's critical phases
// and rewrites every phase's flag to match.
func (s *scheduleService) RecomputeCriticalPath(ctx context.Context, projectID string) (ids []string, err error) {
	fields := map[string]any{"project_id": projectID}
	defer observe(ctx, s.observer, "recompute-critical-path", time.Now().UTC(), fields, &err)

	wrap := func(err error) error {
		return &app.RequestError{Kind: app.RequestCriticalPath, TargetID: projectID, Err: err}
	}
	if s.provider == nil {
		return nil, wrap(fmt.Errorf("no critical path provider configured"))
	}
	ids, err = s.provider.ComputeCriticalPath(ctx, projectID)
	if err != nil {
		return nil, wrap(err)
	}

	changed := 0
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		phases := repository.NewSQLitePhaseRepo(tx)
		list, err := phases.ListByProject(ctx, projectID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		for _, p := range list {
			flag := slices.Contains(ids, p.ID)
			if p.IsCriticalPath == flag {
				continue
			}
			p.IsCriticalPath = flag
			p.UpdatedAt = now
			if err := phases.Update(ctx, p); err != nil {
				return err
			}
			changed++
		}
		return nil
	})
	if err != nil {
		return nil, wrap(err)
	}
	fields["critical"] = len(ids)
	fields["changed"] = changed
	return ids, nil
}

// CreateBaseline snapshots the planned range of every phase that has one.
// Phases without planned dates keep whatever baseline they had.
func (s *scheduleService) CreateBaseline(ctx context.Context, projectID string) (count int, err error) {
	fields := map[string]any{"project_id": projectID}
	defer observe(ctx, s.observer, "create-baseline", time.Now().UTC(), fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		projects := repository.NewSQLiteProjectRepo(tx)
		phases := repository.NewSQLitePhaseRepo(tx)
		if _, err := projects.GetByID(ctx, projectID); err != nil {
			return err
		}
		list, err := phases.ListByProject(ctx, projectID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		for _, p := range list {
			if !p.CaptureBaseline(now) {
				continue
			}
			if err := phases.Update(ctx, p); err != nil {
				return fmt.Errorf("baselining phase %q: %w", p.Name, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, &app.RequestError{Kind: app.RequestBaseline, TargetID: projectID, Err: err}
	}
	fields["baselined"] = count
	return count, nil
}

func refreshProjectCompletion(ctx context.Context, projects repository.ProjectRepo, phases repository.PhaseRepo, projectID string, now time.Time) error {
	proj, err := projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	list, err := phases.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	proj.CompletionPct = domain.RollupCompletion(list)
	proj.UpdatedAt = now
	return projects.Update(ctx, proj)
}
