package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/app"
	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/importer"
	"github.com/alexanderramin/groundwork/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService loads project files into the store. A whole import lands
// in one transaction.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportProject(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportProjectFromSchema(ctx, schema)
}

func (s *importService) ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (result *app.ImportResult, err error) {
	fields := map[string]any{"code": schema.Project.Code}
	defer observe(ctx, s.observer, "import-project", time.Now().UTC(), fields, &err)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("import validation failed (%d errors): %w", len(errs), errors.Join(errs...))
	}

	plan, err := importer.Convert(schema, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		projects := repository.NewSQLiteProjectRepo(tx)
		resources := repository.NewSQLiteResourceRepo(tx)
		phases := repository.NewSQLitePhaseRepo(tx)
		milestones := repository.NewSQLiteMilestoneRepo(tx)

		if _, err := projects.GetByCode(ctx, plan.Project.Code); err == nil {
			return fmt.Errorf("project code %q already exists", plan.Project.Code)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err := projects.Create(ctx, plan.Project); err != nil {
			return fmt.Errorf("creating project: %w", err)
		}

		// Resources are shared across projects; reuse any with the same name.
		for _, r := range append([]*domain.Resource(nil), plan.Resources...) {
			existing, err := resources.GetByName(ctx, r.Name)
			switch {
			case err == nil:
				plan.ReplaceResource(r.ID, existing.ID)
			case errors.Is(err, repository.ErrNotFound):
				if err := resources.Create(ctx, r); err != nil {
					return fmt.Errorf("creating resource %q: %w", r.Name, err)
				}
			default:
				return err
			}
		}

		for _, ph := range plan.Phases {
			if err := phases.Create(ctx, ph); err != nil {
				return fmt.Errorf("creating phase %q: %w", ph.Name, err)
			}
		}
		for _, m := range plan.Milestones {
			if err := milestones.Create(ctx, m); err != nil {
				return fmt.Errorf("creating milestone %q: %w", m.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["phases"] = len(plan.Phases)
	return &app.ImportResult{
		Project:        plan.Project,
		ResourceCount:  len(plan.Resources),
		PhaseCount:     len(plan.Phases),
		MilestoneCount: len(plan.Milestones),
	}, nil
}
