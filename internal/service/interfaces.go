package service

import (
	"context"
	"time"

	"github.com/alexanderramin/groundwork/internal/app"
	"github.com/alexanderramin/groundwork/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// Resolve finds a project by code (case-insensitive) or ID.
	Resolve(ctx context.Context, ref string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type ResourceService interface {
	Create(ctx context.Context, r *domain.Resource) error
	// Resolve finds a resource by name (case-insensitive) or ID.
	Resolve(ctx context.Context, ref string) (*domain.Resource, error)
	List(ctx context.Context) ([]*domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

type PhaseService interface {
	Create(ctx context.Context, p *domain.Phase) error
	GetByID(ctx context.Context, id string) (*domain.Phase, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Phase, error)
	Update(ctx context.Context, p *domain.Phase) error
	Delete(ctx context.Context, id string) error
}

type MilestoneService interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	ListByProjects(ctx context.Context, projectIDs []string) ([]*domain.Milestone, error)
	Complete(ctx context.Context, id string, actual time.Time) (*domain.Milestone, error)
	Delete(ctx context.Context, id string) error
}

type SettingsService interface {
	// Get returns the saved view settings, or the configured defaults when
	// nothing has been saved yet.
	Get(ctx context.Context) (domain.ViewSettings, error)
	Save(ctx context.Context, s domain.ViewSettings) error
}

type (
	TimelineService = app.TimelineUseCase
	ScheduleService = app.ScheduleUseCase
	ExportService   = app.ExportUseCase
	ImportService   = app.ImportProjectUseCase
)
