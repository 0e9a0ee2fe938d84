package repository

import (
	"context"

	"github.com/alexanderramin/groundwork/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByCode(ctx context.Context, code string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	GetByName(ctx context.Context, name string) (*domain.Resource, error)
	List(ctx context.Context) ([]*domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

// PhaseRepo stores phases. List methods return phases in project creation
// order, then in the order they were added to their project.
type PhaseRepo interface {
	Create(ctx context.Context, p *domain.Phase) error
	GetByID(ctx context.Context, id string) (*domain.Phase, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Phase, error)
	// ListByProjects returns phases of the given projects, or of all
	// projects when projectIDs is empty.
	ListByProjects(ctx context.Context, projectIDs []string) ([]*domain.Phase, error)
	Update(ctx context.Context, p *domain.Phase) error
	Delete(ctx context.Context, id string) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	ListByProjects(ctx context.Context, projectIDs []string) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	Delete(ctx context.Context, id string) error
}

// ViewSettingsRepo persists the single saved ViewSettings value.
type ViewSettingsRepo interface {
	Get(ctx context.Context) (*domain.ViewSettings, error)
	Upsert(ctx context.Context, s domain.ViewSettings) error
}
