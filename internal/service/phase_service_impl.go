package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/timeline"
	"github.com/google/uuid"
)

type phaseService struct {
	phases   repository.PhaseRepo
	projects repository.ProjectRepo
}

func NewPhaseService(phases repository.PhaseRepo, projects repository.ProjectRepo) PhaseService {
	return &phaseService{phases: phases, projects: projects}
}

// Create fills defaults and rejects phases whose date pairs are reversed.
// A missing duration is derived from the planned range.
func (s *phaseService) Create(ctx context.Context, p *domain.Phase) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = domain.PhasePlanned
	}
	if p.Priority == "" {
		p.Priority = domain.PriorityMedium
	}
	if p.DurationDays == 0 && p.HasPlannedRange() {
		p.DurationDays = timeline.DaysBetween(*p.PlannedEnd, *p.PlannedStart) + 1
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.projects.GetByID(ctx, p.ProjectID); err != nil {
		return fmt.Errorf("phase %q: %w", p.Name, err)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.phases.Create(ctx, p)
}

func (s *phaseService) GetByID(ctx context.Context, id string) (*domain.Phase, error) {
	return s.phases.GetByID(ctx, id)
}

func (s *phaseService) ListByProject(ctx context.Context, projectID string) ([]*domain.Phase, error) {
	return s.phases.ListByProject(ctx, projectID)
}

func (s *phaseService) Update(ctx context.Context, p *domain.Phase) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.phases.Update(ctx, p)
}

func (s *phaseService) Delete(ctx context.Context, id string) error {
	return s.phases.Delete(ctx, id)
}
