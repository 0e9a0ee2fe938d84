package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/google/uuid"
)

type milestoneService struct {
	milestones repository.MilestoneRepo
	projects   repository.ProjectRepo
}

func NewMilestoneService(milestones repository.MilestoneRepo, projects repository.ProjectRepo) MilestoneService {
	return &milestoneService{milestones: milestones, projects: projects}
}

func (s *milestoneService) Create(ctx context.Context, m *domain.Milestone) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Type == "" {
		m.Type = domain.MilestoneDelivery
	}
	if m.ActualDate != nil {
		m.CompletionPct = 100
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if _, err := s.projects.GetByID(ctx, m.ProjectID); err != nil {
		return fmt.Errorf("milestone %q: %w", m.Name, err)
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	return s.milestones.Create(ctx, m)
}

func (s *milestoneService) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	return s.milestones.GetByID(ctx, id)
}

func (s *milestoneService) ListByProjects(ctx context.Context, projectIDs []string) ([]*domain.Milestone, error) {
	return s.milestones.ListByProjects(ctx, projectIDs)
}

// Complete records the actual date, which is what makes a milestone completed.
func (s *milestoneService) Complete(ctx context.Context, id string, actual time.Time) (*domain.Milestone, error) {
	m, err := s.milestones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Complete(actual, time.Now().UTC())
	if err := s.milestones.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *milestoneService) Delete(ctx context.Context, id string) error {
	return s.milestones.Delete(ctx, id)
}
