package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/app"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/timeline"
)

type timelineService struct {
	projects   repository.ProjectRepo
	phases     repository.PhaseRepo
	milestones repository.MilestoneRepo
	resources  repository.ResourceRepo
	settings   SettingsService
	maxGapDays int
	observer   UseCaseObserver
}

// NewTimelineService loads records from the store and runs the timeline
// engine over them. maxGapDays <= 0 uses timeline.DefaultMaxGapDays.
func NewTimelineService(
	projects repository.ProjectRepo,
	phases repository.PhaseRepo,
	milestones repository.MilestoneRepo,
	resources repository.ResourceRepo,
	settings SettingsService,
	maxGapDays int,
	observers ...UseCaseObserver,
) TimelineService {
	return &timelineService{
		projects:   projects,
		phases:     phases,
		milestones: milestones,
		resources:  resources,
		settings:   settings,
		maxGapDays: maxGapDays,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *timelineService) Build(ctx context.Context, req app.TimelineRequest) (resp *app.TimelineResponse, err error) {
	fields := map[string]any{"project_scope": len(req.ProjectIDs)}
	defer observe(ctx, s.observer, "build-timeline", time.Now().UTC(), fields, &err)

	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var settings domain.ViewSettings
	if req.Settings != nil {
		settings = req.Settings.Clone()
	} else if settings, err = s.settings.Get(ctx); err != nil {
		return nil, fmt.Errorf("loading view settings: %w", err)
	}
	if err = settings.Validate(); err != nil {
		return nil, err
	}
	fields["zoom"] = string(settings.Zoom)
	fields["group_by"] = string(settings.GroupBy)

	projects, err := loadProjects(ctx, s.projects, req.ProjectIDs)
	if err != nil {
		return nil, err
	}
	phases, err := s.phases.ListByProjects(ctx, req.ProjectIDs)
	if err != nil {
		return nil, err
	}
	milestones, err := s.milestones.ListByProjects(ctx, req.ProjectIDs)
	if err != nil {
		return nil, err
	}
	resources, err := s.resources.List(ctx)
	if err != nil {
		return nil, err
	}

	in := timeline.Input{
		Projects:      derefAll(projects),
		Phases:        derefAll(phases),
		Milestones:    derefAll(milestones),
		ResourceNames: make(map[string]string, len(resources)),
		Settings:      settings,
		Now:           now,
		MaxGapDays:    s.maxGapDays,
	}
	for _, r := range resources {
		in.ResourceNames[r.ID] = r.Name
	}

	chart := timeline.Build(in)
	fields["phases"] = len(phases)
	fields["rows"] = chart.RowCount()
	fields["dependencies"] = len(chart.Dependencies)

	return &app.TimelineResponse{
		Chart:       chart,
		Projects:    projects,
		Resources:   resources,
		GeneratedAt: now,
	}, nil
}

// loadProjects returns the projects named by ids, or all of them when ids
// is empty.
func loadProjects(ctx context.Context, repo repository.ProjectRepo, ids []string) ([]*domain.Project, error) {
	if len(ids) == 0 {
		return repo.List(ctx)
	}
	out := make([]*domain.Project, 0, len(ids))
	for _, id := range ids {
		p, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("loading project %s: %w", id, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func derefAll[T any](items []*T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = *it
	}
	return out
}
