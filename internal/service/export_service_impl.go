package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/groundwork/internal/app"
	"github.com/alexanderramin/groundwork/internal/export"
	"github.com/alexanderramin/groundwork/internal/repository"
)

type exportService struct {
	projects   repository.ProjectRepo
	phases     repository.PhaseRepo
	milestones repository.MilestoneRepo
	resources  repository.ResourceRepo
	observer   UseCaseObserver
}

func NewExportService(
	projects repository.ProjectRepo,
	phases repository.PhaseRepo,
	milestones repository.MilestoneRepo,
	resources repository.ResourceRepo,
	observers ...UseCaseObserver,
) ExportService {
	return &exportService{
		projects:   projects,
		phases:     phases,
		milestones: milestones,
		resources:  resources,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *exportService) Export(ctx context.Context, req app.ExportRequest, w io.Writer) (err error) {
	format := req.Format
	if format == "" {
		format = app.ExportText
	}
	fields := map[string]any{"format": string(format), "project_scope": len(req.ProjectIDs)}
	defer observe(ctx, s.observer, "export", time.Now().UTC(), fields, &err)

	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	projects, err := loadProjects(ctx, s.projects, req.ProjectIDs)
	if err != nil {
		return err
	}
	phases, err := s.phases.ListByProjects(ctx, req.ProjectIDs)
	if err != nil {
		return err
	}
	milestones, err := s.milestones.ListByProjects(ctx, req.ProjectIDs)
	if err != nil {
		return err
	}
	resources, err := s.resources.List(ctx)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(resources))
	for _, r := range resources {
		names[r.ID] = r.Name
	}

	report := export.NewReport(derefAll(projects), derefAll(phases), derefAll(milestones), names, now)
	switch format {
	case app.ExportText:
		return export.WriteText(w, report)
	case app.ExportCSV:
		return export.WriteDelimited(w, report, ',')
	case app.ExportTSV:
		return export.WriteDelimited(w, report, '\t')
	default:
		return fmt.Errorf("unknown export format %q (want one of %v)", format, app.ExportFormats)
	}
}
