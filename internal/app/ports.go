package app

import (
	"context"
	"io"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/importer"
)

type TimelineUseCase interface {
	Build(ctx context.Context, req TimelineRequest) (*TimelineResponse, error)
}

// ScheduleUseCase carries the mutation requests the timeline emits.
type ScheduleUseCase interface {
	UpdateProgress(ctx context.Context, phaseID string, pct int) (*domain.Phase, error)
	RecomputeCriticalPath(ctx context.Context, projectID string) ([]string, error)
	CreateBaseline(ctx context.Context, projectID string) (int, error)
}

// CriticalPathProvider computes which phases of a project lie on the
// critical path. Implementations are external to the timeline engine.
type CriticalPathProvider interface {
	ComputeCriticalPath(ctx context.Context, projectID string) ([]string, error)
}

type ExportUseCase interface {
	Export(ctx context.Context, req ExportRequest, w io.Writer) error
}

type ImportResult struct {
	Project        *domain.Project
	ResourceCount  int
	PhaseCount     int
	MilestoneCount int
}

type ImportProjectUseCase interface {
	ImportProject(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
