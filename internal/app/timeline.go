package app

import (
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/timeline"
)

type TimelineRequest struct {
	// ProjectIDs scopes the chart; empty means every project.
	ProjectIDs []string
	// Settings overrides the saved view settings when non-nil.
	Settings *domain.ViewSettings
	// Now is the reference instant; zero means the wall clock.
	Now time.Time
}

type TimelineResponse struct {
	Chart       timeline.Chart
	Projects    []*domain.Project
	Resources   []*domain.Resource
	GeneratedAt time.Time
}

type ExportFormat string

const (
	ExportText ExportFormat = "text"
	ExportCSV  ExportFormat = "csv"
	ExportTSV  ExportFormat = "tsv"
)

var ExportFormats = []ExportFormat{ExportText, ExportCSV, ExportTSV}

type ExportRequest struct {
	ProjectIDs []string
	Format     ExportFormat
	Now        time.Time
}
