// Package export renders schedule reports as aligned text or delimited tables.
package export

import (
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/timeline"
)

// Report is a snapshot of one or more projects, assembled once and handed
// to a writer.
type Report struct {
	GeneratedAt time.Time
	Projects    []ProjectReport
}

type ProjectReport struct {
	Project    domain.Project
	Phases     []PhaseRow
	Milestones []MilestoneRow
}

type PhaseRow struct {
	Phase    domain.Phase
	Resource string
	// Variance is nil when the phase has no comparable baseline.
	Variance *timeline.BaselineVariance
}

type MilestoneRow struct {
	Milestone    domain.Milestone
	Completed    bool
	Overdue      bool
	VarianceDays *int
}

// NewReport groups phases and milestones under their projects, in project
// order. Records whose project is not listed are dropped.
func NewReport(projects []domain.Project, phases []domain.Phase, milestones []domain.Milestone, resourceNames map[string]string, now time.Time) Report {
	r := Report{GeneratedAt: now, Projects: make([]ProjectReport, len(projects))}
	index := make(map[string]int, len(projects))
	for i, p := range projects {
		r.Projects[i].Project = p
		index[p.ID] = i
	}
	for _, ph := range phases {
		i, ok := index[ph.ProjectID]
		if !ok {
			continue
		}
		row := PhaseRow{Phase: ph, Variance: timeline.CompareBaseline(ph)}
		if ph.ResourceID != nil {
			row.Resource = resourceNames[*ph.ResourceID]
		}
		r.Projects[i].Phases = append(r.Projects[i].Phases, row)
	}
	for _, m := range milestones {
		i, ok := index[m.ProjectID]
		if !ok {
			continue
		}
		completed, overdue, variance := timeline.ClassifyMilestone(m, now)
		r.Projects[i].Milestones = append(r.Projects[i].Milestones, MilestoneRow{
			Milestone:    m,
			Completed:    completed,
			Overdue:      overdue,
			VarianceDays: variance,
		})
	}
	return r
}
