package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/google/uuid"
)

var testCodeCounter atomic.Int64

// Date returns midnight UTC on the given calendar day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// now is second-precision so records survive the RFC3339 round trip.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Project options
type ProjectOption func(*domain.Project)

func WithCode(code string) ProjectOption {
	return func(p *domain.Project) {
		p.Code = code
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithTargets(start, finish time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.TargetStart = &start
		p.TargetFinish = &finish
	}
}

// NewTestProject returns a valid project with a unique generated code.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	ts := now()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Code:      fmt.Sprintf("TST-%03d", testCodeCounter.Add(1)),
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestResource(name, role string) *domain.Resource {
	return &domain.Resource{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      role,
		CreatedAt: now(),
	}
}

// Phase options
type PhaseOption func(*domain.Phase)

// WithPlanned sets the planned range and an inclusive day-count duration.
func WithPlanned(start, end time.Time) PhaseOption {
	return func(p *domain.Phase) {
		p.PlannedStart = &start
		p.PlannedEnd = &end
		p.DurationDays = int(end.Sub(start).Hours()/24) + 1
	}
}

func WithActual(start time.Time, end *time.Time) PhaseOption {
	return func(p *domain.Phase) {
		p.ActualStart = &start
		p.ActualEnd = end
	}
}

func WithBaseline(start, end time.Time, durationDays int) PhaseOption {
	return func(p *domain.Phase) {
		p.BaselineStart = &start
		p.BaselineEnd = &end
		p.BaselineDurationDays = durationDays
	}
}

func WithDuration(days int) PhaseOption {
	return func(p *domain.Phase) {
		p.DurationDays = days
	}
}

func WithPhaseStatus(s domain.PhaseStatus) PhaseOption {
	return func(p *domain.Phase) {
		p.Status = s
	}
}

func WithPriority(pr domain.Priority) PhaseOption {
	return func(p *domain.Phase) {
		p.Priority = pr
	}
}

func WithCompletion(pct int) PhaseOption {
	return func(p *domain.Phase) {
		p.CompletionPct = pct
	}
}

func WithResource(id string) PhaseOption {
	return func(p *domain.Phase) {
		p.ResourceID = &id
	}
}

func WithCriticalPath() PhaseOption {
	return func(p *domain.Phase) {
		p.IsCriticalPath = true
	}
}

func WithEffort(hours float64) PhaseOption {
	return func(p *domain.Phase) {
		p.EffortHours = hours
	}
}

// NewTestPhase returns a Planned, Medium priority phase with no dates.
func NewTestPhase(projectID, name string, opts ...PhaseOption) *domain.Phase {
	ts := now()
	p := &domain.Phase{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Status:    domain.PhasePlanned,
		Priority:  domain.PriorityMedium,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Milestone options
type MilestoneOption func(*domain.Milestone)

func WithTargetDate(d time.Time) MilestoneOption {
	return func(m *domain.Milestone) {
		m.TargetDate = &d
	}
}

func WithActualDate(d time.Time) MilestoneOption {
	return func(m *domain.Milestone) {
		m.ActualDate = &d
		m.CompletionPct = 100
	}
}

func WithMilestoneType(t domain.MilestoneType) MilestoneOption {
	return func(m *domain.Milestone) {
		m.Type = t
	}
}

func WithCriticalMilestone() MilestoneOption {
	return func(m *domain.Milestone) {
		m.IsCritical = true
	}
}

func NewTestMilestone(projectID, name string, opts ...MilestoneOption) *domain.Milestone {
	ts := now()
	m := &domain.Milestone{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Type:      domain.MilestoneDelivery,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
