package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/timeline"
	"github.com/google/uuid"
)

// Plan is a converted import, ready for persistence.
type Plan struct {
	Project    *domain.Project
	Resources  []*domain.Resource
	Phases     []*domain.Phase
	Milestones []*domain.Milestone
}

// ReplaceResource points every phase assigned to resource from at resource
// to, and drops from from the resources to create.
func (p *Plan) ReplaceResource(from, to string) {
	kept := p.Resources[:0]
	for _, r := range p.Resources {
		if r.ID != from {
			kept = append(kept, r)
		}
	}
	p.Resources = kept
	for _, ph := range p.Phases {
		if ph.ResourceID != nil && *ph.ResourceID == from {
			id := to
			ph.ResourceID = &id
		}
	}
}

// Convert transforms a validated ImportSchema into domain records stamped
// with now. Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema, now time.Time) (*Plan, error) {
	targetStart, err := parseDateField("project.target_start", schema.Project.TargetStart)
	if err != nil {
		return nil, err
	}
	targetFinish, err := parseDateField("project.target_finish", schema.Project.TargetFinish)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Project: &domain.Project{
			ID:           uuid.New().String(),
			Code:         strings.ToUpper(schema.Project.Code),
			Name:         schema.Project.Name,
			Status:       domain.ProjectStatus(domain.CoalesceStr(schema.Project.Status, string(domain.ProjectPlanning))),
			TargetStart:  targetStart,
			TargetFinish: targetFinish,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	refMap := make(map[string]string) // resource ref -> UUID
	for _, r := range schema.Resources {
		res := &domain.Resource{
			ID:        uuid.New().String(),
			Name:      r.Name,
			Role:      r.Role,
			CreatedAt: now,
		}
		refMap[r.Ref] = res.ID
		plan.Resources = append(plan.Resources, res)
	}

	for i, ph := range schema.Phases {
		phase, err := convertPhase(ph, plan.Project.ID, refMap, now)
		if err != nil {
			return nil, fmt.Errorf("phases[%d]: %w", i, err)
		}
		plan.Phases = append(plan.Phases, phase)
	}

	for i, m := range schema.Milestones {
		ms, err := convertMilestone(m, plan.Project.ID, now)
		if err != nil {
			return nil, fmt.Errorf("milestones[%d]: %w", i, err)
		}
		plan.Milestones = append(plan.Milestones, ms)
	}

	plan.Project.CompletionPct = domain.RollupCompletion(plan.Phases)
	return plan, nil
}

func convertPhase(ph PhaseImport, projectID string, refMap map[string]string, now time.Time) (*domain.Phase, error) {
	p := &domain.Phase{
		ID:             uuid.New().String(),
		ProjectID:      projectID,
		Name:           ph.Name,
		CompletionPct:  domain.IntFromPtrWithDefault(0, ph.CompletionPct),
		Status:         domain.PhaseStatus(domain.CoalesceStr(ph.Status, string(domain.PhasePlanned))),
		Priority:       domain.Priority(domain.CoalesceStr(ph.Priority, string(domain.PriorityMedium))),
		IsCriticalPath: ph.Critical,
		Color:          ph.Color,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if ph.EffortHours != nil {
		p.EffortHours = *ph.EffortHours
	}
	if ph.ResourceRef != "" {
		id, ok := refMap[ph.ResourceRef]
		if !ok {
			return nil, fmt.Errorf("resource_ref %q not found", ph.ResourceRef)
		}
		p.ResourceID = &id
	}

	fields := []struct {
		name string
		src  *string
		dst  **time.Time
	}{
		{"planned_start", ph.PlannedStart, &p.PlannedStart},
		{"planned_end", ph.PlannedEnd, &p.PlannedEnd},
		{"actual_start", ph.ActualStart, &p.ActualStart},
		{"actual_end", ph.ActualEnd, &p.ActualEnd},
		{"baseline_start", ph.BaselineStart, &p.BaselineStart},
		{"baseline_end", ph.BaselineEnd, &p.BaselineEnd},
	}
	for _, f := range fields {
		t, err := parseDateField(f.name, f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = t
	}

	// Durations default to the inclusive day count of their range.
	p.DurationDays = domain.IntFromPtrWithDefault(inclusiveDays(p.PlannedStart, p.PlannedEnd), ph.DurationDays)
	p.BaselineDurationDays = domain.IntFromPtrWithDefault(inclusiveDays(p.BaselineStart, p.BaselineEnd), ph.BaselineDurationDays)
	return p, nil
}

func convertMilestone(m MilestoneImport, projectID string, now time.Time) (*domain.Milestone, error) {
	target, err := parseDateField("target_date", m.TargetDate)
	if err != nil {
		return nil, err
	}
	actual, err := parseDateField("actual_date", m.ActualDate)
	if err != nil {
		return nil, err
	}
	ms := &domain.Milestone{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		Name:          m.Name,
		TargetDate:    target,
		ActualDate:    actual,
		Type:          domain.MilestoneType(domain.CoalesceStr(m.Type, string(domain.MilestoneDelivery))),
		IsCritical:    m.Critical,
		CompletionPct: domain.IntFromPtrWithDefault(0, m.CompletionPct),
		Color:         m.Color,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if actual != nil && m.CompletionPct == nil {
		ms.CompletionPct = 100
	}
	return ms, nil
}

func inclusiveDays(start, end *time.Time) int {
	if start == nil || end == nil {
		return 0
	}
	return timeline.DaysBetween(*end, *start) + 1
}
