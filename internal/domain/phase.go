package domain

import (
	"fmt"
	"time"
)

// Phase is a scheduled unit of work within a project.
// IsCriticalPath is written by a critical-path collaborator and is not
// authoritative inside the timeline engine.
type Phase struct {
	ID        string
	ProjectID string
	Name      string

	PlannedStart  *time.Time
	PlannedEnd    *time.Time
	ActualStart   *time.Time
	ActualEnd     *time.Time
	BaselineStart *time.Time
	BaselineEnd   *time.Time

	DurationDays         int
	BaselineDurationDays int
	CompletionPct        int

	Status         PhaseStatus
	Priority       Priority
	IsCriticalPath bool
	ResourceID     *string
	EffortHours    float64
	Color          string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the record-level invariants of a phase, including
// end >= start for every date pair that is fully present.
func (p *Phase) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("phase name is required")
	}
	if p.ProjectID == "" {
		return fmt.Errorf("phase %q has no project", p.Name)
	}
	if !ValidPhaseStatuses[p.Status] {
		return fmt.Errorf("phase %q: unknown status %q", p.Name, p.Status)
	}
	if !ValidPriorities[p.Priority] {
		return fmt.Errorf("phase %q: unknown priority %q", p.Name, p.Priority)
	}
	if p.CompletionPct < 0 || p.CompletionPct > 100 {
		return fmt.Errorf("phase %q: completion %d must be between 0 and 100", p.Name, p.CompletionPct)
	}
	if p.EffortHours < 0 {
		return fmt.Errorf("phase %q: effort hours must not be negative", p.Name)
	}
	if p.DurationDays < 0 || p.BaselineDurationDays < 0 {
		return fmt.Errorf("phase %q: durations must not be negative", p.Name)
	}
	pairs := []struct {
		label      string
		start, end *time.Time
	}{
		{"planned", p.PlannedStart, p.PlannedEnd},
		{"actual", p.ActualStart, p.ActualEnd},
		{"baseline", p.BaselineStart, p.BaselineEnd},
	}
	for _, pr := range pairs {
		if pr.start != nil && pr.end != nil && pr.end.Before(*pr.start) {
			return fmt.Errorf("phase %q: %s end %s is before %s start %s", p.Name,
				pr.label, pr.end.Format(DateLayout), pr.label, pr.start.Format(DateLayout))
		}
	}
	return nil
}

// HasPlannedRange reports whether both planned dates are present.
func (p *Phase) HasPlannedRange() bool {
	return p.PlannedStart != nil && p.PlannedEnd != nil
}

// HasBaseline reports whether both baseline dates are present.
func (p *Phase) HasBaseline() bool {
	return p.BaselineStart != nil && p.BaselineEnd != nil
}

// ResourceKey returns the assigned resource ID, or "" when unassigned.
func (p *Phase) ResourceKey() string {
	if p.ResourceID == nil {
		return ""
	}
	return *p.ResourceID
}

// SetProgress records a new completion percentage.
func (p *Phase) SetProgress(pct int, now time.Time) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("completion %d must be between 0 and 100", pct)
	}
	p.CompletionPct = pct
	p.UpdatedAt = now
	return nil
}

// CaptureBaseline snapshots the planned range and duration into the
// baseline fields. Returns false when the phase has no planned range.
func (p *Phase) CaptureBaseline(now time.Time) bool {
	if !p.HasPlannedRange() {
		return false
	}
	start, end := *p.PlannedStart, *p.PlannedEnd
	p.BaselineStart = &start
	p.BaselineEnd = &end
	p.BaselineDurationDays = p.DurationDays
	p.UpdatedAt = now
	return true
}
