package domain

import (
	"fmt"
	"time"
)

// Milestone is a zero-duration scheduled event. A milestone is completed
// exactly when ActualDate is present.
type Milestone struct {
	ID            string
	ProjectID     string
	Name          string
	TargetDate    *time.Time
	ActualDate    *time.Time
	Type          MilestoneType
	IsCritical    bool
	CompletionPct int
	Color         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (m *Milestone) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("milestone name is required")
	}
	if m.ProjectID == "" {
		return fmt.Errorf("milestone %q has no project", m.Name)
	}
	if !ValidMilestoneTypes[m.Type] {
		return fmt.Errorf("milestone %q: unknown type %q", m.Name, m.Type)
	}
	if m.CompletionPct < 0 || m.CompletionPct > 100 {
		return fmt.Errorf("milestone %q: completion %d must be between 0 and 100", m.Name, m.CompletionPct)
	}
	return nil
}

func (m *Milestone) IsCompleted() bool {
	return m.ActualDate != nil
}

// Complete records the actual date and marks the milestone fully done.
func (m *Milestone) Complete(actual time.Time, now time.Time) {
	d := Day(actual)
	m.ActualDate = &d
	m.CompletionPct = 100
	m.UpdatedAt = now
}
