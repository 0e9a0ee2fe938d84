package domain

import (
	"fmt"
	"regexp"
	"time"
)

var projectCodePattern = regexp.MustCompile(`^[A-Z]{2,6}-?[0-9]{2,5}$`)

type Project struct {
	ID            string
	Code          string
	Name          string
	Status        ProjectStatus
	TargetStart   *time.Time
	TargetFinish  *time.Time
	CompletionPct int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidateCode checks that Code is non-empty and matches the required
// format: 2-6 uppercase letters, an optional dash, then 2-5 digits (e.g. BLD-042).
func (p *Project) ValidateCode() error {
	if p.Code == "" {
		return fmt.Errorf("project code is required (use --code flag)")
	}
	if !projectCodePattern.MatchString(p.Code) {
		return fmt.Errorf("project code %q must be 2-6 uppercase letters followed by 2-5 digits (e.g. BLD-042)", p.Code)
	}
	return nil
}

// Validate checks the record-level invariants of a project.
func (p *Project) Validate() error {
	if err := p.ValidateCode(); err != nil {
		return err
	}
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.Status != "" && !ValidProjectStatuses[p.Status] {
		return fmt.Errorf("unknown project status %q", p.Status)
	}
	if p.CompletionPct < 0 || p.CompletionPct > 100 {
		return fmt.Errorf("project completion %d must be between 0 and 100", p.CompletionPct)
	}
	if p.TargetStart != nil && p.TargetFinish != nil && p.TargetFinish.Before(*p.TargetStart) {
		return fmt.Errorf("project target finish %s is before target start %s",
			p.TargetFinish.Format(DateLayout), p.TargetStart.Format(DateLayout))
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers Code; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.Code != "" {
		return p.Code
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// RollupCompletion is the duration-weighted mean completion of phases,
// falling back to a plain mean when no phase has a duration.
func RollupCompletion(phases []*Phase) int {
	if len(phases) == 0 {
		return 0
	}
	var weighted, weight, plain int
	for _, p := range phases {
		weighted += p.CompletionPct * p.DurationDays
		weight += p.DurationDays
		plain += p.CompletionPct
	}
	if weight > 0 {
		return weighted / weight
	}
	return plain / len(phases)
}
