package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// It is the ingestion guard for inconsistent dates: a range whose end is
// before its start is rejected here because the timeline engine draws
// whatever it is given. Returns every problem found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateProject(&schema.Project)...)

	resourceRefs := make(map[string]bool)
	errs = append(errs, validateResources(schema.Resources, resourceRefs)...)
	errs = append(errs, validatePhases(schema.Phases, resourceRefs)...)
	errs = append(errs, validateMilestones(schema.Milestones)...)

	return errs
}

func validateProject(p *ProjectImport) []error {
	var errs []error

	proj := domain.Project{Code: p.Code}
	if err := proj.ValidateCode(); err != nil {
		errs = append(errs, fmt.Errorf("project.code: %w", err))
	}
	if p.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	if p.Status != "" && !domain.ValidProjectStatuses[domain.ProjectStatus(p.Status)] {
		errs = append(errs, fmt.Errorf("project.status: invalid value %q", p.Status))
	}
	errs = append(errs, validateRange("project.target", p.TargetStart, p.TargetFinish)...)

	return errs
}

func validateResources(resources []ResourceImport, refs map[string]bool) []error {
	var errs []error
	for i, r := range resources {
		prefix := fmt.Sprintf("resources[%d]", i)

		if r.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[r.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, r.Ref))
		} else {
			refs[r.Ref] = true
		}
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}
	return errs
}

func validatePhases(phases []PhaseImport, resourceRefs map[string]bool) []error {
	var errs []error

	for i, ph := range phases {
		prefix := fmt.Sprintf("phases[%d]", i)

		if ph.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if ph.Status != "" && !domain.ValidPhaseStatuses[domain.PhaseStatus(ph.Status)] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, ph.Status))
		}
		if ph.Priority != "" && !domain.ValidPriorities[domain.Priority(ph.Priority)] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, ph.Priority))
		}
		if ph.ResourceRef != "" && !resourceRefs[ph.ResourceRef] {
			errs = append(errs, fmt.Errorf("%s.resource_ref: ref %q not found in resources", prefix, ph.ResourceRef))
		}

		errs = append(errs, validatePct(prefix+".completion_pct", ph.CompletionPct)...)
		errs = append(errs, validateNonNegative(prefix+".duration_days", ph.DurationDays)...)
		errs = append(errs, validateNonNegative(prefix+".baseline_duration_days", ph.BaselineDurationDays)...)
		if ph.EffortHours != nil && *ph.EffortHours < 0 {
			errs = append(errs, fmt.Errorf("%s.effort_hours must not be negative", prefix))
		}

		errs = append(errs, validateRange(prefix+".planned", ph.PlannedStart, ph.PlannedEnd)...)
		errs = append(errs, validateRange(prefix+".actual", ph.ActualStart, ph.ActualEnd)...)
		errs = append(errs, validateRange(prefix+".baseline", ph.BaselineStart, ph.BaselineEnd)...)
	}

	return errs
}

func validateMilestones(milestones []MilestoneImport) []error {
	var errs []error
	for i, m := range milestones {
		prefix := fmt.Sprintf("milestones[%d]", i)

		if m.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if m.Type != "" && !domain.ValidMilestoneTypes[domain.MilestoneType(m.Type)] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, m.Type))
		}
		errs = append(errs, validatePct(prefix+".completion_pct", m.CompletionPct)...)
		errs = append(errs, validateOptionalDate(prefix+".target_date", m.TargetDate)...)
		errs = append(errs, validateOptionalDate(prefix+".actual_date", m.ActualDate)...)
	}
	return errs
}

// validateRange checks both dates of a pair and, when both parse,
// that the end is not before the start.
func validateRange(prefix string, start, end *string) []error {
	var errs []error
	s, sErr := parseDateField(prefix+"_start", start)
	if sErr != nil {
		errs = append(errs, sErr)
	}
	e, eErr := parseDateField(prefix+"_end", end)
	if eErr != nil {
		errs = append(errs, eErr)
	}
	if s != nil && e != nil && e.Before(*s) {
		errs = append(errs, fmt.Errorf("%s: end %s is before start %s", prefix, *end, *start))
	}
	return errs
}

func validateOptionalDate(field string, value *string) []error {
	if _, err := parseDateField(field, value); err != nil {
		return []error{err}
	}
	return nil
}

func parseDateField(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, *value)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *value)
	}
	return &t, nil
}

func validatePct(field string, v *int) []error {
	if v != nil && (*v < 0 || *v > 100) {
		return []error{fmt.Errorf("%s: %d must be between 0 and 100", field, *v)}
	}
	return nil
}

func validateNonNegative(field string, v *int) []error {
	if v != nil && *v < 0 {
		return []error{fmt.Errorf("%s must not be negative", field)}
	}
	return nil
}
