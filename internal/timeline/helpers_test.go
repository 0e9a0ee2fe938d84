package timeline

import (
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
)

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func mkDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := mkDate(y, m, d)
	return &t
}

func fixedBounds(start time.Time, days int) Bounds {
	return Bounds{Start: start, End: addDays(start, days), TotalDays: days}
}

type phaseOpt func(*domain.Phase)

func planned(start, end *time.Time) phaseOpt {
	return func(p *domain.Phase) {
		p.PlannedStart, p.PlannedEnd = start, end
	}
}

func inProject(id string) phaseOpt {
	return func(p *domain.Phase) { p.ProjectID = id }
}

func withStatus(s domain.PhaseStatus) phaseOpt {
	return func(p *domain.Phase) { p.Status = s }
}

func withResource(id string) phaseOpt {
	return func(p *domain.Phase) { p.ResourceID = &id }
}

func critical(duration, completion int) phaseOpt {
	return func(p *domain.Phase) {
		p.IsCriticalPath = true
		p.DurationDays = duration
		p.CompletionPct = completion
	}
}

func phase(id string, opts ...phaseOpt) domain.Phase {
	p := domain.Phase{
		ID:        id,
		ProjectID: "p-1",
		Name:      "Phase " + id,
		Status:    domain.PhasePlanned,
		Priority:  domain.PriorityMedium,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
