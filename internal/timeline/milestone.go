package timeline

import (
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// MilestoneMarker is a milestone placed as a zero-width point.
type MilestoneMarker struct {
	Milestone    domain.Milestone
	Left         float64
	Completed    bool
	Overdue      bool
	VarianceDays *int
}

// ClassifyMilestone reports completion, overdue status and, for completed
// milestones, the signed actual - target variance in days.
// A milestone without a target date is never overdue.
func ClassifyMilestone(m domain.Milestone, now time.Time) (completed, overdue bool, varianceDays *int) {
	completed = m.ActualDate != nil
	if completed {
		if m.TargetDate != nil {
			v := DaysBetween(*m.ActualDate, *m.TargetDate)
			varianceDays = &v
		}
		return completed, false, varianceDays
	}
	if m.TargetDate != nil && domain.Day(*m.TargetDate).Before(domain.Day(now)) {
		overdue = true
	}
	return completed, overdue, nil
}

// PositionMilestones places every milestone that has a target date inside
// the window. Milestones without a target are skipped, not defaulted.
func PositionMilestones(milestones []domain.Milestone, b Bounds, now time.Time) []MilestoneMarker {
	var markers []MilestoneMarker
	for _, m := range milestones {
		left := PointOf(m.TargetDate, b)
		if left == nil {
			continue
		}
		completed, overdue, variance := ClassifyMilestone(m, now)
		markers = append(markers, MilestoneMarker{
			Milestone:    m,
			Left:         *left,
			Completed:    completed,
			Overdue:      overdue,
			VarianceDays: variance,
		})
	}
	return markers
}
