package timeline

import (
	"github.com/alexanderramin/groundwork/internal/domain"
)

type BaselineClass string

const (
	BaselineDelayed         BaselineClass = "delayed"
	BaselineDurationChanged BaselineClass = "duration_changed"
	BaselineOnTrack         BaselineClass = "on_track"
)

type DurationChange string

const (
	DurationUnchanged DurationChange = ""
	DurationShrink    DurationChange = "shrink"
	DurationGrowth    DurationChange = "growth"
)

// BaselineVariance compares a phase's plan with its baseline snapshot.
// Positive StartVarianceDays means the plan now starts later than baselined.
type BaselineVariance struct {
	StartVarianceDays    int
	DurationVarianceDays int
	Delayed              bool
	DurationChanged      bool
	Change               DurationChange
	Class                BaselineClass
}

// CompareBaseline returns nil when either the planned or the baseline range
// is incomplete: such phases are not comparable, which is different from
// having zero variance.
func CompareBaseline(p domain.Phase) *BaselineVariance {
	if !p.HasPlannedRange() || !p.HasBaseline() {
		return nil
	}
	v := &BaselineVariance{
		StartVarianceDays:    DaysBetween(*p.PlannedStart, *p.BaselineStart),
		DurationVarianceDays: p.DurationDays - p.BaselineDurationDays,
	}
	v.Delayed = v.StartVarianceDays > 0
	v.DurationChanged = v.DurationVarianceDays != 0
	switch {
	case v.DurationVarianceDays < 0:
		v.Change = DurationShrink
	case v.DurationVarianceDays > 0:
		v.Change = DurationGrowth
	}
	switch {
	case v.Delayed:
		v.Class = BaselineDelayed
	case v.DurationChanged:
		v.Class = BaselineDurationChanged
	default:
		v.Class = BaselineOnTrack
	}
	return v
}
