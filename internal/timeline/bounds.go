// Package timeline turns project, phase and milestone records into the
// coordinate space of the master Gantt view. Every function is pure: the
// current date is always passed in, never read from the clock.
package timeline

import (
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// DefaultWindowDays is the span shown when no record carries a date.
const DefaultWindowDays = 365

// Bounds is the visible date window. End is exclusive: the last visible
// day is End-1, and TotalDays = End - Start is always positive.
type Bounds struct {
	Start     time.Time
	End       time.Time
	TotalDays int
}

// LastDay returns the last calendar day inside the window.
func (b Bounds) LastDay() time.Time {
	return addDays(b.End, -1)
}

// BoundsInput is every record that contributes dates to the window.
type BoundsInput struct {
	Projects   []domain.Project
	Phases     []domain.Phase
	Milestones []domain.Milestone
}

// CollectDates gathers every present date from the input records.
func CollectDates(in BoundsInput) []time.Time {
	var dates []time.Time
	add := func(ts ...*time.Time) {
		for _, t := range ts {
			if t != nil {
				dates = append(dates, domain.Day(*t))
			}
		}
	}
	for i := range in.Projects {
		p := &in.Projects[i]
		add(p.TargetStart, p.TargetFinish)
	}
	for i := range in.Phases {
		p := &in.Phases[i]
		add(p.PlannedStart, p.PlannedEnd, p.ActualStart, p.ActualEnd, p.BaselineStart, p.BaselineEnd)
	}
	for i := range in.Milestones {
		add(in.Milestones[i].TargetDate)
	}
	return dates
}

// zoomPadding is the raw padding applied on both sides before snapping.
func zoomPadding(zoom domain.ZoomLevel) int {
	switch zoom {
	case domain.ZoomWeeks:
		return 14
	case domain.ZoomMonths:
		return 30
	case domain.ZoomQuarters:
		return 90
	default:
		return 7
	}
}

// ComputeBounds derives the visible window for the given zoom level.
// With no dates at all the window is [today, today+365).
func ComputeBounds(in BoundsInput, zoom domain.ZoomLevel, now time.Time) Bounds {
	return boundsFromDates(CollectDates(in), zoom, now)
}

func boundsFromDates(dates []time.Time, zoom domain.ZoomLevel, now time.Time) Bounds {
	if len(dates) == 0 {
		today := domain.Day(now)
		return Bounds{Start: today, End: addDays(today, DefaultWindowDays), TotalDays: DefaultWindowDays}
	}

	lo, hi := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(lo) {
			lo = d
		}
		if d.After(hi) {
			hi = d
		}
	}

	pad := zoomPadding(zoom)
	start := addDays(lo, -pad)
	end := addDays(hi, pad)
	if zoom == domain.ZoomWeeks || zoom == domain.ZoomMonths || zoom == domain.ZoomQuarters {
		start = floorTo(start, zoom)
		end = ceilTo(end, zoom)
	}

	return Bounds{Start: start, End: end, TotalDays: DaysBetween(end, start)}
}
