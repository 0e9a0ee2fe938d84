package timeline

import (
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// Input is one full render pass worth of records and settings.
type Input struct {
	Projects      []domain.Project
	Phases        []domain.Phase
	Milestones    []domain.Milestone
	ResourceNames map[string]string
	Settings      domain.ViewSettings
	Now           time.Time
	// MaxGapDays overrides DefaultMaxGapDays for dependency inference when > 0.
	MaxGapDays int
}

// Bar is one phase row of the chart.
type Bar struct {
	Phase         domain.Phase
	Row           int
	Planned       *Position
	Actual        *Position
	Baseline      *Position
	ProgressWidth float64
	Variance      *BaselineVariance
	Critical      bool
}

// Lane is a group header and its bars.
type Lane struct {
	Key   string
	Label string
	Bars  []Bar
}

// Chart is everything needed to draw the Gantt view.
type Chart struct {
	Settings     domain.ViewSettings
	Bounds       Bounds
	Segments     []Segment
	GridLines    []GridLine
	Today        *Position
	Lanes        []Lane
	Dependencies []Dependency
	Connectors   []Connector
	Critical     *CriticalPathSummary
	Milestones   []MilestoneMarker
}

// Bar returns the bar for a phase ID.
func (c *Chart) Bar(phaseID string) (Bar, bool) {
	for _, lane := range c.Lanes {
		for _, b := range lane.Bars {
			if b.Phase.ID == phaseID {
				return b, true
			}
		}
	}
	return Bar{}, false
}

// RowCount returns the number of bar rows across all lanes.
func (c *Chart) RowCount() int {
	n := 0
	for _, lane := range c.Lanes {
		n += len(lane.Bars)
	}
	return n
}

// Build runs the full pipeline: bounds from all records, header grid,
// filtering and grouping into lanes, per-phase geometry, then the
// dependency, critical-path, baseline and milestone overlays requested by
// the settings.
func Build(in Input) Chart {
	s := in.Settings
	bounds := ComputeBounds(BoundsInput{Projects: in.Projects, Phases: in.Phases, Milestones: in.Milestones}, s.Zoom, in.Now)
	segs := Segments(bounds, s.Zoom)

	chart := Chart{
		Settings:  s,
		Bounds:    bounds,
		Segments:  segs,
		GridLines: GridLines(bounds, s.Zoom, segs),
		Today:     TodayMarker(bounds, in.Now),
	}

	visible := FilterPhases(in.Phases, s)
	groups := GroupPhases(visible, s.GroupBy, GroupLabels{
		Projects:  projectNames(in.Projects),
		Resources: in.ResourceNames,
	})

	rows := make(map[string]int, len(visible))
	placed := make(map[string]Position, len(visible))
	row := 0
	for _, g := range groups {
		lane := Lane{Key: g.Key, Label: g.Label}
		for _, p := range g.Phases {
			bar := buildBar(p, row, bounds, s)
			if bar.Planned != nil {
				placed[p.ID] = *bar.Planned
			}
			rows[p.ID] = row
			lane.Bars = append(lane.Bars, bar)
			row++
		}
		chart.Lanes = append(chart.Lanes, lane)
	}

	if s.ShowDependencies {
		maxGap := in.MaxGapDays
		if maxGap <= 0 {
			maxGap = DefaultMaxGapDays
		}
		chart.Dependencies = InferPredecessors(visible, maxGap)
		for _, dep := range chart.Dependencies {
			from, okFrom := placed[dep.PredecessorID]
			to, okTo := placed[dep.SuccessorID]
			if !okFrom || !okTo {
				continue
			}
			if conn, ok := RouteConnector(dep, from, to, rows[dep.PredecessorID], rows[dep.SuccessorID]); ok {
				chart.Connectors = append(chart.Connectors, conn)
			}
		}
	}

	if s.ShowCriticalPath {
		if summary := AggregateCriticalPath(visible); summary.HasBadge() {
			chart.Critical = &summary
		}
	}

	if s.ShowMilestones {
		chart.Milestones = PositionMilestones(in.Milestones, bounds, in.Now)
	}

	return chart
}

func buildBar(p domain.Phase, row int, b Bounds, s domain.ViewSettings) Bar {
	bar := Bar{
		Phase:    p,
		Row:      row,
		Planned:  PositionOf(p.PlannedStart, p.PlannedEnd, b),
		Actual:   PositionOf(p.ActualStart, p.ActualEnd, b),
		Critical: s.ShowCriticalPath && p.IsCriticalPath,
	}
	if s.ShowProgress && bar.Planned != nil {
		bar.ProgressWidth = bar.Planned.Width * float64(p.CompletionPct) / 100
	}
	if s.ShowBaselines {
		bar.Baseline = PositionOf(p.BaselineStart, p.BaselineEnd, b)
		bar.Variance = CompareBaseline(p)
	}
	return bar
}

func projectNames(projects []domain.Project) map[string]string {
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names
}
