package timeline

import (
	"github.com/alexanderramin/groundwork/internal/domain"
)

// DefaultMaxGapDays is the largest gap, in days, between one phase's end
// and another's start for the pair to be treated as a dependency.
const DefaultMaxGapDays = 5

// MinConnectorGapPct is the minimum horizontal run, in percent of the
// window width, that a connector needs to be drawn.
const MinConnectorGapPct = 1.0

// Dependency is an inferred predecessor relationship. Phases carry no
// explicit links, so these are probable orderings, not ground truth.
type Dependency struct {
	PredecessorID string
	SuccessorID   string
	GapDays       int
}

// InferPredecessors pairs phases of the same project where the predecessor
// Q ends on or before the successor P starts and P.start - Q.end <= maxGapDays.
// Only planned dates are considered; phases missing them never participate.
// Output follows input order: successors first, then predecessors.
func InferPredecessors(phases []domain.Phase, maxGapDays int) []Dependency {
	var deps []Dependency
	for i := range phases {
		p := &phases[i]
		if p.PlannedStart == nil {
			continue
		}
		for j := range phases {
			q := &phases[j]
			if i == j || q.ProjectID != p.ProjectID || q.PlannedEnd == nil {
				continue
			}
			gap := DaysBetween(*p.PlannedStart, *q.PlannedEnd)
			if gap < 0 || gap > maxGapDays {
				continue
			}
			deps = append(deps, Dependency{PredecessorID: q.ID, SuccessorID: p.ID, GapDays: gap})
		}
	}
	return deps
}

// Point is a connector vertex: X in percent of width, Y in lane rows.
type Point struct {
	X float64
	Y float64
}

// Connector is a three-segment orthogonal route from the predecessor's
// right edge to the successor's left edge, ending in an arrowhead at Arrow.
type Connector struct {
	Dependency
	Points [4]Point
	Arrow  Point
}

// RouteConnector builds the connector between two placed bars. Rows are
// lane indices; the route runs through the vertical centre of each row.
// It returns false when the successor does not start at least
// MinConnectorGapPct to the right of the predecessor's end.
func RouteConnector(dep Dependency, from, to Position, fromRow, toRow int) (Connector, bool) {
	x1 := from.Right()
	x2 := to.Left
	if x2-x1 < MinConnectorGapPct {
		return Connector{}, false
	}
	mid := (x1 + x2) / 2
	y1 := float64(fromRow) + 0.5
	y2 := float64(toRow) + 0.5
	return Connector{
		Dependency: dep,
		Points: [4]Point{
			{X: x1, Y: y1},
			{X: mid, Y: y1},
			{X: mid, Y: y2},
			{X: x2, Y: y2},
		},
		Arrow: Point{X: x2, Y: y2},
	}, true
}
