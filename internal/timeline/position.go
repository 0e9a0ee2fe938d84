package timeline

import (
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// Position is a horizontal placement in percent of the window width.
type Position struct {
	Left  float64
	Width float64
}

// Right returns the right edge of the position.
func (p Position) Right() float64 {
	return p.Left + p.Width
}

// PositionOf maps an inclusive day range onto the window. It returns nil
// when either date is absent or when a well-formed range lies entirely
// outside the window. Ranges that overhang the window are clipped first.
//
// A range whose end precedes its start is not rejected here: it maps to a
// zero or negative width. Import and service validation reject such records
// before they reach the engine.
func PositionOf(start, end *time.Time, b Bounds) *Position {
	if start == nil || end == nil {
		return nil
	}
	return positionDays(domain.Day(*start), domain.Day(*end), b)
}

func positionDays(s, e time.Time, b Bounds) *Position {
	last := b.LastDay()
	if !e.Before(s) && (e.Before(b.Start) || s.After(last)) {
		return nil
	}
	if s.Before(b.Start) {
		s = b.Start
	}
	if e.After(last) {
		e = last
	}

	total := float64(b.TotalDays)
	left := float64(max(0, DaysBetween(s, b.Start))) / total * 100
	width := float64(DaysBetween(e, s)+1) / total * 100
	return &Position{Left: left, Width: width}
}

// PointOf places a single day, returning the left edge of that day.
func PointOf(t *time.Time, b Bounds) *float64 {
	pos := PositionOf(t, t, b)
	if pos == nil {
		return nil
	}
	return &pos.Left
}
