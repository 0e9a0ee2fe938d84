package timeline

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// Segment is one header bucket. End is the last day inside the bucket.
type Segment struct {
	Start    time.Time
	End      time.Time
	Label    string
	Sublabel string
	Position
}

// Days returns the number of calendar days in the segment.
func (s Segment) Days() int {
	return DaysBetween(s.End, s.Start) + 1
}

// GridLine is a vertical rule. Major lines sit on segment boundaries;
// minor lines subdivide weeks into days.
type GridLine struct {
	Date  time.Time
	Left  float64
	Major bool
}

// Segments partitions the window into ordered, gap-free buckets for zoom.
// The first and last bucket are truncated to the window when the window is
// not aligned to the zoom level.
func Segments(b Bounds, zoom domain.ZoomLevel) []Segment {
	var segs []Segment
	for cur := b.Start; cur.Before(b.End); {
		next := nextBoundary(cur, zoom)
		if next.After(b.End) {
			next = b.End
		}
		last := addDays(next, -1)
		label, sub := segmentLabels(cur, zoom)
		seg := Segment{Start: cur, End: last, Label: label, Sublabel: sub}
		if pos := positionDays(cur, last, b); pos != nil {
			seg.Position = *pos
		}
		segs = append(segs, seg)
		cur = next
	}
	return segs
}

func segmentLabels(start time.Time, zoom domain.ZoomLevel) (string, string) {
	switch zoom {
	case domain.ZoomWeeks:
		_, week := start.ISOWeek()
		return start.Format("Jan 2"), fmt.Sprintf("W%02d", week)
	case domain.ZoomMonths:
		return start.Format("Jan 2006"), ""
	case domain.ZoomQuarters:
		return fmt.Sprintf("Q%d %d", quarterOf(start), start.Year()), ""
	default:
		return strconv.Itoa(start.Day()), start.Format("Mon")
	}
}

// GridLines emits a major line on every segment boundary, including the
// closing edge at 100%. In weeks mode each week also gets a minor line on
// every day after its first.
func GridLines(b Bounds, zoom domain.ZoomLevel, segs []Segment) []GridLine {
	lines := make([]GridLine, 0, len(segs)+1)
	for _, seg := range segs {
		lines = append(lines, GridLine{Date: seg.Start, Left: seg.Left, Major: true})
		if zoom != domain.ZoomWeeks {
			continue
		}
		for d := addDays(seg.Start, 1); !d.After(seg.End); d = addDays(d, 1) {
			lines = append(lines, GridLine{Date: d, Left: dayLeft(d, b), Major: false})
		}
	}
	if len(segs) > 0 {
		lines = append(lines, GridLine{Date: b.End, Left: 100, Major: true})
	}
	return lines
}

func dayLeft(d time.Time, b Bounds) float64 {
	return float64(DaysBetween(d, b.Start)) / float64(b.TotalDays) * 100
}

// TodayMarker positions the current day, or nil when today is outside the window.
func TodayMarker(b Bounds, now time.Time) *Position {
	today := domain.Day(now)
	return PositionOf(&today, &today, b)
}
