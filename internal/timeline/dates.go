package timeline

import (
	"math"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// DaysBetween returns the signed number of whole calendar days a - b.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(domain.Day(a).Sub(domain.Day(b)).Hours() / 24))
}

func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// weekStart returns the Monday on or before t.
func weekStart(t time.Time) time.Time {
	d := domain.Day(t)
	offset := (int(d.Weekday()) + 6) % 7
	return addDays(d, -offset)
}

func monthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func quarterStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	first := time.Month((int(m)-1)/3*3 + 1)
	return time.Date(y, first, 1, 0, 0, 0, 0, time.UTC)
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// floorTo snaps t back to the start of its zoom bucket.
func floorTo(t time.Time, zoom domain.ZoomLevel) time.Time {
	switch zoom {
	case domain.ZoomWeeks:
		return weekStart(t)
	case domain.ZoomMonths:
		return monthStart(t)
	case domain.ZoomQuarters:
		return quarterStart(t)
	default:
		return domain.Day(t)
	}
}

// nextBoundary returns the first bucket boundary strictly after t.
func nextBoundary(t time.Time, zoom domain.ZoomLevel) time.Time {
	switch zoom {
	case domain.ZoomWeeks:
		return addDays(weekStart(t), 7)
	case domain.ZoomMonths:
		return monthStart(t).AddDate(0, 1, 0)
	case domain.ZoomQuarters:
		return quarterStart(t).AddDate(0, 3, 0)
	default:
		return addDays(domain.Day(t), 1)
	}
}

// ceilTo snaps t forward to a bucket boundary, leaving t unchanged when it
// already sits on one.
func ceilTo(t time.Time, zoom domain.ZoomLevel) time.Time {
	d := domain.Day(t)
	if floorTo(d, zoom).Equal(d) {
		return d
	}
	return nextBoundary(d, zoom)
}
