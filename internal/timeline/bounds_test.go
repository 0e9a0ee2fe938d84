package timeline

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singlePhaseInput() BoundsInput {
	return BoundsInput{Phases: []domain.Phase{
		phase("a", planned(datePtr(2024, 1, 10), datePtr(2024, 1, 20))),
	}}
}

func TestComputeBounds_EmptyInputDefaultsToOneYearFromToday(t *testing.T) {
	b := ComputeBounds(BoundsInput{}, domain.ZoomMonths, testNow)
	assert.Equal(t, mkDate(2024, 6, 15), b.Start)
	assert.Equal(t, mkDate(2025, 6, 15), b.End)
	assert.Equal(t, 365, b.TotalDays)
}

func TestComputeBounds_Days(t *testing.T) {
	b := ComputeBounds(singlePhaseInput(), domain.ZoomDays, testNow)
	assert.Equal(t, mkDate(2024, 1, 3), b.Start)
	assert.Equal(t, mkDate(2024, 1, 27), b.End)
	assert.Equal(t, 24, b.TotalDays)
}

func TestComputeBounds_WeeksSnapToMonday(t *testing.T) {
	b := ComputeBounds(singlePhaseInput(), domain.ZoomWeeks, testNow)
	// 2024-01-10 - 14d = Wed 2023-12-27 -> Mon 2023-12-25
	// 2024-01-20 + 14d = Sat 2024-02-03 -> Mon 2024-02-05
	assert.Equal(t, mkDate(2023, 12, 25), b.Start)
	assert.Equal(t, mkDate(2024, 2, 5), b.End)
	assert.Equal(t, time.Monday, b.Start.Weekday())
	assert.Equal(t, time.Monday, b.End.Weekday())
	assert.Equal(t, 42, b.TotalDays)
}

func TestComputeBounds_MonthsSnapToFirstOfMonth(t *testing.T) {
	b := ComputeBounds(singlePhaseInput(), domain.ZoomMonths, testNow)
	assert.Equal(t, mkDate(2023, 12, 1), b.Start)
	assert.Equal(t, mkDate(2024, 3, 1), b.End)
	assert.Equal(t, 91, b.TotalDays)
}

func TestComputeBounds_QuartersSnapToQuarterStart(t *testing.T) {
	b := ComputeBounds(singlePhaseInput(), domain.ZoomQuarters, testNow)
	assert.Equal(t, mkDate(2023, 10, 1), b.Start)
	assert.Equal(t, mkDate(2024, 7, 1), b.End)
	assert.Equal(t, 274, b.TotalDays)
}

func TestComputeBounds_SingleDateStillHasPositiveSpan(t *testing.T) {
	in := BoundsInput{Milestones: []domain.Milestone{{ID: "m", TargetDate: datePtr(2024, 5, 5)}}}
	for _, zoom := range domain.ZoomLevels {
		b := ComputeBounds(in, zoom, testNow)
		assert.Greater(t, b.TotalDays, 0, "zoom=%s", zoom)
	}
	assert.Equal(t, 14, ComputeBounds(in, domain.ZoomDays, testNow).TotalDays)
}

func TestCollectDates_IncludesEveryRecordKindAndSkipsNil(t *testing.T) {
	p := phase("a", planned(datePtr(2024, 3, 1), nil))
	p.ActualStart = datePtr(2024, 3, 2)
	p.BaselineEnd = datePtr(2024, 3, 9)
	in := BoundsInput{
		Projects:   []domain.Project{{ID: "p-1", TargetFinish: datePtr(2024, 12, 31)}},
		Phases:     []domain.Phase{p},
		Milestones: []domain.Milestone{{ID: "m1", TargetDate: datePtr(2024, 6, 1)}, {ID: "m2"}},
	}
	dates := CollectDates(in)
	assert.ElementsMatch(t, []time.Time{
		mkDate(2024, 12, 31), mkDate(2024, 3, 1), mkDate(2024, 3, 2), mkDate(2024, 3, 9), mkDate(2024, 6, 1),
	}, dates)
}

func TestCollectDates_IgnoresMilestoneActualDates(t *testing.T) {
	in := BoundsInput{Milestones: []domain.Milestone{{ID: "m", ActualDate: datePtr(2030, 1, 1)}}}
	assert.Empty(t, CollectDates(in))
}

func TestComputeBounds_TimeOfDayIsIgnored(t *testing.T) {
	late := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)
	in := BoundsInput{Phases: []domain.Phase{phase("a", planned(&late, &late))}}
	b := ComputeBounds(in, domain.ZoomDays, testNow)
	assert.Equal(t, mkDate(2024, 1, 3), b.Start)
	assert.Equal(t, mkDate(2024, 1, 17), b.End)
}

// TestComputeBounds_Invariants property-tests that the window always
// contains every input date and has a positive span.
func TestComputeBounds_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	origin := mkDate(2023, 1, 1)

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(6) + 1
		var phases []domain.Phase
		for i := 0; i < n; i++ {
			s := addDays(origin, rng.Intn(900))
			e := addDays(s, rng.Intn(60))
			phases = append(phases, phase(string(rune('a'+i)), planned(&s, &e)))
		}
		in := BoundsInput{Phases: phases}
		dates := CollectDates(in)
		require.NotEmpty(t, dates)

		for _, zoom := range domain.ZoomLevels {
			b := ComputeBounds(in, zoom, testNow)
			assert.Greater(t, b.TotalDays, 0, "trial %d zoom %s", trial, zoom)
			assert.Equal(t, DaysBetween(b.End, b.Start), b.TotalDays)
			for _, d := range dates {
				assert.False(t, d.Before(b.Start), "trial %d zoom %s: %s before start %s", trial, zoom, d, b.Start)
				assert.False(t, d.After(b.LastDay()), "trial %d zoom %s: %s after last day %s", trial, zoom, d, b.LastDay())
			}
			assert.Equal(t, b, ComputeBounds(in, zoom, testNow), "bounds must be deterministic")
		}
	}
}
