package timeline

import (
	"testing"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMilestone_CompletedLate(t *testing.T) {
	m := domain.Milestone{ID: "m", TargetDate: datePtr(2024, 3, 1), ActualDate: datePtr(2024, 3, 5)}
	for _, now := range []time.Time{mkDate(2024, 2, 1), mkDate(2024, 3, 3), mkDate(2025, 1, 1)} {
		completed, overdue, variance := ClassifyMilestone(m, now)
		assert.True(t, completed)
		assert.False(t, overdue, "completed milestones are never overdue")
		require.NotNil(t, variance)
		assert.Equal(t, 4, *variance)
	}
}

func TestClassifyMilestone_CompletedEarlyHasNegativeVariance(t *testing.T) {
	m := domain.Milestone{ID: "m", TargetDate: datePtr(2024, 3, 10), ActualDate: datePtr(2024, 3, 7)}
	_, _, variance := ClassifyMilestone(m, testNow)
	require.NotNil(t, variance)
	assert.Equal(t, -3, *variance)
}

func TestClassifyMilestone_Overdue(t *testing.T) {
	m := domain.Milestone{ID: "m", TargetDate: datePtr(2024, 6, 14)}
	completed, overdue, variance := ClassifyMilestone(m, testNow)
	assert.False(t, completed)
	assert.True(t, overdue)
	assert.Nil(t, variance, "variance only exists for completed milestones")
}

func TestClassifyMilestone_DueTodayIsNotOverdue(t *testing.T) {
	m := domain.Milestone{ID: "m", TargetDate: datePtr(2024, 6, 15)}
	_, overdue, _ := ClassifyMilestone(m, testNow)
	assert.False(t, overdue)
}

func TestPositionMilestones_SkipsMissingTarget(t *testing.T) {
	b := fixedBounds(mkDate(2024, 1, 1), 100)
	ms := []domain.Milestone{
		{ID: "with", TargetDate: datePtr(2024, 1, 21)},
		{ID: "without", ActualDate: datePtr(2024, 1, 5)},
	}
	markers := PositionMilestones(ms, b, testNow)
	require.Len(t, markers, 1)
	assert.Equal(t, "with", markers[0].Milestone.ID)
	assert.InDelta(t, 20.0, markers[0].Left, 1e-9)
	assert.True(t, markers[0].Overdue)
}

func TestPositionMilestones_OutsideWindowIsSkipped(t *testing.T) {
	b := fixedBounds(mkDate(2024, 1, 1), 100)
	ms := []domain.Milestone{{ID: "late", TargetDate: datePtr(2025, 1, 1)}}
	assert.Empty(t, PositionMilestones(ms, b, testNow))
}
