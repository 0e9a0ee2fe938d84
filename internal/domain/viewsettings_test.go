package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultViewSettings_Valid(t *testing.T) {
	assert.NoError(t, DefaultViewSettings().Validate())
}

func TestViewSettings_WithMethodsDoNotMutateReceiver(t *testing.T) {
	base := DefaultViewSettings().WithStatusFilter("In Progress")

	zoomed := base.WithZoom(ZoomMonths)
	grouped := base.WithGroupBy(GroupResource)
	filtered := base.WithResourceFilter("res-1")

	assert.Equal(t, ZoomWeeks, base.Zoom)
	assert.Equal(t, GroupNone, base.GroupBy)
	assert.Empty(t, base.ResourceFilter)
	assert.Equal(t, ZoomMonths, zoomed.Zoom)
	assert.Equal(t, GroupResource, grouped.GroupBy)
	assert.Equal(t, []string{"res-1"}, filtered.ResourceFilter)

	zoomed.StatusFilter[0] = "Completed"
	assert.Equal(t, "In Progress", base.StatusFilter[0], "copies must not share filter slices")
}

func TestViewSettings_WithToggle(t *testing.T) {
	base := DefaultViewSettings()
	for _, name := range Toggles {
		next, err := base.WithToggle(name, !base.Toggle(name))
		require.NoError(t, err)
		assert.NotEqual(t, base.Toggle(name), next.Toggle(name), name)
	}
	_, err := base.WithToggle("gridlines", true)
	assert.Error(t, err)
}

func TestViewSettings_ValidateRejectsUnknownValues(t *testing.T) {
	assert.Error(t, DefaultViewSettings().WithZoom("hours").Validate())
	assert.Error(t, DefaultViewSettings().WithGroupBy("color").Validate())
	assert.Error(t, DefaultViewSettings().WithStatusFilter("Blocked").Validate())
}

func TestNextZoomAndGroupCycle(t *testing.T) {
	assert.Equal(t, ZoomWeeks, NextZoom(ZoomDays))
	assert.Equal(t, ZoomDays, NextZoom(ZoomQuarters))
	assert.Equal(t, GroupStatus, NextGroupMode(GroupNone))
	assert.Equal(t, GroupNone, NextGroupMode(GroupPriority))
}
