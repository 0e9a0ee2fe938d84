package domain

import (
	"fmt"
	"slices"
)

// ViewSettings configures one render pass of the timeline. It is a value:
// the With* methods return modified copies and never share filter slices
// with the receiver.
type ViewSettings struct {
	Zoom             ZoomLevel
	ShowCriticalPath bool
	ShowBaselines    bool
	ShowProgress     bool
	ShowMilestones   bool
	ShowDependencies bool
	GroupBy          GroupMode
	StatusFilter     []string
	ResourceFilter   []string
}

// DefaultViewSettings returns the settings used until the user saves their own.
func DefaultViewSettings() ViewSettings {
	return ViewSettings{
		Zoom:             ZoomWeeks,
		ShowCriticalPath: true,
		ShowBaselines:    false,
		ShowProgress:     true,
		ShowMilestones:   true,
		ShowDependencies: true,
		GroupBy:          GroupNone,
	}
}

func (v ViewSettings) Validate() error {
	if !slices.Contains(ZoomLevels, v.Zoom) {
		return fmt.Errorf("unknown zoom level %q (expected days|weeks|months|quarters)", v.Zoom)
	}
	if !slices.Contains(GroupModes, v.GroupBy) {
		return fmt.Errorf("unknown grouping mode %q (expected none|status|resource|priority)", v.GroupBy)
	}
	for _, s := range v.StatusFilter {
		if !ValidPhaseStatuses[PhaseStatus(s)] {
			return fmt.Errorf("unknown status in filter: %q", s)
		}
	}
	return nil
}

// Clone returns a copy that shares no filter slices with v.
func (v ViewSettings) Clone() ViewSettings {
	v.StatusFilter = slices.Clone(v.StatusFilter)
	v.ResourceFilter = slices.Clone(v.ResourceFilter)
	return v
}

func (v ViewSettings) WithZoom(z ZoomLevel) ViewSettings {
	c := v.Clone()
	c.Zoom = z
	return c
}

func (v ViewSettings) WithGroupBy(g GroupMode) ViewSettings {
	c := v.Clone()
	c.GroupBy = g
	return c
}

func (v ViewSettings) WithStatusFilter(statuses ...string) ViewSettings {
	c := v.Clone()
	c.StatusFilter = slices.Clone(statuses)
	return c
}

func (v ViewSettings) WithResourceFilter(resourceIDs ...string) ViewSettings {
	c := v.Clone()
	c.ResourceFilter = slices.Clone(resourceIDs)
	return c
}

// Toggle names accepted by WithToggle.
const (
	ToggleCriticalPath = "critical"
	ToggleBaselines    = "baselines"
	ToggleProgress     = "progress"
	ToggleMilestones   = "milestones"
	ToggleDependencies = "dependencies"
)

// Toggles lists the toggle names in display order.
var Toggles = []string{ToggleCriticalPath, ToggleBaselines, ToggleProgress, ToggleMilestones, ToggleDependencies}

// WithToggle returns a copy with the named overlay switched on or off.
func (v ViewSettings) WithToggle(name string, on bool) (ViewSettings, error) {
	c := v.Clone()
	switch name {
	case ToggleCriticalPath:
		c.ShowCriticalPath = on
	case ToggleBaselines:
		c.ShowBaselines = on
	case ToggleProgress:
		c.ShowProgress = on
	case ToggleMilestones:
		c.ShowMilestones = on
	case ToggleDependencies:
		c.ShowDependencies = on
	default:
		return v, fmt.Errorf("unknown toggle %q", name)
	}
	return c, nil
}

// Toggle reports whether the named overlay is on.
func (v ViewSettings) Toggle(name string) bool {
	switch name {
	case ToggleCriticalPath:
		return v.ShowCriticalPath
	case ToggleBaselines:
		return v.ShowBaselines
	case ToggleProgress:
		return v.ShowProgress
	case ToggleMilestones:
		return v.ShowMilestones
	case ToggleDependencies:
		return v.ShowDependencies
	}
	return false
}

// NextZoom and NextGroupMode cycle through the ordered option lists.
func NextZoom(z ZoomLevel) ZoomLevel {
	i := slices.Index(ZoomLevels, z)
	return ZoomLevels[(i+1)%len(ZoomLevels)]
}

func NextGroupMode(g GroupMode) GroupMode {
	i := slices.Index(GroupModes, g)
	return GroupModes[(i+1)%len(GroupModes)]
}
