package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/spf13/pflag"
)

// zoomValue and groupValue validate enum flags at parse time so a typo
// fails before any store access.
type zoomValue struct {
	set bool
	val domain.ZoomLevel
}

var _ pflag.Value = (*zoomValue)(nil)

func (z *zoomValue) String() string { return string(z.val) }
func (z *zoomValue) Type() string   { return "zoom" }

func (z *zoomValue) Set(s string) error {
	lvl := domain.ZoomLevel(strings.ToLower(s))
	if !slices.Contains(domain.ZoomLevels, lvl) {
		return fmt.Errorf("must be one of %s", joinEnum(domain.ZoomLevels))
	}
	z.val, z.set = lvl, true
	return nil
}

type groupValue struct {
	set bool
	val domain.GroupMode
}

var _ pflag.Value = (*groupValue)(nil)

func (g *groupValue) String() string { return string(g.val) }
func (g *groupValue) Type() string   { return "group" }

func (g *groupValue) Set(s string) error {
	mode := domain.GroupMode(strings.ToLower(s))
	if !slices.Contains(domain.GroupModes, mode) {
		return fmt.Errorf("must be one of %s", joinEnum(domain.GroupModes))
	}
	g.val, g.set = mode, true
	return nil
}

func joinEnum[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, "|")
}

// parsePhaseStatus accepts either the display form ("In Progress") or a
// snake/kebab form ("in_progress", "in-progress").
func parsePhaseStatus(s string) (domain.PhaseStatus, error) {
	norm := strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(strings.TrimSpace(s)))
	for st := range domain.ValidPhaseStatuses {
		if strings.ToLower(string(st)) == norm {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown phase status %q", s)
}

func parsePriority(s string) (domain.Priority, error) {
	for p := range domain.ValidPriorities {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q (expected low|medium|high|critical)", s)
}

func parseProjectStatus(s string) (domain.ProjectStatus, error) {
	st := domain.ProjectStatus(strings.ReplaceAll(strings.ToLower(s), "-", "_"))
	if !domain.ValidProjectStatuses[st] {
		return "", fmt.Errorf("unknown project status %q", s)
	}
	return st, nil
}

func parseMilestoneType(s string) (domain.MilestoneType, error) {
	mt := domain.MilestoneType(strings.ToLower(s))
	if !domain.ValidMilestoneTypes[mt] {
		return "", fmt.Errorf("unknown milestone type %q", s)
	}
	return mt, nil
}

// parseStatusList turns a --status flag into display-form statuses.
func parseStatusList(vals []string) ([]string, error) {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		st, err := parsePhaseStatus(v)
		if err != nil {
			return nil, err
		}
		out = append(out, string(st))
	}
	return out, nil
}
