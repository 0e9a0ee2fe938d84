package timeline

import (
	"slices"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// UnassignedLabel is the resource group for phases without a known resource.
const UnassignedLabel = "Unassigned"

// FilterPhases keeps a phase when it passes both the status and the
// resource filter. An empty filter accepts everything on its dimension.
func FilterPhases(phases []domain.Phase, s domain.ViewSettings) []domain.Phase {
	out := make([]domain.Phase, 0, len(phases))
	for _, p := range phases {
		if len(s.StatusFilter) > 0 && !slices.Contains(s.StatusFilter, string(p.Status)) {
			continue
		}
		if len(s.ResourceFilter) > 0 && (p.ResourceID == nil || !slices.Contains(s.ResourceFilter, *p.ResourceID)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PhaseGroup is one lane bucket.
type PhaseGroup struct {
	Key    string
	Label  string
	Phases []domain.Phase
}

// GroupLabels resolves IDs to display names for group headers.
type GroupLabels struct {
	Projects  map[string]string
	Resources map[string]string
}

// GroupPhases buckets phases by project (GroupNone), status, resource name
// or priority. Groups appear in order of their first member; callers that
// need a stable order independent of input order must sort the result.
func GroupPhases(phases []domain.Phase, mode domain.GroupMode, labels GroupLabels) []PhaseGroup {
	var groups []PhaseGroup
	index := make(map[string]int)
	for _, p := range phases {
		key, label := groupKey(p, mode, labels)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, PhaseGroup{Key: key, Label: label})
		}
		groups[i].Phases = append(groups[i].Phases, p)
	}
	return groups
}

func groupKey(p domain.Phase, mode domain.GroupMode, labels GroupLabels) (key, label string) {
	switch mode {
	case domain.GroupStatus:
		return string(p.Status), string(p.Status)
	case domain.GroupPriority:
		return string(p.Priority), string(p.Priority)
	case domain.GroupResource:
		name := UnassignedLabel
		if p.ResourceID != nil {
			if n, ok := labels.Resources[*p.ResourceID]; ok && n != "" {
				name = n
			}
		}
		return name, name
	default:
		return p.ProjectID, domain.CoalesceStr(labels.Projects[p.ProjectID], p.ProjectID)
	}
}
