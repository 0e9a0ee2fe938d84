package timeline

import (
	"github.com/alexanderramin/groundwork/internal/domain"
)

// AtRiskCompletionPct is the average completion below which an active
// critical path is flagged at risk.
const AtRiskCompletionPct = 50.0

// CriticalPathSummary aggregates the phases flagged as critical. The flag
// itself comes from an upstream collaborator.
type CriticalPathSummary struct {
	PhaseIDs          []string
	TotalDurationDays int
	AverageCompletion float64
	AtRisk            bool
}

// HasBadge reports whether there is anything to show. No flagged phases
// means no badge, not an error.
func (s CriticalPathSummary) HasBadge() bool {
	return len(s.PhaseIDs) > 0
}

// AggregateCriticalPath sums durations and averages completion over the
// flagged phases. At risk means average completion is strictly below
// AtRiskCompletionPct while at least one flagged phase is in progress.
func AggregateCriticalPath(phases []domain.Phase) CriticalPathSummary {
	var s CriticalPathSummary
	var completionSum int
	inProgress := false
	for i := range phases {
		p := &phases[i]
		if !p.IsCriticalPath {
			continue
		}
		s.PhaseIDs = append(s.PhaseIDs, p.ID)
		s.TotalDurationDays += p.DurationDays
		completionSum += p.CompletionPct
		if p.Status == domain.PhaseInProgress {
			inProgress = true
		}
	}
	if len(s.PhaseIDs) == 0 {
		return s
	}
	s.AverageCompletion = float64(completionSum) / float64(len(s.PhaseIDs))
	s.AtRisk = s.AverageCompletion < AtRiskCompletionPct && inProgress
	return s
}

// ApplyCriticalFlags returns copies of phases whose IsCriticalPath flag is
// set exactly when the phase ID is in ids.
func ApplyCriticalFlags(phases []domain.Phase, ids []string) []domain.Phase {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	out := make([]domain.Phase, len(phases))
	for i, p := range phases {
		p.IsCriticalPath = set[p.ID]
		out[i] = p
	}
	return out
}
