package service

import (
	"context"
	"sort"

	"github.com/alexanderramin/groundwork/internal/app"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/timeline"
)

// chainCriticalPathProvider treats the inferred dependency graph as the
// project network and reports its longest chain by duration.
type chainCriticalPathProvider struct {
	phases     repository.PhaseRepo
	maxGapDays int
}

func NewChainCriticalPathProvider(phases repository.PhaseRepo, maxGapDays int) app.CriticalPathProvider {
	if maxGapDays <= 0 {
		maxGapDays = timeline.DefaultMaxGapDays
	}
	return &chainCriticalPathProvider{phases: phases, maxGapDays: maxGapDays}
}

func (p *chainCriticalPathProvider) ComputeCriticalPath(ctx context.Context, projectID string) ([]string, error) {
	list, err := p.phases.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var scheduled []domain.Phase
	for _, ph := range list {
		if ph.HasPlannedRange() && ph.Status != domain.PhaseCancelled {
			scheduled = append(scheduled, *ph)
		}
	}
	return LongestChain(scheduled, p.maxGapDays), nil
}

// LongestChain returns the IDs, in chronological order, of the chain of
// inferred dependencies with the greatest total duration. Phases are
// visited by planned start; an edge only counts when its predecessor sorts
// earlier, which keeps zero-length phases from forming cycles.
func LongestChain(phases []domain.Phase, maxGapDays int) []string {
	if len(phases) == 0 {
		return nil
	}
	order := make([]int, len(phases))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := phases[order[a]], phases[order[b]]
		if !pa.PlannedStart.Equal(*pb.PlannedStart) {
			return pa.PlannedStart.Before(*pb.PlannedStart)
		}
		return pa.PlannedEnd.Before(*pb.PlannedEnd)
	})
	rank := make(map[string]int, len(phases))
	for r, i := range order {
		rank[phases[i].ID] = r
	}

	preds := make(map[string][]string)
	for _, d := range timeline.InferPredecessors(phases, maxGapDays) {
		if rank[d.PredecessorID] < rank[d.SuccessorID] {
			preds[d.SuccessorID] = append(preds[d.SuccessorID], d.PredecessorID)
		}
	}

	best := make(map[string]int, len(phases))
	prev := make(map[string]string, len(phases))
	tail := ""
	for _, i := range order {
		ph := phases[i]
		total := phaseDays(ph)
		for _, q := range preds[ph.ID] {
			if best[q]+phaseDays(ph) > total {
				total = best[q] + phaseDays(ph)
				prev[ph.ID] = q
			}
		}
		best[ph.ID] = total
		if tail == "" || total > best[tail] {
			tail = ph.ID
		}
	}

	var chain []string
	for id := tail; id != ""; id = prev[id] {
		chain = append(chain, id)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func phaseDays(p domain.Phase) int {
	if p.DurationDays > 0 {
		return p.DurationDays
	}
	return timeline.DaysBetween(*p.PlannedEnd, *p.PlannedStart) + 1
}
