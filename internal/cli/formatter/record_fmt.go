package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/timeline"
)

// FormatPhaseList renders the phases of one project as a table.
func FormatPhaseList(phases []*domain.Phase, resourceNames map[string]string) string {
	headers := []string{"ID", "PHASE", "STATUS", "PRIORITY", "RESOURCE", "START", "END", "DAYS", "PROGRESS", "CP"}
	rows := make([][]string, 0, len(phases))
	for _, ph := range phases {
		resource := Dim("--")
		if ph.ResourceID != nil {
			if name, ok := resourceNames[*ph.ResourceID]; ok {
				resource = name
			}
		}
		cp := ""
		if ph.IsCriticalPath {
			cp = StyleRed.Render("★")
		}
		rows = append(rows, []string{
			TruncID(ph.ID),
			Bold(ph.Name),
			PhaseStatusPill(ph.Status),
			PriorityBadge(ph.Priority),
			resource,
			DateOrDash(ph.PlannedStart),
			DateOrDash(ph.PlannedEnd),
			FormatDays(ph.DurationDays),
			RenderProgress(ph.CompletionPct, 8),
			cp,
		})
	}
	return RenderTable(headers, rows)
}

// FormatPhaseDetail renders a single phase after a mutation.
func FormatPhaseDetail(ph *domain.Phase) string {
	var b strings.Builder
	b.WriteString(Bold(ph.Name) + "  " + PhaseStatusPill(ph.Status) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s → %s  %s\n", Dim("PLANNED "), DateOrDash(ph.PlannedStart), DateOrDash(ph.PlannedEnd), FormatDays(ph.DurationDays)))
	if ph.ActualStart != nil || ph.ActualEnd != nil {
		b.WriteString(fmt.Sprintf("%s  %s → %s\n", Dim("ACTUAL  "), DateOrDash(ph.ActualStart), DateOrDash(ph.ActualEnd)))
	}
	if ph.HasBaseline() {
		line := fmt.Sprintf("%s  %s → %s  %s", Dim("BASELINE"), DateOrDash(ph.BaselineStart), DateOrDash(ph.BaselineEnd), FormatDays(ph.BaselineDurationDays))
		if v := timeline.CompareBaseline(*ph); v != nil {
			line += "  " + FormatVariance(v.StartVarianceDays)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("PROGRESS"), RenderProgress(ph.CompletionPct, 16)))
	return b.String()
}

// FormatMilestoneList renders milestones with their completion state.
func FormatMilestoneList(milestones []*domain.Milestone, now time.Time) string {
	headers := []string{"ID", "MILESTONE", "TYPE", "TARGET", "ACTUAL", "STATE"}
	rows := make([][]string, 0, len(milestones))
	for _, m := range milestones {
		completed, overdue, variance := timeline.ClassifyMilestone(*m, now)
		state := Dim("pending")
		switch {
		case completed && variance != nil:
			state = StyleGreen.Render("done") + " " + FormatVariance(*variance)
		case completed:
			state = StyleGreen.Render("done")
		case overdue:
			state = StyleRed.Render("overdue")
		}
		name := Bold(m.Name)
		if m.IsCritical {
			name += StyleRed.Render(" ★")
		}
		rows = append(rows, []string{
			TruncID(m.ID),
			name,
			string(m.Type),
			DateOrDash(m.TargetDate),
			DateOrDash(m.ActualDate),
			state,
		})
	}
	return RenderTable(headers, rows)
}

// FormatResourceList renders resources as a table.
func FormatResourceList(resources []*domain.Resource) string {
	headers := []string{"ID", "NAME", "ROLE"}
	rows := make([][]string, 0, len(resources))
	for _, r := range resources {
		role := r.Role
		if role == "" {
			role = Dim("--")
		}
		rows = append(rows, []string{TruncID(r.ID), Bold(r.Name), role})
	}
	return RenderTable(headers, rows)
}

// FormatSettings renders view settings as a key/value list.
func FormatSettings(s domain.ViewSettings) string {
	onOff := func(b bool) string {
		if b {
			return StyleGreen.Render("on")
		}
		return Dim("off")
	}
	list := func(items []string) string {
		if len(items) == 0 {
			return Dim("all")
		}
		return strings.Join(items, ", ")
	}
	var b strings.Builder
	b.WriteString(Header("View settings") + "\n")
	b.WriteString(fmt.Sprintf("%-14s %s\n", "zoom", s.Zoom))
	b.WriteString(fmt.Sprintf("%-14s %s\n", "group", s.GroupBy))
	for _, name := range domain.Toggles {
		b.WriteString(fmt.Sprintf("%-14s %s\n", name, onOff(s.Toggle(name))))
	}
	b.WriteString(fmt.Sprintf("%-14s %s\n", "statuses", list(s.StatusFilter)))
	b.WriteString(fmt.Sprintf("%-14s %s\n", "resources", list(s.ResourceFilter)))
	return b.String()
}

// FormatCriticalPath lists the phases a recompute flagged, in order.
func FormatCriticalPath(project *domain.Project, phases []*domain.Phase, ids []string) string {
	byID := make(map[string]*domain.Phase, len(phases))
	for _, ph := range phases {
		byID[ph.ID] = ph
	}
	var b strings.Builder
	b.WriteString(Header("Critical path · "+project.DisplayID()) + "\n")
	if len(ids) == 0 {
		b.WriteString(Dim("No scheduled phases; nothing flagged.") + "\n")
		return b.String()
	}
	total := 0
	for i, id := range ids {
		ph, ok := byID[id]
		if !ok {
			continue
		}
		total += ph.DurationDays
		b.WriteString(fmt.Sprintf("%2d. %s  %s → %s  %s\n", i+1, Bold(ph.Name),
			DateOrDash(ph.PlannedStart), DateOrDash(ph.PlannedEnd), FormatDays(ph.DurationDays)))
	}
	b.WriteString(Dim(fmt.Sprintf("%d phases, %dd total", len(ids), total)) + "\n")
	return b.String()
}
