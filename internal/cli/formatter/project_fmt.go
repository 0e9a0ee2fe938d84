package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ProjectInspectData holds everything the inspect card shows.
type ProjectInspectData struct {
	Project       *domain.Project
	Phases        []*domain.Phase
	Milestones    []*domain.Milestone
	ResourceNames map[string]string
	Now           time.Time
}

// FormatProjectList renders projects inside a bordered box.
func FormatProjectList(projects []*domain.Project, now time.Time) string {
	headers := []string{"CODE", "NAME", "STATUS", "DONE", "TARGET"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.DisplayID(),
			Bold(p.Name),
			ProjectStatusPill(p.Status),
			RenderProgress(p.CompletionPct, 10),
			DueStyled(p.TargetFinish, now),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectInspect renders a metadata panel beside a phase tree.
func FormatProjectInspect(data ProjectInspectData) string {
	left := projectMetadataPanel(data)
	right := projectTreePanel(data)
	return RenderBox("", lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
}

func projectMetadataPanel(data ProjectInspectData) string {
	p := data.Project
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.Name) + "\n")
	b.WriteString(StylePurple.Render(p.DisplayID()) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("STATUS"), ProjectStatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("UUID  "), TruncID(p.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("START "), DateOrDash(p.TargetStart)))
	b.WriteString(fmt.Sprintf("%s  %s  %s\n", Dim("FINISH"), DateOrDash(p.TargetFinish), DueStyled(p.TargetFinish, data.Now)))
	b.WriteString(fmt.Sprintf("\n%s\n", RenderProgress(p.CompletionPct, 16)))
	return b.String()
}

func projectTreePanel(data ProjectInspectData) string {
	items := []TreeItem{{Title: StyleHeader.Render("PHASES")}}
	if len(data.Phases) == 0 {
		items = append(items, TreeItem{Title: Dim("no phases"), Level: 1, IsLast: true})
	}
	for i, ph := range data.Phases {
		detail := fmt.Sprintf("%d%%", ph.CompletionPct)
		if ph.HasPlannedRange() {
			detail = fmt.Sprintf("%s → %s · %s", ph.PlannedStart.Format("Jan 2"), ph.PlannedEnd.Format("Jan 2"), detail)
		}
		title := ph.Name
		if ph.IsCriticalPath {
			title += StyleRed.Render(" ★")
		}
		if ph.ResourceID != nil {
			if name, ok := data.ResourceNames[*ph.ResourceID]; ok {
				title += Dim(" · " + name)
			}
		}
		items = append(items, TreeItem{
			Title:  title,
			Level:  1,
			IsLast: i == len(data.Phases)-1,
			Status: string(ph.Status),
			Detail: detail,
		})
	}

	if len(data.Milestones) > 0 {
		items = append(items, TreeItem{Title: StyleHeader.Render("MILESTONES")})
		for i, m := range data.Milestones {
			status := ""
			if m.IsCompleted() {
				status = string(domain.PhaseCompleted)
			}
			items = append(items, TreeItem{
				Title:  m.Name,
				Level:  1,
				IsLast: i == len(data.Milestones)-1,
				Status: status,
				Detail: fmt.Sprintf("%s %s", m.Type, DateOrDash(m.TargetDate)),
			})
		}
	}
	return RenderTree(items)
}
