package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// WriteText writes an aligned plain-text report: a heading per project
// followed by its phases and milestones.
func WriteText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Schedule report, %s\n", r.GeneratedAt.Format(domain.DateLayout))
	if len(r.Projects) == 0 {
		fmt.Fprintln(tw, "\nNo projects.")
	}
	for _, pr := range r.Projects {
		p := pr.Project
		fmt.Fprintf(tw, "\n%s  %s  [%s]  %d%%  target %s\n",
			p.Code, p.Name, p.Status, p.CompletionPct, domain.FormatOptionalDate(p.TargetFinish, "-"))

		if len(pr.Phases) == 0 {
			fmt.Fprintln(tw, "  (no phases)")
		} else {
			fmt.Fprintln(tw, "  PHASE\tSTATUS\tRESOURCE\tSTART\tEND\tDAYS\tDONE\tVARIANCE\tCP\t")
			for _, row := range pr.Phases {
				ph := row.Phase
				fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%d\t%d%%\t%s\t%s\t\n",
					ph.Name, ph.Status, dash(row.Resource),
					domain.FormatOptionalDate(ph.PlannedStart, "-"),
					domain.FormatOptionalDate(ph.PlannedEnd, "-"),
					ph.DurationDays, ph.CompletionPct,
					varianceText(row), flag(ph.IsCriticalPath))
			}
		}

		if len(pr.Milestones) > 0 {
			fmt.Fprintln(tw, "  MILESTONE\tTYPE\tTARGET\tACTUAL\tSTATE\t")
			for _, m := range pr.Milestones {
				fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t\n",
					m.Milestone.Name, m.Milestone.Type,
					domain.FormatOptionalDate(m.Milestone.TargetDate, "-"),
					domain.FormatOptionalDate(m.Milestone.ActualDate, "-"),
					milestoneState(m))
			}
		}
	}
	return tw.Flush()
}

func varianceText(row PhaseRow) string {
	if row.Variance == nil {
		return "-"
	}
	return fmt.Sprintf("%+dd", row.Variance.StartVarianceDays)
}

func milestoneState(m MilestoneRow) string {
	switch {
	case m.Completed && m.VarianceDays != nil:
		return fmt.Sprintf("done (%+dd)", *m.VarianceDays)
	case m.Completed:
		return "done"
	case m.Overdue:
		return "overdue"
	default:
		return "pending"
	}
}

func flag(b bool) string {
	if b {
		return "*"
	}
	return ""
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
