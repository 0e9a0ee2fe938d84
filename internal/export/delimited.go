package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// PhaseHeader is the column set of delimited exports.
var PhaseHeader = []string{
	"project", "phase", "status", "priority", "resource",
	"planned_start", "planned_end", "duration_days",
	"baseline_start", "baseline_end", "start_variance_days",
	"completion_pct", "critical",
}

// WriteDelimited writes one row per phase separated by comma. Use ',' for
// CSV and '\t' for TSV.
func WriteDelimited(w io.Writer, r Report, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(PhaseHeader); err != nil {
		return err
	}
	for _, pr := range r.Projects {
		for _, row := range pr.Phases {
			if err := cw.Write(phaseRecord(pr.Project.Code, row)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func phaseRecord(code string, row PhaseRow) []string {
	p := row.Phase
	variance := ""
	if row.Variance != nil {
		variance = strconv.Itoa(row.Variance.StartVarianceDays)
	}
	return []string{
		code,
		p.Name,
		string(p.Status),
		string(p.Priority),
		row.Resource,
		domain.FormatOptionalDate(p.PlannedStart, ""),
		domain.FormatOptionalDate(p.PlannedEnd, ""),
		strconv.Itoa(p.DurationDays),
		domain.FormatOptionalDate(p.BaselineStart, ""),
		domain.FormatOptionalDate(p.BaselineEnd, ""),
		variance,
		strconv.Itoa(p.CompletionPct),
		strconv.FormatBool(p.IsCriticalPath),
	}
}
