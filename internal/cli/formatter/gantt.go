package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/timeline"
	"github.com/charmbracelet/lipgloss"
)

// Gantt glyphs.
const (
	glyphPlanned   = "░"
	glyphDone      = "█"
	glyphActual    = "▪"
	glyphBaseline  = "─"
	glyphToday     = "│"
	glyphGrid      = "·"
	glyphMilestone = "◆"
)

const (
	DefaultGanttWidth = 60
	DefaultLabelWidth = 22
)

// GanttOptions sizes the rendering. Zero values use the defaults.
type GanttOptions struct {
	Width      int
	LabelWidth int
}

func (o GanttOptions) withDefaults() GanttOptions {
	if o.Width <= 0 {
		o.Width = DefaultGanttWidth
	}
	if o.LabelWidth <= 0 {
		o.LabelWidth = DefaultLabelWidth
	}
	return o
}

type cell struct {
	ch    string
	style *lipgloss.Style
}

// track is one character row of the chart area.
type track []cell

func newTrack(width int) track {
	t := make(track, width)
	for i := range t {
		t[i].ch = " "
	}
	return t
}

func (t track) fill(from, to int, ch string, style lipgloss.Style) {
	for i := max(from, 0); i < min(to, len(t)); i++ {
		t[i] = cell{ch: ch, style: &style}
	}
}

func (t track) set(col int, ch string, style lipgloss.Style) {
	if col >= 0 && col < len(t) {
		t[col] = cell{ch: ch, style: &style}
	}
}

// setIfBlank draws only on untouched cells so markers never hide bars.
func (t track) setIfBlank(col int, ch string, style lipgloss.Style) {
	if col >= 0 && col < len(t) && t[col].style == nil {
		t[col] = cell{ch: ch, style: &style}
	}
}

func (t track) String() string {
	var b strings.Builder
	for _, c := range t {
		if c.style == nil {
			b.WriteString(c.ch)
			continue
		}
		b.WriteString(c.style.Render(c.ch))
	}
	return b.String()
}

// span converts a percent position to a half-open column range. Every
// drawable position occupies at least one column.
func span(p timeline.Position, width int) (int, int) {
	from := col(p.Left, width)
	to := col(p.Right(), width)
	if to <= from {
		to = from + 1
	}
	if from >= width {
		from, to = width-1, width
	}
	return from, to
}

func col(pct float64, width int) int {
	return int(math.Round(pct / 100 * float64(width)))
}

// RenderGantt draws a chart built by timeline.Build as terminal rows: a
// header of zoom segments, one row per phase grouped into lanes, optional
// actual and baseline sub-rows, a milestone row, and the dependency and
// critical path summaries.
func RenderGantt(c timeline.Chart, opts GanttOptions) string {
	opts = opts.withDefaults()
	w, lw := opts.Width, opts.LabelWidth
	pad := strings.Repeat(" ", lw+1)

	var b strings.Builder
	b.WriteString(pad + renderSegmentHeader(c.Segments, w) + "\n")
	b.WriteString(pad + Dim(strings.Repeat("─", w)) + "\n")

	if c.RowCount() == 0 {
		b.WriteString(Dim("No phases to show.") + "\n")
	}

	for _, lane := range c.Lanes {
		b.WriteString(StyleHeader.Render(truncate(lane.Label, lw+w)) + "\n")
		for _, bar := range lane.Bars {
			b.WriteString(renderBarRows(c, bar, w, lw))
		}
	}

	if c.Settings.ShowMilestones && len(c.Milestones) > 0 {
		b.WriteString(renderMilestones(c, w, lw))
	}
	if c.Settings.ShowDependencies && len(c.Dependencies) > 0 {
		b.WriteString(renderDependencies(c))
	}
	if c.Critical != nil {
		b.WriteString(RenderCriticalBadge(*c.Critical) + "\n")
	}
	return b.String()
}

func renderSegmentHeader(segs []timeline.Segment, width int) string {
	line := []rune(strings.Repeat(" ", width))
	next := 0
	for _, seg := range segs {
		start := col(seg.Left, width)
		label := []rune(seg.Label)
		if start < next || start+len(label) > width {
			continue
		}
		copy(line[start:], label)
		next = start + len(label) + 1
	}
	return StyleBold.Render(string(line))
}

func baseTrack(c timeline.Chart, width int) track {
	t := newTrack(width)
	for _, g := range c.GridLines {
		if g.Major && g.Left < 100 {
			t.set(col(g.Left, width), glyphGrid, StyleDim)
		}
	}
	return t
}

func markToday(c timeline.Chart, t track, width int) {
	if c.Today != nil {
		from, _ := span(*c.Today, width)
		t.setIfBlank(from, glyphToday, StyleYellow)
	}
}

func renderBarRows(c timeline.Chart, bar timeline.Bar, w, lw int) string {
	ph := bar.Phase
	var b strings.Builder

	main := baseTrack(c, w)
	style := PhaseStatusStyle(ph.Status)
	if bar.Critical {
		style = StyleRed
	}
	if bar.Planned != nil {
		from, to := span(*bar.Planned, w)
		main.fill(from, to, glyphPlanned, style)
		if bar.ProgressWidth > 0 {
			done := from + col(bar.ProgressWidth, w)
			main.fill(from, min(done, to), glyphDone, style)
		}
	}
	markToday(c, main, w)

	label := fmt.Sprintf("%-*s", lw, truncate(ph.Name, lw))
	if bar.Critical {
		label = StyleRedBold.Render(label)
	}
	suffix := ""
	if c.Settings.ShowProgress {
		suffix = fmt.Sprintf(" %3d%%", ph.CompletionPct)
	}
	if bar.Planned == nil {
		suffix += " " + Dim("unscheduled")
	}
	b.WriteString(label + " " + main.String() + suffix + "\n")

	if bar.Actual != nil {
		t := newTrack(w)
		from, to := span(*bar.Actual, w)
		t.fill(from, to, glyphActual, StyleBlue)
		b.WriteString(Dim(fmt.Sprintf("%-*s", lw, "  actual")) + " " + t.String() + "\n")
	}
	if bar.Baseline != nil {
		t := newTrack(w)
		from, to := span(*bar.Baseline, w)
		t.fill(from, to, glyphBaseline, StyleDim)
		note := ""
		if bar.Variance != nil {
			note = " " + FormatVariance(bar.Variance.StartVarianceDays)
			if bar.Variance.Change != timeline.DurationUnchanged {
				note += Dim(fmt.Sprintf(" %s %+dd", bar.Variance.Change, bar.Variance.DurationVarianceDays))
			}
		}
		b.WriteString(Dim(fmt.Sprintf("%-*s", lw, "  baseline")) + " " + t.String() + note + "\n")
	}
	return b.String()
}

func renderMilestones(c timeline.Chart, w, lw int) string {
	var b strings.Builder
	t := baseTrack(c, w)
	for _, m := range c.Milestones {
		t.set(col(m.Left, w), glyphMilestone, milestoneStyle(m))
	}
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%-*s", lw, "Milestones")) + " " + t.String() + "\n")
	for _, m := range c.Milestones {
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			milestoneStyle(m).Render(glyphMilestone),
			m.Milestone.Name,
			Dim(DateOrDash(m.Milestone.TargetDate)),
			milestoneState(m)))
	}
	return b.String()
}

func milestoneStyle(m timeline.MilestoneMarker) lipgloss.Style {
	switch {
	case m.Completed:
		return StyleGreen
	case m.Overdue:
		return StyleRed
	case m.Milestone.IsCritical:
		return StylePurple
	default:
		return StyleBlue
	}
}

func milestoneState(m timeline.MilestoneMarker) string {
	switch {
	case m.Completed && m.VarianceDays != nil:
		return StyleGreen.Render("done") + " " + FormatVariance(*m.VarianceDays)
	case m.Completed:
		return StyleGreen.Render("done")
	case m.Overdue:
		return StyleRed.Render("overdue")
	default:
		return Dim("pending")
	}
}

func renderDependencies(c timeline.Chart) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Dependencies") + "\n")
	for _, d := range c.Dependencies {
		from, _ := c.Bar(d.PredecessorID)
		to, _ := c.Bar(d.SuccessorID)
		b.WriteString(fmt.Sprintf("  %s → %s %s\n", from.Phase.Name, to.Phase.Name, Dim(fmt.Sprintf("(gap %dd)", d.GapDays))))
	}
	return b.String()
}

// RenderCriticalBadge summarizes the flagged phases, highlighting an
// at-risk path.
func RenderCriticalBadge(s timeline.CriticalPathSummary) string {
	text := fmt.Sprintf("Critical path: %d phases, %dd, %.0f%% complete",
		len(s.PhaseIDs), s.TotalDurationDays, s.AverageCompletion)
	if s.AtRisk {
		return StyleRedBold.Render("▲ "+text) + " " + StyleRed.Render("AT RISK")
	}
	return StylePurple.Render("● " + text)
}

// RenderLegend lists the glyphs used by RenderGantt.
func RenderLegend() string {
	items := []string{
		glyphPlanned + " planned",
		glyphDone + " done",
		glyphActual + " actual",
		glyphBaseline + " baseline",
		StyleYellow.Render(glyphToday) + " today",
		glyphMilestone + " milestone",
	}
	return Dim(strings.Join(items, "   "))
}

// ZoomLabel names the zoom level and grouping for the viewer status line.
func ZoomLabel(s domain.ViewSettings) string {
	return fmt.Sprintf("zoom %s · group %s", s.Zoom, s.GroupBy)
}
