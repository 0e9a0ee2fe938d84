package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/app"
	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// viewerChrome is the number of rows outside the chart viewport: the
// title, the overlay line, the separator and the hint bar.
const viewerChrome = 4

type viewerKeyMap struct {
	Days, Weeks, Months, Quarters key.Binding
	Group                         key.Binding
	Critical, Baselines, Progress key.Binding
	Milestones, Dependencies      key.Binding
	Quit                          key.Binding
}

func defaultViewerKeys() viewerKeyMap {
	return viewerKeyMap{
		Days:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "days")),
		Weeks:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "weeks")),
		Months:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "months")),
		Quarters:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quarters")),
		Group:        key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "group")),
		Critical:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "critical")),
		Baselines:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "baselines")),
		Progress:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "progress")),
		Milestones:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "milestones")),
		Dependencies: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "deps")),
		Quit:         key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k viewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Days, k.Weeks, k.Months, k.Quarters, k.Group,
		k.Critical, k.Baselines, k.Progress, k.Milestones, k.Dependencies, k.Quit}
}

// timelineViewer is the bubbletea model behind `timeline --interactive`.
// Every settings change rebuilds the chart through the TimelineService so
// the viewer never holds derived geometry of its own.
type timelineViewer struct {
	ctx  context.Context
	app  *App
	req  app.TimelineRequest
	resp *app.TimelineResponse
	err  error

	keys   viewerKeyMap
	vp     viewport.Model
	width  int
	height int
}

func newTimelineViewer(ctx context.Context, a *App, req app.TimelineRequest) (*timelineViewer, error) {
	if req.Settings == nil {
		s, err := a.Settings.Get(ctx)
		if err != nil {
			return nil, err
		}
		req.Settings = &s
	}
	vp := viewport.New(0, 0)
	vp.KeyMap = viewerViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	v := &timelineViewer{ctx: ctx, app: a, req: req, keys: defaultViewerKeys(), vp: vp}
	if err := v.rebuild(); err != nil {
		return nil, err
	}
	return v, nil
}

// viewerViewportKeyMap leaves letter keys free for the viewer's shortcuts.
func viewerViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

func (v *timelineViewer) settings() domain.ViewSettings {
	return *v.req.Settings
}

// apply swaps in new settings and rebuilds. A failed build keeps the
// previous chart and settings on screen and reports the error.
func (v *timelineViewer) apply(s domain.ViewSettings) {
	prev := v.req.Settings
	v.req.Settings = &s
	if err := v.rebuild(); err != nil {
		v.req.Settings = prev
	}
}

func (v *timelineViewer) rebuild() error {
	resp, err := v.app.Timeline.Build(v.ctx, v.req)
	v.err = err
	if err != nil {
		return err
	}
	v.resp = resp
	v.refreshContent()
	return nil
}

func (v *timelineViewer) chartWidth() int {
	if v.width == 0 {
		return formatter.DefaultGanttWidth
	}
	return max(v.width-formatter.DefaultLabelWidth-1, 20)
}

func (v *timelineViewer) refreshContent() {
	if v.resp == nil {
		return
	}
	v.vp.SetContent(formatter.RenderGantt(v.resp.Chart, formatter.GanttOptions{Width: v.chartWidth()}))
}

func (v *timelineViewer) Init() tea.Cmd {
	return nil
}

func (v *timelineViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.vp.Width = msg.Width
		v.vp.Height = max(msg.Height-viewerChrome, 1)
		v.refreshContent()
		return v, nil

	case tea.KeyMsg:
		if cmd, handled := v.handleKey(msg); handled {
			return v, cmd
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *timelineViewer) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := v.settings()
	switch {
	case key.Matches(msg, v.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, v.keys.Days):
		v.apply(s.WithZoom(domain.ZoomDays))
	case key.Matches(msg, v.keys.Weeks):
		v.apply(s.WithZoom(domain.ZoomWeeks))
	case key.Matches(msg, v.keys.Months):
		v.apply(s.WithZoom(domain.ZoomMonths))
	case key.Matches(msg, v.keys.Quarters):
		v.apply(s.WithZoom(domain.ZoomQuarters))
	case key.Matches(msg, v.keys.Group):
		v.apply(s.WithGroupBy(domain.NextGroupMode(s.GroupBy)))
	case key.Matches(msg, v.keys.Critical):
		v.flip(domain.ToggleCriticalPath)
	case key.Matches(msg, v.keys.Baselines):
		v.flip(domain.ToggleBaselines)
	case key.Matches(msg, v.keys.Progress):
		v.flip(domain.ToggleProgress)
	case key.Matches(msg, v.keys.Milestones):
		v.flip(domain.ToggleMilestones)
	case key.Matches(msg, v.keys.Dependencies):
		v.flip(domain.ToggleDependencies)
	default:
		return nil, false
	}
	return nil, true
}

func (v *timelineViewer) flip(name string) {
	s := v.settings()
	next, err := s.WithToggle(name, !s.Toggle(name))
	if err != nil {
		v.err = err
		return
	}
	v.apply(next)
}

func (v *timelineViewer) View() string {
	var b strings.Builder
	if v.resp != nil {
		b.WriteString(chartTitle(v.resp) + "\n")
	}
	b.WriteString(overlayLine(v.settings()) + "\n")
	b.WriteString(v.vp.View() + "\n")

	sep := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render(strings.Repeat("─", max(v.width, 20)))
	b.WriteString(sep + "\n")
	b.WriteString(v.hintBar())
	return b.String()
}

// overlayLine shows which overlays are on.
func overlayLine(s domain.ViewSettings) string {
	parts := make([]string, 0, len(domain.Toggles))
	for _, name := range domain.Toggles {
		if s.Toggle(name) {
			parts = append(parts, formatter.StyleGreen.Render("● "+name))
		} else {
			parts = append(parts, formatter.Dim("○ "+name))
		}
	}
	return strings.Join(parts, "  ")
}

func (v *timelineViewer) hintBar() string {
	if v.err != nil {
		return formatter.StyleRed.Render("error: " + v.err.Error())
	}
	hints := make([]string, 0, len(v.keys.ShortHelp())+1)
	for _, b := range v.keys.ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	hints = append(hints, scrollIndicator(v.vp))
	return strings.Join(hints, "  ")
}

// scrollIndicator returns a dim scroll position string for the hint bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}
