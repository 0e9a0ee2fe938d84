package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/app"
	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// timelineFlags are the per-invocation overrides of the saved view settings.
type timelineFlags struct {
	projects    []string
	zoom        zoomValue
	group       groupValue
	statuses    []string
	resources   []string
	hide        []string
	show        []string
	today       string
	interactive bool
	width       int
}

// settings layers the flags over base. Only flags the user passed change
// anything, so saved settings stay in effect otherwise.
func (f *timelineFlags) settings(cmd *cobra.Command, a *App, base domain.ViewSettings) (domain.ViewSettings, error) {
	s := base.Clone()
	if f.zoom.set {
		s = s.WithZoom(f.zoom.val)
	}
	if f.group.set {
		s = s.WithGroupBy(f.group.val)
	}
	if cmd.Flags().Changed("status") {
		statuses, err := parseStatusList(f.statuses)
		if err != nil {
			return s, err
		}
		s = s.WithStatusFilter(statuses...)
	}
	if cmd.Flags().Changed("resource") {
		ids := make([]string, 0, len(f.resources))
		for _, ref := range f.resources {
			r, err := a.Resources.Resolve(cmd.Context(), ref)
			if err != nil {
				return s, err
			}
			ids = append(ids, r.ID)
		}
		s = s.WithResourceFilter(ids...)
	}
	var err error
	for _, name := range f.show {
		if s, err = s.WithToggle(strings.ToLower(name), true); err != nil {
			return s, err
		}
	}
	for _, name := range f.hide {
		if s, err = s.WithToggle(strings.ToLower(name), false); err != nil {
			return s, err
		}
	}
	return s, s.Validate()
}

func newTimelineCmd(a *App) *cobra.Command {
	var f timelineFlags

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Draw the Gantt chart",
		Long: `Draw the Gantt chart for one or more projects.

Flags override the saved view settings for this run only; use
"groundwork settings set" to change the defaults.`,
		Example: `  groundwork timeline --project BLD-042 --zoom months
  groundwork timeline --group resource --hide dependencies
  groundwork timeline --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ids, err := resolveProjectIDs(ctx, a, f.projects)
			if err != nil {
				return err
			}
			base, err := a.Settings.Get(ctx)
			if err != nil {
				return err
			}
			settings, err := f.settings(cmd, a, base)
			if err != nil {
				return err
			}
			now := a.now()
			if f.today != "" {
				if now, err = domain.ParseDate(f.today); err != nil {
					return fmt.Errorf("--today: %w", err)
				}
			}

			req := app.TimelineRequest{ProjectIDs: ids, Settings: &settings, Now: now}

			if f.interactive {
				if !a.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				viewer, err := newTimelineViewer(ctx, a, req)
				if err != nil {
					return err
				}
				_, err = tea.NewProgram(viewer, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
				return err
			}

			resp, err := a.Timeline.Build(ctx, req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", chartTitle(resp))
			fmt.Fprint(out, formatter.RenderGantt(resp.Chart, formatter.GanttOptions{Width: f.width}))
			fmt.Fprintf(out, "\n%s\n", formatter.RenderLegend())
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&f.projects, "project", "p", nil, "Project code or ID (repeatable; default all)")
	cmd.Flags().VarP(&f.zoom, "zoom", "z", "Zoom level (days|weeks|months|quarters)")
	cmd.Flags().VarP(&f.group, "group", "g", "Group lanes by (none|status|resource|priority)")
	cmd.Flags().StringSliceVar(&f.statuses, "status", nil, "Only show phases with these statuses")
	cmd.Flags().StringSliceVar(&f.resources, "resource", nil, "Only show phases assigned to these resources")
	cmd.Flags().StringSliceVar(&f.hide, "hide", nil, "Hide overlays (critical|baselines|progress|milestones|dependencies)")
	cmd.Flags().StringSliceVar(&f.show, "show", nil, "Show overlays (critical|baselines|progress|milestones|dependencies)")
	cmd.Flags().StringVar(&f.today, "today", "", "Reference date for the today marker (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "Open the interactive chart viewer")
	cmd.Flags().IntVarP(&f.width, "width", "w", formatter.DefaultGanttWidth, "Chart width in columns")

	return cmd
}

// chartTitle names the projects in scope and the active zoom and grouping.
func chartTitle(resp *app.TimelineResponse) string {
	codes := make([]string, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		codes = append(codes, p.DisplayID())
	}
	scope := "no projects"
	if len(codes) > 0 {
		scope = strings.Join(codes, ", ")
	}
	return formatter.Header("Timeline · "+scope) + "  " + formatter.Dim(formatter.ZoomLabel(resp.Chart.Settings))
}
