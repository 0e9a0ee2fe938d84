package cli

import (
	"time"

	"github.com/alexanderramin/groundwork/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects   service.ProjectService
	Resources  service.ResourceService
	Phases     service.PhaseService
	Milestones service.MilestoneService
	Settings   service.SettingsService
	Timeline   service.TimelineService
	Schedule   service.ScheduleService
	Export     service.ExportService
	Import     service.ImportService

	// IsInteractive reports whether prompts and the chart viewer may take
	// over the terminal. Nil means never.
	IsInteractive func() bool
	// Now is the reference clock for relative dates. Nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now().UTC()
	}
	return time.Now().UTC()
}

// NewRootCmd creates the top-level "groundwork" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "groundwork",
		Short:         "Construction schedule planner with a terminal Gantt chart",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newResourceCmd(app),
		newPhaseCmd(app),
		newMilestoneCmd(app),
		newTimelineCmd(app),
		newSettingsCmd(app),
		newCriticalPathCmd(app),
		newBaselineCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
