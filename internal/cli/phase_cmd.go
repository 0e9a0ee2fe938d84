package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/timeline"
	"github.com/spf13/cobra"
)

func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage project phases",
	}

	cmd.AddCommand(
		newPhaseAddCmd(app),
		newPhaseListCmd(app),
		newPhaseUpdateCmd(app),
		newPhaseProgressCmd(app),
		newPhaseRemoveCmd(app),
	)

	return cmd
}

// phaseFlags holds the editable phase fields shared by add and update.
type phaseFlags struct {
	name, start, end           string
	actualStart, actualEnd     string
	status, priority, resource string
	color                      string
	duration                   int
	effort                     float64
}

func (f *phaseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Phase name")
	cmd.Flags().StringVar(&f.start, "start", "", "Planned start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "Planned end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.actualStart, "actual-start", "", "Actual start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.actualEnd, "actual-end", "", "Actual end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.status, "status", "", "Status (planned|in_progress|completed|on_hold|cancelled)")
	cmd.Flags().StringVar(&f.priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&f.resource, "resource", "", "Assigned resource name or ID (none to clear)")
	cmd.Flags().StringVar(&f.color, "color", "", "Display color override")
	cmd.Flags().IntVar(&f.duration, "duration", 0, "Duration in days (derived from the planned range when omitted)")
	cmd.Flags().Float64Var(&f.effort, "effort", 0, "Effort in hours")
}

// apply copies every changed flag onto ph. Planned dates that change
// without an explicit --duration re-derive the inclusive day count.
func (f *phaseFlags) apply(cmd *cobra.Command, app *App, ph *domain.Phase) error {
	changed := cmd.Flags().Changed
	var err error

	if changed("name") {
		ph.Name = f.name
	}
	if changed("start") {
		if ph.PlannedStart, err = domain.ParseOptionalDate(f.start); err != nil {
			return fmt.Errorf("--start: %w", err)
		}
	}
	if changed("end") {
		if ph.PlannedEnd, err = domain.ParseOptionalDate(f.end); err != nil {
			return fmt.Errorf("--end: %w", err)
		}
	}
	if changed("actual-start") {
		if ph.ActualStart, err = domain.ParseOptionalDate(f.actualStart); err != nil {
			return fmt.Errorf("--actual-start: %w", err)
		}
	}
	if changed("actual-end") {
		if ph.ActualEnd, err = domain.ParseOptionalDate(f.actualEnd); err != nil {
			return fmt.Errorf("--actual-end: %w", err)
		}
	}
	if changed("status") {
		if ph.Status, err = parsePhaseStatus(f.status); err != nil {
			return err
		}
	}
	if changed("priority") {
		if ph.Priority, err = parsePriority(f.priority); err != nil {
			return err
		}
	}
	if changed("resource") {
		if ph.ResourceID, err = resolveResourceID(cmd.Context(), app, f.resource); err != nil {
			return err
		}
	}
	if changed("color") {
		ph.Color = f.color
	}
	if changed("effort") {
		ph.EffortHours = f.effort
	}

	switch {
	case changed("duration"):
		ph.DurationDays = f.duration
	case (changed("start") || changed("end")) && ph.HasPlannedRange() && !ph.PlannedEnd.Before(*ph.PlannedStart):
		ph.DurationDays = timeline.DaysBetween(*ph.PlannedEnd, *ph.PlannedStart) + 1
	}
	return nil
}

func newPhaseAddCmd(app *App) *cobra.Command {
	var project string
	var f phaseFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a phase to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}

			ph := &domain.Phase{ProjectID: p.ID}
			if err := f.apply(cmd, app, ph); err != nil {
				return err
			}
			if err := app.Phases.Create(ctx, ph); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added phase %s (%s) to %s\n", ph.Name, formatter.TruncID(ph.ID), p.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project code or ID")
	f.register(cmd)
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPhaseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List the phases of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			phases, err := app.Phases.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}
			if len(phases) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No phases in %s.\n", p.Code)
				return nil
			}
			names, err := resourceNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatPhaseList(phases, names))
			return nil
		},
	}
}

func newPhaseUpdateCmd(app *App) *cobra.Command {
	var f phaseFlags

	cmd := &cobra.Command{
		Use:   "update PHASE",
		Short: "Edit a phase's dates, status, priority or assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ph, err := resolvePhase(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := f.apply(cmd, app, ph); err != nil {
				return err
			}
			if err := app.Phases.Update(ctx, ph); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated phase %s\n%s", ph.Name, formatter.FormatPhaseDetail(ph))
			return nil
		},
	}

	f.register(cmd)

	return cmd
}

func newPhaseProgressCmd(app *App) *cobra.Command {
	var pct int

	cmd := &cobra.Command{
		Use:   "progress PHASE",
		Short: "Record a phase's completion percentage",
		Long: `Record a phase's completion percentage and roll it up into the project.
Without --pct on an interactive terminal a short form asks for the value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ph, err := resolvePhase(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("pct") {
				if !app.interactive() {
					return fmt.Errorf("--pct is required when not running interactively")
				}
				var pctStr, startStr string
				if err := progressForm(ph, &pctStr, &startStr).Run(); err != nil {
					return err
				}
				if pct, err = strconv.Atoi(strings.TrimSpace(pctStr)); err != nil {
					return fmt.Errorf("invalid percentage %q", pctStr)
				}
				if startStr != "" {
					if ph.ActualStart, err = domain.ParseOptionalDate(startStr); err != nil {
						return err
					}
					if err := app.Phases.Update(ctx, ph); err != nil {
						return err
					}
				}
			}

			updated, err := app.Schedule.UpdateProgress(ctx, ph.ID, pct)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", updated.Name, formatter.RenderProgress(updated.CompletionPct, 20))
			return nil
		},
	}

	cmd.Flags().IntVar(&pct, "pct", 0, "Completion percentage (0-100)")

	return cmd
}

func newPhaseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PHASE",
		Short: "Delete a phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ph, err := resolvePhase(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Phases.Delete(cmd.Context(), ph.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed phase %s\n", ph.Name)
			return nil
		},
	}
}
