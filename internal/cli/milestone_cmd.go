package cli

import (
	"fmt"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/spf13/cobra"
)

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Manage project milestones",
	}

	cmd.AddCommand(
		newMilestoneAddCmd(app),
		newMilestoneListCmd(app),
		newMilestoneCompleteCmd(app),
		newMilestoneRemoveCmd(app),
	)

	return cmd
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var project, name, target, mtype, color string
	var critical bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a milestone to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}

			m := &domain.Milestone{
				ProjectID:  p.ID,
				Name:       name,
				IsCritical: critical,
				Color:      color,
			}
			if m.TargetDate, err = domain.ParseOptionalDate(target); err != nil {
				return fmt.Errorf("--target: %w", err)
			}
			if mtype != "" {
				if m.Type, err = parseMilestoneType(mtype); err != nil {
					return err
				}
			}

			if err := app.Milestones.Create(ctx, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added milestone %s (%s) to %s\n", m.Name, formatter.TruncID(m.ID), p.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project code or ID")
	cmd.Flags().StringVar(&name, "name", "", "Milestone name")
	cmd.Flags().StringVar(&target, "target", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&mtype, "type", "", "Type (delivery|review|payment|approval|start|finish)")
	cmd.Flags().StringVar(&color, "color", "", "Display color override")
	cmd.Flags().BoolVar(&critical, "critical", false, "Mark as a critical milestone")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [PROJECT...]",
		Short: "List milestones, optionally scoped to projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ids, err := resolveProjectIDs(ctx, app, args)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				projects, err := app.Projects.List(ctx)
				if err != nil {
					return err
				}
				for _, p := range projects {
					ids = append(ids, p.ID)
				}
			}
			milestones, err := app.Milestones.ListByProjects(ctx, ids)
			if err != nil {
				return err
			}
			if len(milestones) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No milestones found.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatMilestoneList(milestones, app.now()))
			return nil
		},
	}
}

func newMilestoneCompleteCmd(app *App) *cobra.Command {
	var on string

	cmd := &cobra.Command{
		Use:   "complete MILESTONE",
		Short: "Record a milestone's actual date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := resolveMilestone(ctx, app, args[0])
			if err != nil {
				return err
			}
			actual := domain.Day(app.now())
			if on != "" {
				if actual, err = domain.ParseDate(on); err != nil {
					return fmt.Errorf("--on: %w", err)
				}
			}
			done, err := app.Milestones.Complete(ctx, m.ID, actual)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed milestone %s on %s\n", done.Name, done.ActualDate.Format(domain.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Actual date (YYYY-MM-DD, default today)")

	return cmd
}

func newMilestoneRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove MILESTONE",
		Short: "Delete a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMilestone(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Milestones.Delete(cmd.Context(), m.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed milestone %s\n", m.Name)
			return nil
		},
	}
}
