package cli

import (
	"fmt"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCriticalPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "critical-path PROJECT",
		Short: "Recompute and store the critical path of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			ids, err := app.Schedule.RecomputeCriticalPath(ctx, p.ID)
			if err != nil {
				return err
			}
			phases, err := app.Phases.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCriticalPath(p, phases, ids))
			return nil
		},
	}
}

func newBaselineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "baseline PROJECT",
		Short: "Snapshot every planned phase range as the project baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			n, err := app.Schedule.CreateBaseline(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Baselined %d phases of %s.\n", n, p.Code)
			return nil
		},
	}
}
