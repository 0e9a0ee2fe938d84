package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the saved timeline view settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved view settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var f timelineFlags
	var clearFilters bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save new default view settings",
		Example: `  groundwork settings set --zoom months --group resource
  groundwork settings set --show baselines --hide dependencies
  groundwork settings set --status in_progress,planned
  groundwork settings set --clear-filters`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			base, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			if clearFilters {
				base = base.WithStatusFilter().WithResourceFilter()
			}
			s, err := f.settings(cmd, app, base)
			if err != nil {
				return err
			}
			if err := app.Settings.Save(ctx, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved view settings (%s).\n", strings.TrimSpace(formatter.ZoomLabel(s)))
			return nil
		},
	}

	cmd.Flags().VarP(&f.zoom, "zoom", "z", "Zoom level (days|weeks|months|quarters)")
	cmd.Flags().VarP(&f.group, "group", "g", "Group lanes by (none|status|resource|priority)")
	cmd.Flags().StringSliceVar(&f.statuses, "status", nil, "Status filter")
	cmd.Flags().StringSliceVar(&f.resources, "resource", nil, "Resource filter")
	cmd.Flags().StringSliceVar(&f.hide, "hide", nil, "Overlays to turn off")
	cmd.Flags().StringSliceVar(&f.show, "show", nil, "Overlays to turn on")
	cmd.Flags().BoolVar(&clearFilters, "clear-filters", false, "Remove the status and resource filters")

	return cmd
}
