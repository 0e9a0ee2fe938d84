package cli

import (
	"fmt"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/spf13/cobra"
)

func newResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage crews and subcontractors",
	}

	cmd.AddCommand(
		newResourceAddCmd(app),
		newResourceListCmd(app),
	)

	return cmd
}

func newResourceAddCmd(app *App) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Register a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &domain.Resource{Name: args[0], Role: role}
			if err := app.Resources.Create(cmd.Context(), r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created resource %s (%s)\n", r.Name, formatter.TruncID(r.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role or trade, e.g. electrical")

	return cmd
}

func newResourceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := app.Resources.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(resources) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No resources found.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatResourceList(resources))
			return nil
		},
	}
}
