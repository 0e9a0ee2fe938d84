package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/groundwork/internal/app"
	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	var projects []string
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a schedule report as text, CSV or TSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ids, err := resolveProjectIDs(ctx, a, projects)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			req := app.ExportRequest{ProjectIDs: ids, Format: app.ExportFormat(format), Now: a.now()}
			if err := a.Export.Export(ctx, req, w); err != nil {
				return err
			}
			if w != cmd.OutOrStdout() {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s report to %s\n", format, out)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&projects, "project", "p", nil, "Project code or ID (repeatable; default all)")
	cmd.Flags().StringVarP(&format, "format", "f", string(app.ExportText), "Output format (text|csv|tsv)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}
