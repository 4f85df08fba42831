package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coinfolio-dev/coinfolio/internal/holdings"
)

func newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the portfolio as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workingDir()
			if err != nil {
				return err
			}

			proj, err := openProject(dir)
			if err != nil {
				return err
			}

			csv := holdings.ExportCSV(proj.Store.Snapshot())
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), csv)
				return nil
			}
			if err := os.WriteFile(out, []byte(csv), 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Printf("Exported %d holding(s) to %s\n", proj.Store.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write to a file instead of stdout")

	return cmd
}

func newTemplateCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print an example import CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			csv := holdings.TemplateCSV()
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), csv)
				return nil
			}
			if err := os.WriteFile(out, []byte(csv), 0o644); err != nil {
				return fmt.Errorf("writing template: %w", err)
			}
			fmt.Printf("Wrote template to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write to a file instead of stdout")

	return cmd
}

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show portfolio totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workingDir()
			if err != nil {
				return err
			}

			proj, err := openProject(dir)
			if err != nil {
				return err
			}

			snap := proj.Store.Snapshot()
			s := holdings.Summarize(snap)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Holdings:   %d\n", len(snap))
			fmt.Fprintf(w, "Value:      %.2f\n", s.TotalValue)
			fmt.Fprintf(w, "Change 24h: %.2f (%.2f%%)\n", s.TotalChange24h, s.TotalChangePercent24h)
			return nil
		},
	}
}
