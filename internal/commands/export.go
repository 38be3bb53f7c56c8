package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tally-finance/tally/internal/export"
)

func newExportCommand(open opener) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the data as JSON, or transactions as CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if f == export.FormatXLSX && out == "" {
				return fmt.Errorf("xlsx export needs --out")
			}
			return withSession(cmd, open, func(s *session) error {
				snap := s.store.Snapshot()
				if out == "" {
					return export.Write(cmd.OutOrStdout(), f, snap)
				}

				file, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				if err := export.Write(file, f, snap); err != nil {
					file.Close()
					return err
				}
				if err := file.Close(); err != nil {
					return fmt.Errorf("closing %s: %w", out, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d transactions to %s\n", len(snap.Transactions), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSON), "json, csv or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}
