package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func reconcileCmd() *cobra.Command {
	var workplaceID string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Repair document paid amounts and statuses from the payment ledger",
		Long: `Scans payable invoices and bills, recomputes their paid amount from the ledger
and rewrites documents whose cached fields drifted. Without --workplace every
workplace is scanned.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, closeFn, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			var bar *progressbar.ProgressBar
			progress := func(done, total int) {
				if bar == nil {
					bar = progressbar.NewOptions(total,
						progressbar.OptionSetWriter(os.Stderr),
						progressbar.OptionShowCount(),
						progressbar.OptionShowElapsedTimeOnFinish(),
						progressbar.OptionSetWidth(40),
						progressbar.OptionSetDescription("Reconciling documents"),
						progressbar.OptionOnCompletion(func() {
							fmt.Fprintln(os.Stderr)
						}),
					)
				}
				if err := bar.Set(done); err != nil {
					slog.Warn("Failed to update progress bar", "error", err)
				}
			}

			report, err := container.Payment.Reconcile(cmd.Context(), workplaceID, progress)
			if err != nil {
				return fmt.Errorf("reconciliation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scanned: %d\nrepaired: %d\nfailed: %d\n", report.Scanned, report.Repaired, report.Failed)
			for _, id := range report.Repairs {
				fmt.Fprintf(out, "  repaired %s\n", id)
			}
			if report.Failed > 0 {
				return fmt.Errorf("%d documents could not be reconciled", report.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&workplaceID, "workplace", "", "limit the pass to one workplace")
	return cmd
}
