package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func balanceCmd() *cobra.Command {
	var workplaceID, documentID string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print a document's ledger-derived balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, closeFn, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			balance, err := container.Payment.GetBalance(cmd.Context(), workplaceID, documentID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "document: %s\ntotal: %s\npaid: %s\nbalance: %s\nstatus: %s\n",
				balance.DocumentID, balance.Total.StringFixed(2), balance.Paid.StringFixed(2),
				balance.Balance.StringFixed(2), balance.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&workplaceID, "workplace", "", "workplace ID")
	cmd.Flags().StringVar(&documentID, "document", "", "document ID")
	_ = cmd.MarkFlagRequired("workplace")
	_ = cmd.MarkFlagRequired("document")
	return cmd
}
