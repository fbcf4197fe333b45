package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func evaluateCmd() *cobra.Command {
	var workplaceID, counterpartyID, itemID string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Show which assignment rule a line would match",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if counterpartyID == "" && itemID == "" {
				return fmt.Errorf("at least one of --counterparty or --item is required")
			}
			container, closeFn, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := container.Assignment.Evaluate(cmd.Context(), workplaceID, optional(counterpartyID), optional(itemID))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !result.Matched() {
				fmt.Fprintln(out, "no matching rule")
				return nil
			}
			fmt.Fprintf(out, "rule: %s\ncost center: %s\nscore: %d\nmatched: %s\n",
				*result.RuleID, *result.CostCenterID, result.Score, strings.Join(result.MatchedFields, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&workplaceID, "workplace", "", "workplace ID")
	cmd.Flags().StringVar(&counterpartyID, "counterparty", "", "counterparty ID")
	cmd.Flags().StringVar(&itemID, "item", "", "item ID")
	_ = cmd.MarkFlagRequired("workplace")
	return cmd
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
