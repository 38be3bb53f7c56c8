package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-finance/tally/internal/budget"
	"github.com/tally-finance/tally/internal/validate"
)

func newBudgetCommand(open opener) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Show and set category budgets",
	}
	budgetCmd.AddCommand(newBudgetListCommand(open), newBudgetSetCommand(open))
	return budgetCmd
}

func newBudgetListCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show spending against each budget",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, open, func(s *session) error {
				tw := newTable(cmd.OutOrStdout(), "CATEGORY", "SPENT", "LIMIT", "REMAINING", "USED", "STATUS")
				for _, p := range budget.ProgressOf(s.store.Budgets()) {
					status := "ok"
					if p.Over {
						status = "over by " + s.money(p.Overage)
					}
					row(tw, p.Category, s.money(p.Spent), s.money(p.Limit), s.money(p.Remaining), percent(p.Percent), status)
				}
				if err := tw.Flush(); err != nil {
					return err
				}

				limit, spent, remaining := budget.Totals(s.store.Budgets())
				fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %s of %s spent, %s remaining\n", s.money(spent), s.money(limit), s.money(remaining))
				return nil
			})
		},
	}
}

func newBudgetSetCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Change the limit of a category budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(s *session) error {
				category := args[0]
				limit, err := parseDecimal(args[1], "limit")
				if err != nil {
					return err
				}
				if err := validate.Join(validate.Limit(limit)); err != nil {
					return err
				}
				if !s.store.SetBudgetLimit(category, limit) {
					return fmt.Errorf("no budget for category %q", category)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Budget for %s set to %s\n", category, s.money(limit))
				if b, ok := budget.Find(s.store.Budgets(), category); ok {
					if b.OverBudget() {
						fmt.Fprintf(out, "Spent %s, over by %s\n", s.money(b.Spent), s.money(b.Overage()))
					} else {
						fmt.Fprintf(out, "Spent %s, %s remaining\n", s.money(b.Spent), s.money(b.Remaining()))
					}
				}
				return nil
			})
		},
	}
}
