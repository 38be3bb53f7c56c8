package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-finance/tally/internal/summary"
)

func newSummaryCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:     "summary",
		Aliases: []string{"dashboard"},
		Short:   "Show this month's totals, budgets, goals and recent activity",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, open, func(s *session) error {
				d := summary.Build(summary.Input{
					Transactions: s.store.Transactions(),
					Budgets:      s.store.Budgets(),
					Goals:        s.store.Goals(),
					Achievements: s.store.Achievements(),
				}, s.now())

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s\n", d.Month.Label)
				fmt.Fprintf(out, "  Income:    %s\n", s.money(d.Month.Income))
				fmt.Fprintf(out, "  Expenses:  %s\n", s.money(d.Month.Expenses))
				fmt.Fprintf(out, "  Balance:   %s\n", s.money(d.Month.Balance()))
				fmt.Fprintf(out, "Budget:      %s of %s spent, %s remaining\n", s.money(d.BudgetSpent), s.money(d.BudgetLimit), s.money(d.BudgetRemaining))
				fmt.Fprintf(out, "Goals:       %d of %d completed\n", d.GoalsCompleted, d.GoalsTotal)
				fmt.Fprintf(out, "Badges:      %d/%d\n", d.AchievementsEarned, d.AchievementsTotal)

				if len(d.ByCategory) > 0 {
					fmt.Fprintln(out, "\nExpenses by category")
					tw := newTable(out, "  CATEGORY", "AMOUNT")
					for _, c := range d.ByCategory {
						row(tw, "  "+c.Category, s.money(c.Amount))
					}
					if err := tw.Flush(); err != nil {
						return err
					}
				}

				fmt.Fprintf(out, "\nLast %d months\n", len(d.Trend))
				tw := newTable(out, "  MONTH", "INCOME", "EXPENSES")
				for _, m := range d.Trend {
					row(tw, "  "+m.Label, s.money(m.Income), s.money(m.Expenses))
				}
				if err := tw.Flush(); err != nil {
					return err
				}

				if len(d.Recent) > 0 {
					fmt.Fprintln(out, "\nRecent transactions")
					tw := newTable(out, "  DATE", "TYPE", "CATEGORY", "AMOUNT", "DESCRIPTION")
					for _, t := range d.Recent {
						row(tw, "  "+t.Date.String(), string(t.Type), t.Category, s.money(t.Amount), t.Description)
					}
					return tw.Flush()
				}
				return nil
			})
		},
	}
}
