package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-finance/tally/internal/bills"
	"github.com/tally-finance/tally/internal/model"
	"github.com/tally-finance/tally/internal/validate"
)

func newBillCommand(open opener) *cobra.Command {
	billCmd := &cobra.Command{
		Use:   "bill",
		Short: "Track upcoming bills",
	}
	billCmd.AddCommand(newBillAddCommand(open), newBillPayCommand(open), newBillListCommand(open))
	return billCmd
}

func newBillAddCommand(open opener) *cobra.Command {
	var name, amount, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a bill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, open, func(s *session) error {
				amt, err := parseDecimal(amount, "amount")
				if err != nil {
					return err
				}
				dueDate, err := model.ParseDate(due)
				if err != nil {
					return err
				}
				if err := validate.Join(validate.Bill(name, amt, dueDate)); err != nil {
					return err
				}
				b := s.store.AddBill(name, amt, dueDate)
				fmt.Fprintf(cmd.OutOrStdout(), "Added bill %s: %s due %s (%s)\n", b.Name, s.money(b.Amount), b.DueDate, b.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "bill name")
	cmd.Flags().StringVar(&amount, "amount", "", "amount due")
	cmd.Flags().StringVar(&due, "due", "", "due date as YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func newBillPayCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id>",
		Short: "Mark a bill as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(s *session) error {
				if !s.store.MarkBillPaid(args[0]) {
					return fmt.Errorf("no bill with id %s", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as paid\n", args[0])
				return nil
			})
		},
	}
}

func newBillListCommand(open opener) *cobra.Command {
	var unpaid bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show bills",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, open, func(s *session) error {
				billList := s.store.Bills()
				if unpaid {
					billList = bills.Unpaid(billList)
				}
				if len(billList) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No bills.")
					return nil
				}
				today := model.DateOf(s.now())
				tw := newTable(cmd.OutOrStdout(), "ID", "NAME", "AMOUNT", "DUE", "STATUS")
				for _, b := range billList {
					status := "unpaid"
					switch {
					case b.IsPaid:
						status = "paid"
					case b.DueDate.Before(today.Time):
						status = "overdue"
					}
					row(tw, b.ID, b.Name, s.money(b.Amount), b.DueDate.String(), status)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().BoolVar(&unpaid, "unpaid", false, "only unpaid bills")

	return cmd
}
