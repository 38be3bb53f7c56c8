package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-finance/tally/internal/model"
	"github.com/tally-finance/tally/internal/validate"
)

func newGoalCommand(open opener) *cobra.Command {
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Track savings goals",
	}
	goalCmd.AddCommand(newGoalAddCommand(open), newGoalAdjustCommand(open), newGoalListCommand(open))
	return goalCmd
}

func newGoalAddCommand(open opener) *cobra.Command {
	var name, target, deadline string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, open, func(s *session) error {
				amount, err := parseDecimal(target, "target")
				if err != nil {
					return err
				}
				due, err := model.ParseDate(deadline)
				if err != nil {
					return err
				}
				if err := validate.Join(validate.Goal(name, amount, due)); err != nil {
					return err
				}
				g := s.store.AddGoal(name, amount, due)
				fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s: save %s by %s (%s)\n", g.Name, s.money(g.Target), g.Deadline, g.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name")
	cmd.Flags().StringVar(&target, "target", "", "amount to save")
	cmd.Flags().StringVar(&deadline, "deadline", "", "target date as YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("deadline")

	return cmd
}

func newGoalAdjustCommand(open opener) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "adjust <id>",
		Short: "Add to (or, with a negative amount, take from) a goal's savings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(s *session) error {
				delta, err := parseDecimal(by, "amount")
				if err != nil {
					return err
				}
				if !s.store.AdjustGoal(args[0], delta) {
					return fmt.Errorf("no goal with id %s", args[0])
				}
				g, _ := s.store.Goal(args[0])
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s: %s of %s (%s)\n", g.Name, s.money(g.Current), s.money(g.Target), percent(g.PercentComplete()))
				if g.Completed() {
					fmt.Fprintln(out, "Goal reached!")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&by, "amount", "", "signed amount, e.g. --amount=-50")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newGoalListCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show savings goals",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, open, func(s *session) error {
				goalList := s.store.Goals()
				if len(goalList) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No savings goals.")
					return nil
				}
				tw := newTable(cmd.OutOrStdout(), "ID", "NAME", "SAVED", "TARGET", "PROGRESS", "DEADLINE", "STATUS")
				for _, g := range goalList {
					status := "in progress"
					if g.Completed() {
						status = "completed"
					}
					row(tw, g.ID, g.Name, s.money(g.Current), s.money(g.Target), percent(g.PercentComplete()), g.Deadline.String(), status)
				}
				return tw.Flush()
			})
		},
	}
}
