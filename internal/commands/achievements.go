package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-finance/tally/internal/achievement"
)

func newAchievementsCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"badges"},
		Short:   "Show earned and locked achievements",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, open, func(s *session) error {
				all := s.store.Achievements()
				now := s.now()
				tw := newTable(cmd.OutOrStdout(), "", "ACHIEVEMENT", "DESCRIPTION", "EARNED")
				for _, a := range all {
					mark := "[ ]"
					if a.Earned {
						mark = "[x]"
					}
					row(tw, mark, a.Icon+" "+a.Title, a.Description, whenEarned(a.EarnedAt, now))
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d earned\n", achievement.CountEarned(all), len(all))
				return nil
			})
		},
	}
}
