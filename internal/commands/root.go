package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-finance/tally/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var home string

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Personal finance tracker: transactions, budgets, goals and bills",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&home, "home", "", fmt.Sprintf("data directory (default $%s or ~/%s)", EnvHome, defaultHomeDir))

	open := func(cmd *cobra.Command) (*session, error) {
		return openSession(cmd, home)
	}

	rootCmd.AddCommand(
		newInitCommand(&home),
		newTxCommand(open),
		newBudgetCommand(open),
		newGoalCommand(open),
		newBillCommand(open),
		newAchievementsCommand(open),
		newSummaryCommand(open),
		newExportCommand(open),
	)

	return rootCmd
}

// opener opens a session for the data directory chosen on the command line.
type opener func(cmd *cobra.Command) (*session, error)
