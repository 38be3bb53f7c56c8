package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-finance/tally/internal/config"
	"github.com/tally-finance/tally/internal/kv"
)

func newInitCommand(home *string) *cobra.Command {
	var backend, currency, limit string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the data directory with a default tally.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := resolveHome(*home)
			if err != nil {
				return err
			}

			cfg := config.Default()
			if cmd.Flags().Changed("backend") {
				cfg.Storage.Backend = backend
			}
			if cmd.Flags().Changed("currency") {
				cfg.Display.Currency = currency
			}
			if cmd.Flags().Changed("default-limit") {
				cfg.Budgets.DefaultLimit = limit
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := runInit(dir, cfg, force); err != nil {
				return err
			}
			// Opening the store seeds budgets and achievements.
			seed := func(cmd *cobra.Command) (*session, error) { return openSession(cmd, dir) }
			if err := withSession(cmd, seed, func(*session) error { return nil }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized tally at %s (%s storage)\n", dir, cfg.Storage.Backend)
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "backend", kv.BackendJSON, "storage backend: json, sqlite or memory")
	cmd.Flags().StringVar(&currency, "currency", "", "currency symbol shown in output")
	cmd.Flags().StringVar(&limit, "default-limit", "", "limit given to each seeded budget")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing tally.yaml")

	return cmd
}

func runInit(dir string, cfg *config.Config, force bool) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	dirs := []string{
		cfg.Storage.Path,
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
