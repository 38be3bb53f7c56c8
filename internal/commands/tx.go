package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tally-finance/tally/internal/importer"
	"github.com/tally-finance/tally/internal/ledger"
	"github.com/tally-finance/tally/internal/model"
	"github.com/tally-finance/tally/internal/validate"
)

func newTxCommand(open opener) *cobra.Command {
	txCmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transaction"},
		Short:   "Record and browse transactions",
	}
	txCmd.AddCommand(
		newTxAddCommand(open),
		newTxListCommand(open),
		newTxEditCommand(open),
		newTxRemoveCommand(open),
		newTxImportCommand(open),
	)
	return txCmd
}

type txFlags struct {
	kind        string
	amount      string
	category    string
	description string
	date        string
	split       []string
}

func (f *txFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "type", "t", string(model.KindExpense), "income or expense")
	cmd.Flags().StringVarP(&f.amount, "amount", "a", "", "amount")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category")
	cmd.Flags().StringVarP(&f.description, "desc", "d", "", "description")
	cmd.Flags().StringVar(&f.date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringSliceVar(&f.split, "split", nil, "names of people sharing an expense; the amount becomes your share")
}

func newTxAddCommand(open opener) *cobra.Command {
	var f txFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, open, func(s *session) error {
				amount, err := parseDecimal(f.amount, "amount")
				if err != nil {
					return err
				}
				date, err := parseDate(f.date, s.now())
				if err != nil {
					return err
				}
				draft := model.TransactionDraft{
					Type:        model.Kind(strings.ToLower(f.kind)),
					Amount:      amount,
					Category:    f.category,
					Description: f.description,
					Date:        date,
					SplitWith:   f.split,
				}
				vocab := s.vocabulary()
				if err := validate.Join(validate.Transaction(draft, &vocab)); err != nil {
					return err
				}
				draft.Amount = ledger.SplitShare(draft.Amount, len(draft.SplitWith))

				txn, events := s.store.AddTransaction(draft)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Added %s %s %s (%s)\n", txn.Type, s.money(txn.Amount), txn.Category, txn.ID)
				if len(txn.SplitWith) > 0 {
					fmt.Fprintf(out, "Split with %s: your share is %s\n", strings.Join(txn.SplitWith, ", "), s.money(txn.Amount))
				}
				printEvents(out, events)
				return nil
			})
		},
	}

	f.register(cmd)
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func newTxListCommand(open opener) *cobra.Command {
	var limit int
	var kind, category string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions, most recent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, open, func(s *session) error {
				var shown []model.Transaction
				for _, t := range s.store.Transactions() {
					if kind != "" && !strings.EqualFold(string(t.Type), kind) {
						continue
					}
					if category != "" && t.Category != category {
						continue
					}
					shown = append(shown, t)
					if limit > 0 && len(shown) == limit {
						break
					}
				}
				if len(shown) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No transactions.")
					return nil
				}

				tw := newTable(cmd.OutOrStdout(), "ID", "DATE", "TYPE", "CATEGORY", "AMOUNT", "DESCRIPTION")
				for _, t := range shown {
					desc := t.Description
					if len(t.SplitWith) > 0 {
						desc += " (split with " + strings.Join(t.SplitWith, ", ") + ")"
					}
					row(tw, t.ID, t.Date.String(), string(t.Type), t.Category, s.money(t.Amount), desc)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n transactions")
	cmd.Flags().StringVarP(&kind, "type", "t", "", "only income or expense")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only this category")

	return cmd
}

func newTxEditCommand(open opener) *cobra.Command {
	var f txFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(s *session) error {
				id := args[0]
				current, ok := s.store.Transaction(id)
				if !ok {
					return fmt.Errorf("no transaction with id %s", id)
				}

				patch, err := f.patch(cmd, s)
				if err != nil {
					return err
				}
				if patch.IsEmpty() {
					return errors.New("nothing to change: pass at least one field flag")
				}

				// --split changes the divisor, so the full amount has to come with it.
				if patch.SplitWith != nil && patch.Amount == nil {
					return errors.New("--split needs --amount with the full amount to divide")
				}

				vocab := s.vocabulary()
				edited := patch.Apply(current)
				if err := validate.Join(validate.Transaction(edited.Draft(), &vocab)); err != nil {
					return err
				}
				if patch.Amount != nil {
					share := ledger.SplitShare(*patch.Amount, len(edited.SplitWith))
					patch.Amount = &share
				}

				_, events := s.store.UpdateTransaction(id, patch)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Updated %s\n", id)
				printEvents(out, events)
				return nil
			})
		},
	}

	f.register(cmd)
	return cmd
}

// patch builds a TransactionPatch from the flags the user actually set.
func (f *txFlags) patch(cmd *cobra.Command, s *session) (model.TransactionPatch, error) {
	var p model.TransactionPatch
	flags := cmd.Flags()
	if flags.Changed("type") {
		k := model.Kind(strings.ToLower(f.kind))
		p.Type = &k
	}
	if flags.Changed("amount") {
		amount, err := parseDecimal(f.amount, "amount")
		if err != nil {
			return p, err
		}
		p.Amount = &amount
	}
	if flags.Changed("category") {
		p.Category = &f.category
	}
	if flags.Changed("desc") {
		p.Description = &f.description
	}
	if flags.Changed("date") {
		date, err := parseDate(f.date, s.now())
		if err != nil {
			return p, err
		}
		p.Date = &date
	}
	if flags.Changed("split") {
		p.SplitWith = &f.split
	}
	return p, nil
}

func newTxRemoveCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a transaction",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(s *session) error {
				ok, _ := s.store.DeleteTransaction(args[0])
				if !ok {
					return fmt.Errorf("no transaction with id %s", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func newTxImportCommand(open opener) *cobra.Command {
	var format, category string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import transactions from a file, or everything waiting in <home>/import",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(s *session) error {
				reg := importer.NewRegistry()
				reg.Register(&importer.CSVParser{})
				reg.Register(&importer.SnapshotParser{})
				reg.Register(&importer.ChaseParser{Category: category})

				if len(args) == 1 {
					ff := format
					if ff == "" {
						ff = importer.FormatForFile(args[0])
					}
					n, err := importFile(cmd, s, reg, args[0], ff)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s\n", n, filepath.Base(args[0]))
					return nil
				}

				files, err := importer.Scan(s.home)
				if err != nil {
					return err
				}
				if len(files) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import.")
					return nil
				}
				for _, file := range files {
					ff := format
					if ff == "" {
						ff = file.Format
					}
					n, err := importFile(cmd, s, reg, file.Path, ff)
					if err != nil {
						return fmt.Errorf("%s: %w", file.Name, err)
					}
					if err := importer.MarkProcessed(s.home, file.Name); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s\n", n, file.Name)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "csv, json or chase (default: from the file extension)")
	cmd.Flags().StringVar(&category, "category", "Other", "category for bank rows (chase format)")

	return cmd
}

// importFile parses, validates and adds every row of path as one ledger
// mutation. Nothing is added when any row is invalid.
func importFile(cmd *cobra.Command, s *session, reg *importer.Registry, path, format string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	drafts, err := reg.Parse(format, f)
	if err != nil {
		return 0, err
	}
	for i, d := range drafts {
		if err := validate.Join(validate.Transaction(d, nil)); err != nil {
			return 0, fmt.Errorf("transaction %d: %w", i+1, err)
		}
	}

	_, events := s.store.ImportTransactions(drafts)
	printEvents(cmd.OutOrStdout(), events)
	return len(drafts), nil
}
