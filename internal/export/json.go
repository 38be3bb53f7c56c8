package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tally-finance/tally/internal/model"
)

// WriteJSON writes the snapshot as indented JSON.
func WriteJSON(w io.Writer, snap model.Snapshot) error {
	snap = normalize(snap)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot parses a snapshot written by WriteJSON.
func ReadSnapshot(r io.Reader) (model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return snap, nil
}

// normalize replaces nil collections so they encode as [] rather than null.
func normalize(snap model.Snapshot) model.Snapshot {
	if snap.Transactions == nil {
		snap.Transactions = []model.Transaction{}
	}
	if snap.Budgets == nil {
		snap.Budgets = []model.Budget{}
	}
	if snap.SavingsGoals == nil {
		snap.SavingsGoals = []model.SavingsGoal{}
	}
	if snap.Bills == nil {
		snap.Bills = []model.Bill{}
	}
	return snap
}
