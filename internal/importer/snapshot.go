package importer

import (
	"io"

	"github.com/tally-finance/tally/internal/export"
	"github.com/tally-finance/tally/internal/model"
)

const formatSnapshot = "json"

// SnapshotParser reads the transactions out of a JSON snapshot export.
// Budgets, goals and bills in the file are ignored.
type SnapshotParser struct{}

// Format returns the parser name.
func (p *SnapshotParser) Format() string { return formatSnapshot }

// Parse decodes the snapshot and returns its transactions as drafts.
func (p *SnapshotParser) Parse(r io.Reader) ([]model.TransactionDraft, error) {
	snap, err := export.ReadSnapshot(r)
	if err != nil {
		return nil, err
	}
	if len(snap.Transactions) == 0 {
		return nil, nil
	}
	drafts := make([]model.TransactionDraft, len(snap.Transactions))
	for i, t := range snap.Transactions {
		drafts[i] = t.Draft()
	}
	return drafts, nil
}
