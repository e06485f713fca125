// Package storage persists the suite's datasets as flat CSV files, the
// format every consumer of the data (dashboard, spreadsheets, manual
// edits) already speaks.
package storage

import (
	"context"
	"errors"

	"github.com/jorgelillo7/biwenger-tools/model"
)

var (
	// ErrNotFound means the dataset has never been written. First runs
	// of a season start from an empty message set.
	ErrNotFound error = errors.New("dataset not found")
)

// Store reads and writes the persisted CSV datasets. Saves are
// all-or-nothing: a failed write never leaves a truncated dataset
// behind.
type Store interface {
	// LoadMessages returns the persisted board messages in stored order.
	LoadMessages(ctx context.Context) ([]model.Message, error)
	SaveMessages(ctx context.Context, messages []model.Message) error

	LoadParticipation(ctx context.Context) ([]*model.ParticipationRecord, error)
	SaveParticipation(ctx context.Context, records []*model.ParticipationRecord) error

	SaveSquadExport(ctx context.Context, rows []model.SquadRow) error

	// LoadPalmares returns the hand-maintained league honours rows.
	LoadPalmares(ctx context.Context) ([]model.PalmaresEntry, error)
}
