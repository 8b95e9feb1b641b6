package engine

import (
	"context"

	"github.com/klauscode/anki-gacha/internal/storage"
)

type HistoryStats struct {
	Earned int
	Spent  int
	Pulls  int
	Recent []storage.Event
}

// History aggregates the ledger for the stats view. Without a ledger it
// returns zeroes rather than failing.
func (s *Service) History(ctx context.Context, recent int) (*HistoryStats, error) {
	if s.ledger == nil {
		return &HistoryStats{}, nil
	}
	earned, spent, err := s.ledger.Totals(ctx)
	if err != nil {
		return nil, err
	}
	pulls, err := s.ledger.CountKind(ctx, storage.EventPull)
	if err != nil {
		return nil, err
	}
	events, err := s.ledger.Recent(ctx, recent)
	if err != nil {
		return nil, err
	}
	return &HistoryStats{Earned: earned, Spent: spent, Pulls: pulls, Recent: events}, nil
}
