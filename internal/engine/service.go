// Package engine implements the reward economy: the wallet, the collection,
// randomized pulls, fusion, daily streaks, achievements, and the shop. All
// state lives in one aggregate owned by the Service and is written through to
// the document store after every mutation.
package engine

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/klauscode/anki-gacha/internal/assets"
	"github.com/klauscode/anki-gacha/internal/storage"
)

type Service struct {
	store  *storage.Store
	pool   *assets.Pool
	ledger *storage.Ledger

	cfg   *storage.ConfigDoc
	state *storage.CollectionDoc

	rng *rand.Rand
	now func() time.Time
}

// NewService loads both documents and returns the facade. The ledger may be
// nil, in which case history recording is skipped.
func NewService(store *storage.Store, pool *assets.Pool, ledger *storage.Ledger) (*Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	state, err := store.LoadCollection()
	if err != nil {
		return nil, err
	}
	return &Service{
		store:  store,
		pool:   pool,
		ledger: ledger,
		cfg:    cfg,
		state:  state,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}, nil
}

func (s *Service) Pool() *assets.Pool { return s.pool }

// ConfigDoc returns a copy of the current config document for display.
func (s *Service) ConfigDoc() storage.ConfigDoc { return *s.cfg }

func (s *Service) saveState() error {
	return s.store.SaveCollection(s.state)
}

func (s *Service) saveConfig() error {
	return s.store.SaveConfig(s.cfg)
}

// record appends to the history ledger. The ledger is audit-only, so a
// failed write is logged and the operation carries on.
func (s *Service) record(ctx context.Context, e storage.Event) {
	if s.ledger == nil {
		return
	}
	if _, err := s.ledger.Record(ctx, e); err != nil {
		slog.Warn("history write failed", "kind", e.Kind, "error", err)
	}
}

func (s *Service) rarityChances() map[Rarity]float64 {
	out := make(map[Rarity]float64, len(s.cfg.Rarities))
	for name, rc := range s.cfg.Rarities {
		out[Rarity(name)] = rc.Chance
	}
	return out
}
