package engine

import (
	"context"
	"log/slog"

	"github.com/klauscode/anki-gacha/internal/storage"
)

// PullXPBonus is granted to the acquired item on every pull.
const PullXPBonus = 5

type PullResult struct {
	ItemID    string
	Rarity    Rarity
	Copies    int
	EventName string
	Unlocked  []Unlock
}

// RequestPull runs one gacha draw: affordability check, pool check, debit,
// rarity draw, item draw, acquisition, pull XP, achievement pass. The cost is
// only debited once both checks have passed.
func (s *Service) RequestPull(ctx context.Context) (*PullResult, error) {
	cost := s.cfg.PullCost
	if s.state.Points < cost {
		return nil, &InsufficientFundsError{Need: cost, Have: s.state.Points}
	}
	if s.pool.Empty() {
		return nil, ErrNoAssets
	}
	if err := s.debit(cost); err != nil {
		return nil, err
	}

	rarity := PickRarity(s.rarityChances(), s.rng.Float64())
	id := s.pickItem(rarity)
	item, err := s.acquire(id, rarity)
	if err != nil {
		return nil, err
	}
	// The freshly pulled item becomes the buddy, as in the original addon.
	s.state.CurrentItem = &storage.BuddyRef{ID: id, Rarity: item.Rarity, Path: s.pool.PathFor(id)}
	if _, err := s.grantXP(id, PullXPBonus); err != nil {
		return nil, err
	}
	unlocked, err := s.checkAchievements(ctx)
	if err != nil {
		return nil, err
	}

	res := &PullResult{
		ItemID:    id,
		Rarity:    Rarity(item.Rarity),
		Copies:    item.Count,
		EventName: ActiveEvent(s.now()),
		Unlocked:  unlocked,
	}
	s.record(ctx, storage.Event{
		Kind:        storage.EventPull,
		ItemID:      id,
		PointsDelta: -cost,
		Detail:      string(rarity),
	})
	slog.Debug("pull", "item", id, "rarity", rarity, "copies", item.Count)
	return res, nil
}

// pickItem draws uniformly from the whole candidate pool; the drawn rarity
// does not narrow the candidates.
// TODO: decide whether rarity should filter the pool; nothing uses the
// argument today, matching the original addon.
func (s *Service) pickItem(_ Rarity) string {
	files := s.pool.List()
	return files[s.rng.Intn(len(files))]
}
