package engine

import (
	"context"
	"log/slog"

	"github.com/klauscode/anki-gacha/internal/storage"
)

// LevelUpBonus is credited to the wallet each time an item gains a level.
const LevelUpBonus = 50

// XPToNext returns the XP threshold to clear the given level.
func XPToNext(level int) int { return level * 100 }

// acquire creates the entry on first pull (count 1, level 1, full health) or
// bumps the copy count, and returns the post-mutation snapshot.
func (s *Service) acquire(id string, rarity Rarity) (*storage.OwnedItem, error) {
	item, ok := s.state.Collection[id]
	if !ok {
		item = &storage.OwnedItem{Rarity: string(rarity), Level: 1, Health: 100}
		s.state.Collection[id] = item
	}
	item.Count++
	if err := s.saveState(); err != nil {
		return nil, err
	}
	return item, nil
}

type GrantXPResult struct {
	LevelsGained int
	NewLevel     int
	BonusPoints  int
}

// grantXP adds XP to an item and normalizes: while the XP clears the current
// level's threshold, the threshold is subtracted and the level rises, paying
// the level-up bonus each time. A single large grant can cross several
// levels. An unknown id is a silent no-op.
func (s *Service) grantXP(id string, amount int) (*GrantXPResult, error) {
	item, ok := s.state.Collection[id]
	if !ok {
		return &GrantXPResult{}, nil
	}
	item.XP += amount
	res := &GrantXPResult{NewLevel: item.Level}
	for item.XP >= XPToNext(item.Level) {
		item.XP -= XPToNext(item.Level)
		item.Level++
		res.LevelsGained++
		res.NewLevel = item.Level
		res.BonusPoints += LevelUpBonus
	}
	if res.LevelsGained > 0 {
		slog.Debug("level up", "item", id, "level", res.NewLevel, "bonus", res.BonusPoints)
		if err := s.credit(res.BonusPoints); err != nil {
			return nil, err
		}
	}
	if err := s.saveState(); err != nil {
		return nil, err
	}
	return res, nil
}

type HealthResult struct {
	Applied bool
	Health  int
	Died    bool
}

// applyHealthDelta moves an item's health, clamped to [0,100]. Hitting
// exactly 0 deletes the entry and clears the buddy reference if it pointed
// here. An unknown id is a silent no-op.
func (s *Service) applyHealthDelta(id string, delta int) (*HealthResult, error) {
	item, ok := s.state.Collection[id]
	if !ok {
		return &HealthResult{}, nil
	}
	h := item.Health + delta
	if h > 100 {
		h = 100
	}
	if h < 0 {
		h = 0
	}
	item.Health = h
	if h == 0 {
		delete(s.state.Collection, id)
		s.clearBuddyIf(id)
		slog.Debug("item died", "item", id)
		if err := s.saveState(); err != nil {
			return nil, err
		}
		return &HealthResult{Applied: true, Died: true}, nil
	}
	if err := s.saveState(); err != nil {
		return nil, err
	}
	return &HealthResult{Applied: true, Health: h}, nil
}

type FusionResult struct {
	ItemID     string
	NewRarity  Rarity
	CopiesLeft int
	// Removed is set when the fusion consumed the final copies, deleting
	// the entry.
	Removed bool
}

// RequestFusion consumes 3 copies of an item to advance it one rarity tier.
// Copies are only consumed when an upgrade actually happens: an item already
// at the top tier keeps all its copies.
func (s *Service) RequestFusion(ctx context.Context, id string) (*FusionResult, error) {
	item, ok := s.state.Collection[id]
	if !ok || item.Count < 3 {
		return nil, ErrInsufficientCopies
	}
	next, ok := Rarity(item.Rarity).Next()
	if !ok {
		return nil, ErrAlreadyMaxRarity
	}
	item.Count -= 3
	item.Rarity = string(next)
	res := &FusionResult{ItemID: id, NewRarity: next, CopiesLeft: item.Count}
	if item.Count == 0 {
		delete(s.state.Collection, id)
		s.clearBuddyIf(id)
		res.Removed = true
	} else if b := s.state.CurrentItem; b != nil && b.ID == id {
		b.Rarity = string(next)
	}
	if err := s.saveState(); err != nil {
		return nil, err
	}
	s.record(ctx, storage.Event{Kind: storage.EventFusion, ItemID: id, Detail: string(next)})
	slog.Debug("fusion", "item", id, "rarity", next, "copies", res.CopiesLeft)
	return res, nil
}

// Buddy returns the current buddy reference, or nil.
func (s *Service) Buddy() *storage.BuddyRef { return s.state.CurrentItem }

// SetBuddy points the buddy reference at an owned item.
func (s *Service) SetBuddy(id string) (*storage.BuddyRef, error) {
	item, ok := s.state.Collection[id]
	if !ok {
		return nil, ErrNotOwned
	}
	s.state.CurrentItem = &storage.BuddyRef{
		ID:     id,
		Rarity: item.Rarity,
		Path:   s.pool.PathFor(id),
	}
	if err := s.saveState(); err != nil {
		return nil, err
	}
	return s.state.CurrentItem, nil
}

// ToggleFavorite flips the display flag. An unknown id is a silent no-op.
func (s *Service) ToggleFavorite(id string) (bool, error) {
	item, ok := s.state.Collection[id]
	if !ok {
		return false, nil
	}
	item.Favorite = !item.Favorite
	if err := s.saveState(); err != nil {
		return false, err
	}
	return item.Favorite, nil
}

func (s *Service) clearBuddyIf(id string) {
	if b := s.state.CurrentItem; b != nil && b.ID == id {
		s.state.CurrentItem = nil
	}
}
