package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/klauscode/anki-gacha/internal/storage"
)

// Answer ease values, matching the review buttons.
const (
	EaseAgain = 1
	EaseHard  = 2
	EaseGood  = 3
	EaseEasy  = 4
)

type reviewReward struct {
	Health int
	XP     int
	Points int
}

var easeRewards = map[int]reviewReward{
	EaseAgain: {Health: -5, XP: 0, Points: 0},
	EaseHard:  {Health: -2, XP: 2, Points: 2},
	EaseGood:  {Health: 1, XP: 5, Points: 5},
	EaseEasy:  {Health: 10, XP: 10, Points: 10},
}

type ReviewResult struct {
	Ease        int
	BuddyID     string
	WalletDelta int
	HealthDelta int
	XPDelta     int
	LeveledUp   bool
	NewLevel    int
	Died        bool
}

// OnReviewAnswered applies one answered card to the economy: the buddy takes
// the health delta (dying at 0), gains XP if it survived, and the wallet is
// credited. WalletDelta reports the full wallet movement including any
// level-up bonuses. An unrecognized ease is a no-op, not an error.
func (s *Service) OnReviewAnswered(ctx context.Context, ease int) (*ReviewResult, error) {
	res := &ReviewResult{Ease: ease}
	reward, ok := easeRewards[ease]
	if !ok {
		return res, nil
	}
	if b := s.state.CurrentItem; b != nil {
		res.BuddyID = b.ID
		hr, err := s.applyHealthDelta(b.ID, reward.Health)
		if err != nil {
			return nil, err
		}
		if hr.Applied {
			res.HealthDelta = reward.Health
		}
		switch {
		case hr.Died:
			res.Died = true
		case hr.Applied:
			xr, err := s.grantXP(b.ID, reward.XP)
			if err != nil {
				return nil, err
			}
			res.XPDelta = reward.XP
			res.LeveledUp = xr.LevelsGained > 0
			res.NewLevel = xr.NewLevel
			res.WalletDelta += xr.BonusPoints
		}
	}
	if err := s.credit(reward.Points); err != nil {
		return nil, err
	}
	res.WalletDelta += reward.Points
	if reward.Points != 0 {
		s.record(ctx, storage.Event{
			Kind:        storage.EventReview,
			ItemID:      res.BuddyID,
			PointsDelta: reward.Points,
			Detail:      fmt.Sprintf("ease %d", ease),
		})
	}
	slog.Debug("review answered", "ease", ease, "buddy", res.BuddyID, "died", res.Died)
	return res, nil
}
