package engine

import (
	"context"
	"log/slog"

	"github.com/klauscode/anki-gacha/internal/storage"
)

// LuckyRollCost is charged upfront, win or lose.
const LuckyRollCost = 20

type rollOutcome struct {
	Name   string
	Points int
	XP     int
}

// The four outcomes are equally likely.
var rollOutcomes = []rollOutcome{
	{Name: "Jackpot", Points: 100},
	{Name: "Bonus XP", XP: 50},
	{Name: "Small Prize", Points: 10},
	{Name: "Miss"},
}

type RollResult struct {
	Outcome   string
	Points    int
	XP        int
	LeveledUp bool
}

// RequestLuckyRoll plays the wheel mini-game. The XP outcome goes to the
// current buddy and fizzles silently when no buddy is set.
func (s *Service) RequestLuckyRoll(ctx context.Context) (*RollResult, error) {
	if err := s.debit(LuckyRollCost); err != nil {
		return nil, err
	}
	o := rollOutcomes[s.rng.Intn(len(rollOutcomes))]
	res := &RollResult{Outcome: o.Name, Points: o.Points, XP: o.XP}
	if o.Points > 0 {
		if err := s.credit(o.Points); err != nil {
			return nil, err
		}
	}
	if o.XP > 0 {
		if b := s.state.CurrentItem; b != nil {
			xr, err := s.grantXP(b.ID, o.XP)
			if err != nil {
				return nil, err
			}
			res.LeveledUp = xr.LevelsGained > 0
		}
	}
	s.record(ctx, storage.Event{
		Kind:        storage.EventRoll,
		PointsDelta: o.Points - LuckyRollCost,
		Detail:      o.Name,
	})
	slog.Debug("lucky roll", "outcome", o.Name)
	return res, nil
}
