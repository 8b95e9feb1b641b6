package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/klauscode/anki-gacha/internal/storage"
)

const (
	dailyBaseReward  = 50
	dailyStreakBonus = 10

	dateLayout = "2006-01-02"
)

type DailyResult struct {
	Claimed bool
	Reward  int
	Streak  int
}

// EvaluateDailyLogin claims the daily bonus for the given calendar day. The
// streak grows only across consecutive days and resets to 1 after a gap.
// Claiming twice on the same day grants nothing the second time.
func (s *Service) EvaluateDailyLogin(ctx context.Context, today time.Time) (*DailyResult, error) {
	todayStr := today.Format(dateLayout)
	if s.state.LastLogin == todayStr {
		return &DailyResult{Streak: s.state.LoginStreak}, nil
	}
	streak := 1
	if s.state.LastLogin != "" {
		if last, err := time.Parse(dateLayout, s.state.LastLogin); err == nil && daysBetween(last, today) == 1 {
			streak = s.state.LoginStreak + 1
		}
	}
	s.state.LoginStreak = streak
	s.state.LastLogin = todayStr
	reward := dailyBaseReward + (streak-1)*dailyStreakBonus
	if err := s.credit(reward); err != nil {
		return nil, err
	}
	s.record(ctx, storage.Event{
		Kind:        storage.EventDaily,
		PointsDelta: reward,
		Detail:      fmt.Sprintf("streak %d", streak),
	})
	return &DailyResult{Claimed: true, Reward: reward, Streak: streak}, nil
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad) / (24 * time.Hour))
}
