package engine

import "context"

// AchievementDef is one unlock rule. Rules are idempotent: once the flag is
// set in the collection document, the rule never fires again.
type AchievementDef struct {
	ID     string
	Name   string
	Reward int
	earned func(s *Service) bool
}

func achievementDefs() []AchievementDef {
	return []AchievementDef{
		{
			ID:     "first_pull",
			Name:   "First Pull",
			Reward: 100,
			earned: func(s *Service) bool { return len(s.state.Collection) > 0 },
		},
	}
}

type Unlock struct {
	ID     string
	Name   string
	Reward int
}

// checkAchievements evaluates every rule against current state and grants the
// one-time rewards for those newly satisfied.
func (s *Service) checkAchievements(ctx context.Context) ([]Unlock, error) {
	var out []Unlock
	for _, def := range achievementDefs() {
		if s.state.Achievements[def.ID] || !def.earned(s) {
			continue
		}
		s.state.Achievements[def.ID] = true
		if err := s.credit(def.Reward); err != nil {
			return nil, err
		}
		out = append(out, Unlock{ID: def.ID, Name: def.Name, Reward: def.Reward})
	}
	return out, nil
}
