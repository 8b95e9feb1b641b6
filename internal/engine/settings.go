package engine

import "fmt"

// SettingsUpdate carries partial changes to the config document; nil fields
// are left untouched.
type SettingsUpdate struct {
	Folder           *string
	PullCost         *int
	ReviewCorrect    *int
	ReviewHard       *int
	ReviewWrong      *int
	ShowDuringReview *bool
}

// UpdateSettings applies the changes, persists the config document, and
// rescans the asset pool when the folder changed.
func (s *Service) UpdateSettings(u SettingsUpdate) error {
	if u.PullCost != nil {
		if *u.PullCost < 1 {
			return fmt.Errorf("pull cost must be positive, got %d", *u.PullCost)
		}
		s.cfg.PullCost = *u.PullCost
	}
	if u.ReviewCorrect != nil {
		s.cfg.Rewards.ReviewCorrect = *u.ReviewCorrect
	}
	if u.ReviewHard != nil {
		s.cfg.Rewards.ReviewHard = *u.ReviewHard
	}
	if u.ReviewWrong != nil {
		s.cfg.Rewards.ReviewWrong = *u.ReviewWrong
	}
	if u.ShowDuringReview != nil {
		show := *u.ShowDuringReview
		s.cfg.ShowDuringReview = &show
	}
	if u.Folder != nil {
		s.cfg.HusbandoFolder = *u.Folder
		if err := s.pool.SetDir(*u.Folder); err != nil {
			return err
		}
	}
	return s.saveConfig()
}
