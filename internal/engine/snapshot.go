package engine

import (
	"sort"

	"github.com/klauscode/anki-gacha/internal/storage"
)

type ItemView struct {
	ID       string
	Count    int
	Rarity   Rarity
	XP       int
	Level    int
	Health   int
	Favorite bool
	IsBuddy  bool
}

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	Points       int
	Items        []ItemView
	Buddy        *storage.BuddyRef
	LoginStreak  int
	LastLogin    string
	Achievements []string
	TotalCopies  int
	PullCost     int
	AssetsFolder string
	Theme        string
}

func (s *Service) Snapshot() *Snapshot {
	snap := &Snapshot{
		Points:       s.state.Points,
		Buddy:        s.state.CurrentItem,
		LoginStreak:  s.state.LoginStreak,
		LastLogin:    s.state.LastLogin,
		PullCost:     s.cfg.PullCost,
		AssetsFolder: s.cfg.HusbandoFolder,
		Theme:        s.cfg.Theme,
	}
	buddyID := ""
	if snap.Buddy != nil {
		buddyID = snap.Buddy.ID
	}
	for id, item := range s.state.Collection {
		snap.Items = append(snap.Items, ItemView{
			ID:       id,
			Count:    item.Count,
			Rarity:   Rarity(item.Rarity),
			XP:       item.XP,
			Level:    item.Level,
			Health:   item.Health,
			Favorite: item.Favorite,
			IsBuddy:  id == buddyID,
		})
		snap.TotalCopies += item.Count
	}
	// Rarity order first, then id: the original collection view's sort.
	sort.Slice(snap.Items, func(i, j int) bool {
		ri, rj := snap.Items[i].Rarity.Index(), snap.Items[j].Rarity.Index()
		if ri != rj {
			return ri < rj
		}
		return snap.Items[i].ID < snap.Items[j].ID
	})
	for id, earned := range s.state.Achievements {
		if earned {
			snap.Achievements = append(snap.Achievements, id)
		}
	}
	sort.Strings(snap.Achievements)
	return snap
}
