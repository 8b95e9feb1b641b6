package storage

// Field names and file layout match the original addon documents so an
// existing data directory keeps working.

type ConfigDoc struct {
	PullCost         int                     `json:"pullCost"`
	Rewards          RewardsConfig           `json:"rewards"`
	HusbandoFolder   string                  `json:"husbandoFolder"`
	Rarities         map[string]RarityConfig `json:"rarities"`
	ShowDuringReview *bool                   `json:"showDuringReview"`
	ShopBonus        string                  `json:"shop_bonus,omitempty"`
	Theme            string                  `json:"theme,omitempty"`
}

type RewardsConfig struct {
	NewCard       int            `json:"newCard"`
	ReviewCorrect int            `json:"reviewCorrect"`
	ReviewHard    int            `json:"reviewHard"`
	ReviewWrong   int            `json:"reviewWrong"`
	Streak        map[string]int `json:"streak"`
}

type RarityConfig struct {
	Chance float64 `json:"chance"`
	Color  string  `json:"color"`
}

type CollectionDoc struct {
	Collection   map[string]*OwnedItem `json:"collection"`
	Points       int                   `json:"points"`
	LoginStreak  int                   `json:"login_streak"`
	LastLogin    string                `json:"last_login_date"`
	Achievements map[string]bool       `json:"achievements"`
	Inventory    map[string]int        `json:"inventory"`
	CurrentItem  *BuddyRef             `json:"currentItem,omitempty"`
}

type OwnedItem struct {
	Count    int    `json:"count"`
	Rarity   string `json:"rarity"`
	Favorite bool   `json:"favorite"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
	Health   int    `json:"hp"`
}

// BuddyRef is a weak reference to a collection entry; the entry may have been
// removed since the reference was written.
type BuddyRef struct {
	ID     string `json:"id"`
	Rarity string `json:"rarity"`
	Path   string `json:"path,omitempty"`
}

const DefaultPullCost = 50

func DefaultRarities() map[string]RarityConfig {
	return map[string]RarityConfig{
		"common":    {Chance: 0.60, Color: "#A0A0A0"},
		"rare":      {Chance: 0.30, Color: "#4169E1"},
		"epic":      {Chance: 0.08, Color: "#9932CC"},
		"legendary": {Chance: 0.02, Color: "#FFD700"},
	}
}

func DefaultRewards() RewardsConfig {
	return RewardsConfig{
		NewCard:       1,
		ReviewCorrect: 1,
		ReviewHard:    1,
		ReviewWrong:   0,
		Streak: map[string]int{
			"5": 5, "10": 10, "25": 25, "50": 50, "100": 100,
		},
	}
}

func DefaultConfig() *ConfigDoc {
	show := true
	return &ConfigDoc{
		PullCost:         DefaultPullCost,
		Rewards:          DefaultRewards(),
		Rarities:         DefaultRarities(),
		ShowDuringReview: &show,
	}
}

func DefaultCollection() *CollectionDoc {
	return &CollectionDoc{
		Collection:   map[string]*OwnedItem{},
		Achievements: map[string]bool{},
		Inventory:    map[string]int{},
	}
}

// normalize applies defaulting rules once at load time, so the rest of the
// program never sees a partially-filled document.
func (c *ConfigDoc) normalize() {
	if c.PullCost <= 0 {
		c.PullCost = DefaultPullCost
	}
	if len(c.Rarities) == 0 {
		c.Rarities = DefaultRarities()
	}
	if c.Rewards.Streak == nil {
		c.Rewards.Streak = DefaultRewards().Streak
	}
	if c.ShowDuringReview == nil {
		show := true
		c.ShowDuringReview = &show
	}
}

func (d *CollectionDoc) normalize() {
	if d.Collection == nil {
		d.Collection = map[string]*OwnedItem{}
	}
	if d.Achievements == nil {
		d.Achievements = map[string]bool{}
	}
	if d.Inventory == nil {
		d.Inventory = map[string]int{}
	}
	if d.Points < 0 {
		d.Points = 0
	}
	for _, item := range d.Collection {
		if item.Count < 1 {
			item.Count = 1
		}
		if item.Level < 1 {
			item.Level = 1
		}
		// A stored health of 0 means the field was never written; dead
		// entries are deleted the moment they die.
		if item.Health <= 0 || item.Health > 100 {
			item.Health = 100
		}
	}
	// Drop a buddy reference whose entry no longer exists.
	if d.CurrentItem != nil {
		if _, ok := d.Collection[d.CurrentItem.ID]; !ok {
			d.CurrentItem = nil
		}
	}
}
