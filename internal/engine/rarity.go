package engine

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns the tiers in order from lowest to highest. This order
// is the tie-break order for weighted draws and the display sort order.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

// Next returns the tier one step up, or false at the top.
func (r Rarity) Next() (Rarity, bool) {
	tiers := AllRarities()
	for i, t := range tiers {
		if t == r && i+1 < len(tiers) {
			return tiers[i+1], true
		}
	}
	return r, false
}

// Index returns the tier's position in the display order. Unknown tiers sort
// after the known ones.
func (r Rarity) Index() int {
	for i, t := range AllRarities() {
		if t == r {
			return i
		}
	}
	return len(AllRarities())
}

func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// PickRarity draws a tier from the weighted table using roll in [0,1). Tiers
// are walked in AllRarities order, accumulating weights; the first tier whose
// running total reaches the roll wins. If rounding leaves the roll above the
// total weight, the last tier is returned rather than an error.
func PickRarity(chances map[Rarity]float64, roll float64) Rarity {
	tiers := AllRarities()
	cumulative := 0.0
	for _, t := range tiers {
		cumulative += chances[t]
		if roll <= cumulative {
			return t
		}
	}
	return tiers[len(tiers)-1]
}
