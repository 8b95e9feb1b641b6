package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/klauscode/anki-gacha/internal/storage"
)

type ShopItem struct {
	Key         string
	Name        string
	Description string
	Cost        int
}

// ShopCatalog returns the fixed set of purchasable effects.
func ShopCatalog() []ShopItem {
	return []ShopItem{
		{Key: "rare_pull", Name: "Guaranteed Rare Pull", Description: "Your next pull is guaranteed to be at least Rare.", Cost: 200},
		{Key: "free_pull", Name: "Free Pull Ticket", Description: "Perform an extra free pull.", Cost: 150},
		{Key: "night_theme", Name: "Night Theme", Description: "Unlock a night mode cosmetic.", Cost: 100},
	}
}

type PurchaseResult struct {
	Item   ShopItem
	Effect string
}

// RequestShopPurchase debits the item's cost and applies its effect. The
// debit happens first; an unaffordable purchase changes nothing.
func (s *Service) RequestShopPurchase(ctx context.Context, key string) (*PurchaseResult, error) {
	var item *ShopItem
	for _, it := range ShopCatalog() {
		if it.Key == key {
			item = &it
			break
		}
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShopItem, key)
	}
	if err := s.debit(item.Cost); err != nil {
		return nil, err
	}

	var effect string
	switch item.Key {
	case "rare_pull":
		// TODO: consume this flag in RequestPull; nothing reads it yet.
		s.cfg.ShopBonus = "rare_pull"
		if err := s.saveConfig(); err != nil {
			return nil, err
		}
		effect = "Guaranteed rare flagged for your next pull."
	case "free_pull":
		if err := s.credit(s.cfg.PullCost); err != nil {
			return nil, err
		}
		effect = fmt.Sprintf("Refunded %d points for a free pull.", s.cfg.PullCost)
	case "night_theme":
		s.cfg.Theme = "night"
		if err := s.saveConfig(); err != nil {
			return nil, err
		}
		effect = "Night theme unlocked."
	}

	s.record(ctx, storage.Event{
		Kind:        storage.EventPurchase,
		PointsDelta: -item.Cost,
		Detail:      item.Key,
	})
	slog.Debug("shop purchase", "item", item.Key, "cost", item.Cost)
	return &PurchaseResult{Item: *item, Effect: effect}, nil
}
