package engine

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauscode/anki-gacha/internal/assets"
	"github.com/klauscode/anki-gacha/internal/storage"
)

func newTestService(t *testing.T, assetNames ...string) *Service {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.NewStore(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	imgDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(imgDir, 0o755); err != nil {
		t.Fatalf("mkdir images: %v", err)
	}
	for _, name := range assetNames {
		if err := os.WriteFile(filepath.Join(imgDir, name), []byte("img"), 0o644); err != nil {
			t.Fatalf("write asset %s: %v", name, err)
		}
	}
	pool, err := assets.New(imgDir)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}

	svc, err := NewService(store, pool, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.rng = rand.New(rand.NewSource(1))
	return svc
}

func giveItem(t *testing.T, svc *Service, id string, item storage.OwnedItem) {
	t.Helper()
	svc.state.Collection[id] = &item
}

func setPoints(t *testing.T, svc *Service, points int) {
	t.Helper()
	svc.state.Points = points
}

func TestDebitRejectsOverdraw(t *testing.T) {
	svc := newTestService(t)
	setPoints(t, svc, 30)

	err := svc.debit(50)
	var want *InsufficientFundsError
	if !errors.As(err, &want) {
		t.Fatalf("debit error=%v, want InsufficientFundsError", err)
	}
	if want.Need != 50 || want.Have != 30 {
		t.Fatalf("error fields need=%d have=%d, want 50/30", want.Need, want.Have)
	}
	if svc.Points() != 30 {
		t.Fatalf("points=%d after rejected debit, want 30", svc.Points())
	}
}

func TestGrantXPNormalizesAcrossThreshold(t *testing.T) {
	svc := newTestService(t)
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 1, Rarity: "common", XP: 95, Level: 1, Health: 100})

	res, err := svc.grantXP("a.png", 10)
	if err != nil {
		t.Fatalf("grantXP: %v", err)
	}
	if res.LevelsGained != 1 || res.NewLevel != 2 {
		t.Fatalf("levels gained=%d new level=%d, want 1/2", res.LevelsGained, res.NewLevel)
	}
	if res.BonusPoints != LevelUpBonus {
		t.Fatalf("bonus=%d, want %d", res.BonusPoints, LevelUpBonus)
	}
	item := svc.state.Collection["a.png"]
	if item.Level != 2 || item.XP != 5 {
		t.Fatalf("item level=%d xp=%d, want 2/5", item.Level, item.XP)
	}
	if svc.Points() != LevelUpBonus {
		t.Fatalf("points=%d, want %d", svc.Points(), LevelUpBonus)
	}
}

func TestGrantXPMultipleLevelsInOneGrant(t *testing.T) {
	svc := newTestService(t)
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 1, Rarity: "common", Level: 1, Health: 100})

	res, err := svc.grantXP("a.png", 350)
	if err != nil {
		t.Fatalf("grantXP: %v", err)
	}
	if res.LevelsGained != 2 || res.NewLevel != 3 {
		t.Fatalf("levels gained=%d new level=%d, want 2/3", res.LevelsGained, res.NewLevel)
	}
	if res.BonusPoints != 2*LevelUpBonus {
		t.Fatalf("bonus=%d, want %d", res.BonusPoints, 2*LevelUpBonus)
	}
	item := svc.state.Collection["a.png"]
	if item.Level != 3 || item.XP != 50 {
		t.Fatalf("item level=%d xp=%d, want 3/50", item.Level, item.XP)
	}
}

func TestGrantXPUnknownItemIsNoop(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.grantXP("ghost.png", 100)
	if err != nil {
		t.Fatalf("grantXP: %v", err)
	}
	if res.LevelsGained != 0 {
		t.Fatalf("levels gained=%d for unknown item, want 0", res.LevelsGained)
	}
	if svc.Points() != 0 {
		t.Fatalf("points=%d, want 0", svc.Points())
	}
}

func TestHealthClampsAtFull(t *testing.T) {
	svc := newTestService(t)
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 1, Rarity: "common", Level: 1, Health: 95})

	res, err := svc.applyHealthDelta("a.png", 10)
	if err != nil {
		t.Fatalf("applyHealthDelta: %v", err)
	}
	if !res.Applied || res.Health != 100 {
		t.Fatalf("applied=%v health=%d, want true/100", res.Applied, res.Health)
	}
}

func TestHealthZeroRemovesItemAndClearsBuddy(t *testing.T) {
	svc := newTestService(t)
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 2, Rarity: "rare", Level: 3, Health: 4})
	svc.state.CurrentItem = &storage.BuddyRef{ID: "a.png", Rarity: "rare"}

	res, err := svc.applyHealthDelta("a.png", -5)
	if err != nil {
		t.Fatalf("applyHealthDelta: %v", err)
	}
	if !res.Died {
		t.Fatalf("expected Died=true")
	}
	if _, ok := svc.state.Collection["a.png"]; ok {
		t.Fatalf("expected dead item to be removed")
	}
	if svc.Buddy() != nil {
		t.Fatalf("expected buddy cleared after death")
	}
}

func TestFusionRequiresThreeCopies(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 2, Rarity: "common", Level: 1, Health: 100})

	if _, err := svc.RequestFusion(ctx, "a.png"); !errors.Is(err, ErrInsufficientCopies) {
		t.Fatalf("fusion error=%v, want ErrInsufficientCopies", err)
	}
	if _, err := svc.RequestFusion(ctx, "ghost.png"); !errors.Is(err, ErrInsufficientCopies) {
		t.Fatalf("fusion of unknown item error=%v, want ErrInsufficientCopies", err)
	}
	if svc.state.Collection["a.png"].Count != 2 {
		t.Fatalf("copies changed on failed fusion")
	}
}

func TestFusionAtTopTierKeepsCopies(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 5, Rarity: "legendary", Level: 1, Health: 100})

	if _, err := svc.RequestFusion(ctx, "a.png"); !errors.Is(err, ErrAlreadyMaxRarity) {
		t.Fatalf("fusion error=%v, want ErrAlreadyMaxRarity", err)
	}
	if svc.state.Collection["a.png"].Count != 5 {
		t.Fatalf("copies=%d after max-rarity fusion, want 5", svc.state.Collection["a.png"].Count)
	}
}

func TestFusionAdvancesRarityAndUpdatesBuddy(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 5, Rarity: "common", Level: 2, Health: 80})
	svc.state.CurrentItem = &storage.BuddyRef{ID: "a.png", Rarity: "common"}

	res, err := svc.RequestFusion(ctx, "a.png")
	if err != nil {
		t.Fatalf("RequestFusion: %v", err)
	}
	if res.NewRarity != RarityRare || res.CopiesLeft != 2 || res.Removed {
		t.Fatalf("result=%+v, want rare/2/not removed", res)
	}
	item := svc.state.Collection["a.png"]
	if item.Rarity != "rare" || item.Count != 2 {
		t.Fatalf("item rarity=%q count=%d, want rare/2", item.Rarity, item.Count)
	}
	if b := svc.Buddy(); b == nil || b.Rarity != "rare" {
		t.Fatalf("buddy rarity not updated: %+v", b)
	}
}

func TestFusionOfLastCopiesRemovesEntry(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 3, Rarity: "epic", Level: 1, Health: 100})
	svc.state.CurrentItem = &storage.BuddyRef{ID: "a.png", Rarity: "epic"}

	res, err := svc.RequestFusion(ctx, "a.png")
	if err != nil {
		t.Fatalf("RequestFusion: %v", err)
	}
	if !res.Removed || res.NewRarity != RarityLegendary {
		t.Fatalf("result=%+v, want removed, legendary", res)
	}
	if _, ok := svc.state.Collection["a.png"]; ok {
		t.Fatalf("expected entry removed after fusing last copies")
	}
	if svc.Buddy() != nil {
		t.Fatalf("expected buddy cleared")
	}
}

func TestDailyLoginStreak(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	day1 := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	res, err := svc.EvaluateDailyLogin(ctx, day1)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if !res.Claimed || res.Streak != 1 || res.Reward != 50 {
		t.Fatalf("first claim=%+v, want claimed, streak 1, reward 50", res)
	}

	again, err := svc.EvaluateDailyLogin(ctx, day1.Add(5*time.Hour))
	if err != nil {
		t.Fatalf("same-day claim: %v", err)
	}
	if again.Claimed {
		t.Fatalf("expected same-day claim to grant nothing")
	}
	if svc.Points() != 50 {
		t.Fatalf("points=%d after double claim, want 50", svc.Points())
	}

	day2, err := svc.EvaluateDailyLogin(ctx, day1.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("next-day claim: %v", err)
	}
	if day2.Streak != 2 || day2.Reward != 60 {
		t.Fatalf("next-day claim=%+v, want streak 2 reward 60", day2)
	}

	gapped, err := svc.EvaluateDailyLogin(ctx, day1.AddDate(0, 0, 5))
	if err != nil {
		t.Fatalf("gapped claim: %v", err)
	}
	if gapped.Streak != 1 || gapped.Reward != 50 {
		t.Fatalf("gapped claim=%+v, want streak reset to 1", gapped)
	}
}

func TestPickRarityBoundaries(t *testing.T) {
	chances := map[Rarity]float64{
		RarityCommon:    0.60,
		RarityRare:      0.30,
		RarityEpic:      0.08,
		RarityLegendary: 0.02,
	}
	cases := []struct {
		roll float64
		want Rarity
	}{
		{0.0, RarityCommon},
		{0.60, RarityCommon},
		{0.61, RarityRare},
		{0.90, RarityRare},
		{0.95, RarityEpic},
		{0.99, RarityLegendary},
		{1.5, RarityLegendary},
	}
	for _, tc := range cases {
		if got := PickRarity(chances, tc.roll); got != tc.want {
			t.Fatalf("PickRarity(%.2f)=%s, want %s", tc.roll, got, tc.want)
		}
	}
}

func TestPickRarityDistribution(t *testing.T) {
	chances := map[Rarity]float64{
		RarityCommon:    0.60,
		RarityRare:      0.30,
		RarityEpic:      0.08,
		RarityLegendary: 0.02,
	}
	rng := rand.New(rand.NewSource(42))
	const n = 100000
	counts := map[Rarity]int{}
	for i := 0; i < n; i++ {
		counts[PickRarity(chances, rng.Float64())]++
	}
	for tier, want := range chances {
		got := float64(counts[tier]) / n
		if got < want-0.02 || got > want+0.02 {
			t.Fatalf("tier %s frequency=%.4f, want %.2f ±0.02", tier, got, want)
		}
	}
}

func TestPullHappyPath(t *testing.T) {
	svc := newTestService(t, "a.png")
	ctx := context.Background()
	setPoints(t, svc, 50)
	svc.cfg.Rarities = map[string]storage.RarityConfig{"common": {Chance: 1.0}}

	res, err := svc.RequestPull(ctx)
	if err != nil {
		t.Fatalf("RequestPull: %v", err)
	}
	if res.ItemID != "a.png" || res.Rarity != RarityCommon || res.Copies != 1 {
		t.Fatalf("result=%+v, want a.png/common/1 copy", res)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].ID != "first_pull" {
		t.Fatalf("unlocked=%+v, want first_pull", res.Unlocked)
	}

	item := svc.state.Collection["a.png"]
	if item.Count != 1 || item.Rarity != "common" || item.XP != PullXPBonus || item.Level != 1 || item.Health != 100 {
		t.Fatalf("item=%+v, want count 1, common, xp %d, level 1, hp 100", item, PullXPBonus)
	}
	// 50 spent, 100 achievement reward.
	if svc.Points() != 100 {
		t.Fatalf("points=%d, want 100", svc.Points())
	}
	if b := svc.Buddy(); b == nil || b.ID != "a.png" {
		t.Fatalf("buddy=%+v, want a.png", b)
	}

	setPoints(t, svc, 50)
	res2, err := svc.RequestPull(ctx)
	if err != nil {
		t.Fatalf("second pull: %v", err)
	}
	if res2.Copies != 2 {
		t.Fatalf("copies=%d after second pull, want 2", res2.Copies)
	}
	if len(res2.Unlocked) != 0 {
		t.Fatalf("achievement fired twice: %+v", res2.Unlocked)
	}
}

func TestPullRejectsWhenBroke(t *testing.T) {
	svc := newTestService(t, "a.png")
	setPoints(t, svc, 10)

	_, err := svc.RequestPull(context.Background())
	var funds *InsufficientFundsError
	if !errors.As(err, &funds) {
		t.Fatalf("pull error=%v, want InsufficientFundsError", err)
	}
	if svc.Points() != 10 {
		t.Fatalf("points=%d after failed pull, want 10", svc.Points())
	}
	if len(svc.state.Collection) != 0 {
		t.Fatalf("collection changed on failed pull")
	}
}

func TestPullRejectsEmptyPool(t *testing.T) {
	svc := newTestService(t)
	setPoints(t, svc, 500)

	if _, err := svc.RequestPull(context.Background()); !errors.Is(err, ErrNoAssets) {
		t.Fatalf("pull error=%v, want ErrNoAssets", err)
	}
	if svc.Points() != 500 {
		t.Fatalf("points=%d after failed pull, want 500", svc.Points())
	}
}

func TestReviewRewardsByEase(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 1, Rarity: "common", Level: 1, Health: 50})
	svc.state.CurrentItem = &storage.BuddyRef{ID: "a.png", Rarity: "common"}

	res, err := svc.OnReviewAnswered(ctx, EaseEasy)
	if err != nil {
		t.Fatalf("OnReviewAnswered: %v", err)
	}
	if res.WalletDelta != 10 || res.HealthDelta != 10 || res.XPDelta != 10 {
		t.Fatalf("easy result=%+v, want +10/+10/+10", res)
	}
	item := svc.state.Collection["a.png"]
	if item.Health != 60 || item.XP != 10 {
		t.Fatalf("item hp=%d xp=%d, want 60/10", item.Health, item.XP)
	}
	if svc.Points() != 10 {
		t.Fatalf("points=%d, want 10", svc.Points())
	}

	res, err = svc.OnReviewAnswered(ctx, EaseAgain)
	if err != nil {
		t.Fatalf("OnReviewAnswered again: %v", err)
	}
	if res.WalletDelta != 0 || res.HealthDelta != -5 || res.XPDelta != 0 {
		t.Fatalf("again result=%+v, want 0/-5/0", res)
	}
}

func TestReviewKillsFragileBuddy(t *testing.T) {
	svc := newTestService(t)
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 1, Rarity: "common", Level: 1, Health: 3})
	svc.state.CurrentItem = &storage.BuddyRef{ID: "a.png", Rarity: "common"}

	res, err := svc.OnReviewAnswered(context.Background(), EaseAgain)
	if err != nil {
		t.Fatalf("OnReviewAnswered: %v", err)
	}
	if !res.Died {
		t.Fatalf("expected buddy death")
	}
	if res.XPDelta != 0 {
		t.Fatalf("dead buddy gained xp: %+v", res)
	}
	if svc.Buddy() != nil {
		t.Fatalf("expected buddy cleared")
	}
}

func TestReviewUnknownEaseIsNoop(t *testing.T) {
	svc := newTestService(t)
	setPoints(t, svc, 7)

	res, err := svc.OnReviewAnswered(context.Background(), 9)
	if err != nil {
		t.Fatalf("OnReviewAnswered: %v", err)
	}
	if res.WalletDelta != 0 || res.HealthDelta != 0 {
		t.Fatalf("result=%+v, want no-op", res)
	}
	if svc.Points() != 7 {
		t.Fatalf("points=%d, want 7", svc.Points())
	}
}

func TestReviewWalletDeltaIncludesLevelBonus(t *testing.T) {
	svc := newTestService(t)
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 1, Rarity: "common", XP: 95, Level: 1, Health: 50})
	svc.state.CurrentItem = &storage.BuddyRef{ID: "a.png", Rarity: "common"}

	res, err := svc.OnReviewAnswered(context.Background(), EaseEasy)
	if err != nil {
		t.Fatalf("OnReviewAnswered: %v", err)
	}
	if !res.LeveledUp || res.NewLevel != 2 {
		t.Fatalf("result=%+v, want level up to 2", res)
	}
	if res.WalletDelta != 10+LevelUpBonus {
		t.Fatalf("wallet delta=%d, want %d", res.WalletDelta, 10+LevelUpBonus)
	}
	if svc.Points() != 10+LevelUpBonus {
		t.Fatalf("points=%d, want %d", svc.Points(), 10+LevelUpBonus)
	}
}

func TestLuckyRollChargesUpfront(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.RequestLuckyRoll(ctx); err == nil {
		t.Fatalf("expected insufficient funds on empty wallet")
	}

	setPoints(t, svc, 100)
	res, err := svc.RequestLuckyRoll(ctx)
	if err != nil {
		t.Fatalf("RequestLuckyRoll: %v", err)
	}
	// Whatever the wheel landed on, the wallet moved by prize minus cost.
	want := 100 - LuckyRollCost + res.Points
	if svc.Points() != want {
		t.Fatalf("points=%d after %q, want %d", svc.Points(), res.Outcome, want)
	}
}

func TestLuckyRollXPPrizeGoesToBuddy(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 1, Rarity: "common", Level: 1, Health: 100})
	svc.state.CurrentItem = &storage.BuddyRef{ID: "a.png", Rarity: "common"}

	// Roll until the wheel lands on the XP prize.
	for i := 0; i < 200; i++ {
		setPoints(t, svc, 1000)
		res, err := svc.RequestLuckyRoll(ctx)
		if err != nil {
			t.Fatalf("RequestLuckyRoll #%d: %v", i+1, err)
		}
		if res.XP > 0 {
			if svc.state.Collection["a.png"].XP == 0 && svc.state.Collection["a.png"].Level == 1 {
				t.Fatalf("xp prize did not reach the buddy")
			}
			return
		}
	}
	t.Fatalf("xp outcome never hit in 200 rolls")
}

func TestShopUnknownItem(t *testing.T) {
	svc := newTestService(t)
	setPoints(t, svc, 1000)

	_, err := svc.RequestShopPurchase(context.Background(), "mystery_box")
	if !errors.Is(err, ErrUnknownShopItem) {
		t.Fatalf("purchase error=%v, want ErrUnknownShopItem", err)
	}
	if svc.Points() != 1000 {
		t.Fatalf("points=%d after unknown purchase, want 1000", svc.Points())
	}
}

func TestShopFreePullRefundsCost(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	setPoints(t, svc, 200)

	res, err := svc.RequestShopPurchase(ctx, "free_pull")
	if err != nil {
		t.Fatalf("RequestShopPurchase: %v", err)
	}
	if res.Item.Cost != 150 {
		t.Fatalf("cost=%d, want 150", res.Item.Cost)
	}
	if svc.Points() != 200-150+svc.cfg.PullCost {
		t.Fatalf("points=%d, want %d", svc.Points(), 200-150+svc.cfg.PullCost)
	}
}

func TestShopNightThemeAndRareFlag(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	setPoints(t, svc, 500)

	if _, err := svc.RequestShopPurchase(ctx, "night_theme"); err != nil {
		t.Fatalf("night_theme: %v", err)
	}
	if svc.cfg.Theme != "night" {
		t.Fatalf("theme=%q, want night", svc.cfg.Theme)
	}

	if _, err := svc.RequestShopPurchase(ctx, "rare_pull"); err != nil {
		t.Fatalf("rare_pull: %v", err)
	}
	if svc.cfg.ShopBonus != "rare_pull" {
		t.Fatalf("shop bonus=%q, want rare_pull", svc.cfg.ShopBonus)
	}
}

func TestShopRejectsWhenBroke(t *testing.T) {
	svc := newTestService(t)
	setPoints(t, svc, 50)

	_, err := svc.RequestShopPurchase(context.Background(), "night_theme")
	var funds *InsufficientFundsError
	if !errors.As(err, &funds) {
		t.Fatalf("purchase error=%v, want InsufficientFundsError", err)
	}
	if svc.Points() != 50 {
		t.Fatalf("points=%d after failed purchase, want 50", svc.Points())
	}
}

func TestSetBuddyRequiresOwnership(t *testing.T) {
	svc := newTestService(t, "a.png")

	if _, err := svc.SetBuddy("a.png"); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("SetBuddy error=%v, want ErrNotOwned", err)
	}

	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 1, Rarity: "rare", Level: 1, Health: 100})
	ref, err := svc.SetBuddy("a.png")
	if err != nil {
		t.Fatalf("SetBuddy: %v", err)
	}
	if ref.ID != "a.png" || ref.Rarity != "rare" || ref.Path == "" {
		t.Fatalf("buddy=%+v, want a.png/rare with path", ref)
	}
}

func TestToggleFavorite(t *testing.T) {
	svc := newTestService(t)
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 1, Rarity: "common", Level: 1, Health: 100})

	on, err := svc.ToggleFavorite("a.png")
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if !on {
		t.Fatalf("expected favorite on")
	}
	off, err := svc.ToggleFavorite("a.png")
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if off {
		t.Fatalf("expected favorite off")
	}
	if got, _ := svc.ToggleFavorite("ghost.png"); got {
		t.Fatalf("unknown item toggled to true")
	}
}

func TestActiveEvent(t *testing.T) {
	if got := ActiveEvent(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)); got != "Holiday Event" {
		t.Fatalf("event on Dec 25=%q, want Holiday Event", got)
	}
	if got := ActiveEvent(time.Date(2026, 12, 19, 0, 0, 0, 0, time.UTC)); got != "" {
		t.Fatalf("event on Dec 19=%q, want none", got)
	}
	if got := ActiveEvent(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)); got != "" {
		t.Fatalf("event in June=%q, want none", got)
	}
}

func TestUpdateSettingsValidatesPullCost(t *testing.T) {
	svc := newTestService(t)

	bad := 0
	if err := svc.UpdateSettings(SettingsUpdate{PullCost: &bad}); err == nil {
		t.Fatalf("expected error for pull cost 0")
	}
	if svc.cfg.PullCost != storage.DefaultPullCost {
		t.Fatalf("pull cost changed by rejected update")
	}

	cost := 75
	show := false
	if err := svc.UpdateSettings(SettingsUpdate{PullCost: &cost, ShowDuringReview: &show}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if svc.cfg.PullCost != 75 {
		t.Fatalf("pull cost=%d, want 75", svc.cfg.PullCost)
	}
	if svc.cfg.ShowDuringReview == nil || *svc.cfg.ShowDuringReview {
		t.Fatalf("show during review not persisted as false")
	}
}

func TestUpdateSettingsFolderRescansPool(t *testing.T) {
	svc := newTestService(t)
	if !svc.Pool().Empty() {
		t.Fatalf("expected empty pool")
	}

	newDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(newDir, "b.png"), []byte("img"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}
	if err := svc.UpdateSettings(SettingsUpdate{Folder: &newDir}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if svc.Pool().Size() != 1 {
		t.Fatalf("pool size=%d after folder change, want 1", svc.Pool().Size())
	}
	if svc.cfg.HusbandoFolder != newDir {
		t.Fatalf("folder=%q, want %q", svc.cfg.HusbandoFolder, newDir)
	}
}

func TestSnapshotSortsByRarityThenID(t *testing.T) {
	svc := newTestService(t)
	giveItem(t, svc, "z.png", storage.OwnedItem{Count: 1, Rarity: "common", Level: 1, Health: 100})
	giveItem(t, svc, "a.png", storage.OwnedItem{Count: 2, Rarity: "legendary", Level: 1, Health: 100})
	giveItem(t, svc, "m.png", storage.OwnedItem{Count: 1, Rarity: "common", Level: 1, Health: 100})
	svc.state.CurrentItem = &storage.BuddyRef{ID: "a.png", Rarity: "legendary"}

	snap := svc.Snapshot()
	gotOrder := []string{snap.Items[0].ID, snap.Items[1].ID, snap.Items[2].ID}
	want := []string{"m.png", "z.png", "a.png"}
	for i := range want {
		if gotOrder[i] != want[i] {
			t.Fatalf("order=%v, want %v", gotOrder, want)
		}
	}
	if snap.TotalCopies != 4 {
		t.Fatalf("total copies=%d, want 4", snap.TotalCopies)
	}
	if !snap.Items[2].IsBuddy {
		t.Fatalf("buddy flag not set on a.png")
	}
}

func TestServiceReloadsPersistedState(t *testing.T) {
	svc := newTestService(t, "a.png")
	ctx := context.Background()
	setPoints(t, svc, 50)
	svc.cfg.Rarities = map[string]storage.RarityConfig{"common": {Chance: 1.0}}

	if _, err := svc.RequestPull(ctx); err != nil {
		t.Fatalf("RequestPull: %v", err)
	}

	again, err := NewService(svc.store, svc.pool, nil)
	if err != nil {
		t.Fatalf("reload service: %v", err)
	}
	if again.Points() != svc.Points() {
		t.Fatalf("reloaded points=%d, want %d", again.Points(), svc.Points())
	}
	item, ok := again.state.Collection["a.png"]
	if !ok || item.Count != 1 {
		t.Fatalf("reloaded item=%+v, want count 1", item)
	}
	if b := again.Buddy(); b == nil || b.ID != "a.png" {
		t.Fatalf("reloaded buddy=%+v, want a.png", b)
	}
}

func TestHistoryAggregatesLedger(t *testing.T) {
	svc := newTestService(t, "a.png")
	ctx := context.Background()

	ledger, err := storage.OpenLedger(ctx, svc.store.LedgerPath())
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	defer ledger.Close()
	svc.ledger = ledger

	setPoints(t, svc, 50)
	svc.cfg.Rarities = map[string]storage.RarityConfig{"common": {Chance: 1.0}}
	if _, err := svc.RequestPull(ctx); err != nil {
		t.Fatalf("RequestPull: %v", err)
	}
	if _, err := svc.EvaluateDailyLogin(ctx, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("daily: %v", err)
	}

	hist, err := svc.History(ctx, 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if hist.Pulls != 1 {
		t.Fatalf("pulls=%d, want 1", hist.Pulls)
	}
	if hist.Spent != 50 || hist.Earned != 50 {
		t.Fatalf("earned=%d spent=%d, want 50/50", hist.Earned, hist.Spent)
	}
	if len(hist.Recent) != 2 {
		t.Fatalf("recent=%d events, want 2", len(hist.Recent))
	}
	// Newest first.
	if hist.Recent[0].Kind != storage.EventDaily {
		t.Fatalf("latest event kind=%q, want daily", hist.Recent[0].Kind)
	}
}

func TestHistoryWithoutLedger(t *testing.T) {
	svc := newTestService(t)

	hist, err := svc.History(context.Background(), 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if hist.Pulls != 0 || hist.Earned != 0 || hist.Spent != 0 || len(hist.Recent) != 0 {
		t.Fatalf("expected empty history, got %+v", hist)
	}
}
