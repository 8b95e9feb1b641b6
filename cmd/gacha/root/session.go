package root

import (
	"context"

	"github.com/klauscode/anki-gacha/internal/assets"
	"github.com/klauscode/anki-gacha/internal/config"
	"github.com/klauscode/anki-gacha/internal/engine"
	"github.com/klauscode/anki-gacha/internal/storage"
)

// openService wires the store, asset pool, and history ledger into the engine
// facade for one command invocation.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	env, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	dir := env.DataDir
	if dir == "" {
		dir, err = storage.DefaultDataDir()
		if err != nil {
			return nil, nil, err
		}
	}
	store, err := storage.NewStore(dir)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	pool, err := assets.New(cfg.HusbandoFolder)
	if err != nil {
		return nil, nil, err
	}
	ledger, err := storage.OpenLedger(ctx, store.LedgerPath())
	if err != nil {
		return nil, nil, err
	}
	svc, err := engine.NewService(store, pool, ledger)
	if err != nil {
		_ = ledger.Close()
		return nil, nil, err
	}
	cleanup := func() {
		_ = ledger.Close()
	}
	return svc, cleanup, nil
}
