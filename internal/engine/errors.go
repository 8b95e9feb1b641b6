package engine

import (
	"errors"
	"fmt"
)

// Recoverable economy errors. They leave state unchanged and are meant to be
// shown to the user, never to abort the program.
var (
	ErrInsufficientCopies = errors.New("not enough copies to fuse")
	ErrAlreadyMaxRarity   = errors.New("already at the highest rarity")
	ErrNoAssets           = errors.New("no images found in the assets folder")
	ErrNotOwned           = errors.New("item is not in the collection")
	ErrUnknownShopItem    = errors.New("unknown shop item")
)

// InsufficientFundsError is returned by any operation whose cost exceeds the
// wallet. No points are deducted when it is returned.
type InsufficientFundsError struct {
	Need int
	Have int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("not enough points: need %d, have %d", e.Need, e.Have)
}
