package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klauscode/anki-gacha/internal/ui"
)

func newFuseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuse <item>",
		Short: "Fuse 3 copies of an item to raise its rarity",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.RequestFusion(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s is now %s\n", ui.IconFuse, res.ItemID, ui.RarityBadge(res.NewRarity))
			if res.Removed {
				fmt.Fprintln(out, ui.Warn.Render("The fusion consumed the last copies; the item left your collection."))
			} else {
				fmt.Fprintf(out, "%s\n", ui.Muted.Render(fmt.Sprintf("%d copies left", res.CopiesLeft)))
			}
			return nil
		},
	}

	return cmd
}
