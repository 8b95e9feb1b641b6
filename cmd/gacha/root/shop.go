package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klauscode/anki-gacha/internal/engine"
	"github.com/klauscode/anki-gacha/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop [item]",
		Short: "Browse the shop, or buy an item by key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, ui.Heading(ui.IconShop, "Shop"))
				fmt.Fprintln(out, ui.LabelValue("Points", svc.Points()))
				fmt.Fprintln(out, "")
				for _, item := range engine.ShopCatalog() {
					fmt.Fprintf(out, "- %s %s: %s %s\n",
						ui.Key.Render(item.Key),
						item.Name,
						item.Description,
						ui.Muted.Render(fmt.Sprintf("(%d points)", item.Cost)))
				}
				return nil
			}

			res, err := svc.RequestShopPurchase(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s: %s\n", ui.IconShop, ui.Good.Render("Bought "+res.Item.Name), res.Effect)
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d points left", svc.Points())))
			return nil
		},
	}

	return cmd
}
