package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klauscode/anki-gacha/internal/ui"
)

func newPullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Spend points on a gacha pull",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.RequestPull(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s  %s\n", ui.IconCard, ui.RarityBadge(res.Rarity), res.ItemID)
			if res.Copies == 1 {
				fmt.Fprintln(out, ui.Good.Render("First pull!"))
			} else {
				fmt.Fprintf(out, "You now have %d copies.\n", res.Copies)
			}
			for _, u := range res.Unlocked {
				fmt.Fprintf(out, "%s %s (+%d points)\n", ui.IconTrophy, ui.Gold.Render("Achievement unlocked: "+u.Name), u.Reward)
			}
			if res.EventName != "" {
				fmt.Fprintf(out, "%s %s\n", ui.IconSparkle, ui.Warn.Render(res.EventName+" is active!"))
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d points left", svc.Points())))
			return nil
		},
	}

	return cmd
}
