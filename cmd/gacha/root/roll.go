package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klauscode/anki-gacha/internal/engine"
	"github.com/klauscode/anki-gacha/internal/ui"
)

func newRollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roll",
		Short: fmt.Sprintf("Spin the lucky wheel (%d points)", engine.LuckyRollCost),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.RequestLuckyRoll(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case res.Points > 0:
				fmt.Fprintf(out, "%s %s +%d points\n", ui.IconDice, ui.Gold.Render(res.Outcome+"!"), res.Points)
			case res.XP > 0:
				fmt.Fprintf(out, "%s %s +%d xp to your buddy\n", ui.IconDice, ui.Good.Render(res.Outcome+"!"), res.XP)
				if res.LeveledUp {
					fmt.Fprintln(out, ui.BadgeLevelUp)
				}
			default:
				fmt.Fprintf(out, "%s %s\n", ui.IconDice, ui.Muted.Render(res.Outcome+". No reward."))
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d points left", svc.Points())))
			return nil
		},
	}

	return cmd
}
