package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/klauscode/anki-gacha/internal/ui"
)

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Claim the daily login reward",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.EvaluateDailyLogin(ctx, time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !res.Claimed {
				fmt.Fprintf(out, "%s %s\n", ui.IconCalen, ui.Muted.Render(fmt.Sprintf("Already claimed today (streak: %d days).", res.Streak)))
				return nil
			}
			fmt.Fprintf(out, "%s %s (streak: %d days)\n", ui.IconCalen, ui.Gold.Render(fmt.Sprintf("Daily reward: +%d points!", res.Reward)), res.Streak)
			return nil
		},
	}

	return cmd
}
