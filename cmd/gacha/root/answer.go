package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/klauscode/anki-gacha/internal/ui"
)

func newAnswerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "answer <ease>",
		Short: "Record an answered card (1=Again 2=Hard 3=Good 4=Easy)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("ease is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("ease must be an integer")
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

			ease, _ := strconv.Atoi(args[0])
			res, err := svc.OnReviewAnswered(ctx, ease)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.WalletDelta != 0 {
				fmt.Fprintf(out, "%s %+d points (total %d)\n", ui.IconPoints, res.WalletDelta, svc.Points())
			}
			if res.BuddyID == "" {
				fmt.Fprintln(out, ui.Muted.Render("No buddy set; only points were awarded."))
				return nil
			}
			if res.Died {
				fmt.Fprintf(out, "%s %s\n", ui.IconSkull, ui.Bad.Render(res.BuddyID+" has died and was removed from your collection."))
				return nil
			}
			fmt.Fprintf(out, "%s %s: hp %+d, xp %+d\n", ui.IconHeart, res.BuddyID, res.HealthDelta, res.XPDelta)
			if res.LeveledUp {
				fmt.Fprintf(out, "%s %s reached level %d!\n", ui.BadgeLevelUp, res.BuddyID, res.NewLevel)
			}
			return nil
		},
	}

	return cmd
}
