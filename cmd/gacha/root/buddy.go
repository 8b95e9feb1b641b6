package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klauscode/anki-gacha/internal/engine"
	"github.com/klauscode/anki-gacha/internal/ui"
)

func newBuddyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buddy [item]",
		Short: "Show or set the current buddy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				ref, err := svc.SetBuddy(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s is now your buddy.\n", ui.IconHeart, ref.ID)
				return nil
			}

			snap := svc.Snapshot()
			if snap.Buddy == nil {
				fmt.Fprintln(out, ui.Muted.Render("No buddy set. Pull a card or pick one: gacha buddy <item>"))
				return nil
			}
			for _, item := range snap.Items {
				if !item.IsBuddy {
					continue
				}
				fmt.Fprintf(out, "%s %s %s\n", ui.IconHeart, ui.RarityBadge(item.Rarity), item.ID)
				fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (xp %d/%d)", item.Level, item.XP, engine.XPToNext(item.Level))))
				fmt.Fprintln(out, ui.LabelValue("Health", ui.HealthText(item.Health)))
				fmt.Fprintln(out, ui.LabelValue("Copies", item.Count))
			}
			return nil
		},
	}

	return cmd
}
