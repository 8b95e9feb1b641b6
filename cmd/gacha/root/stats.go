package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klauscode/anki-gacha/internal/engine"
	"github.com/klauscode/anki-gacha/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Wallet, streak, achievements and economy history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			snap := svc.Snapshot()

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Stats"))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%s %d", ui.IconPoints, snap.Points)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d days", snap.LoginStreak)))
			fmt.Fprintln(out, ui.LabelValue("Collection", fmt.Sprintf("%d items (%d copies)", len(snap.Items), snap.TotalCopies)))
			for _, item := range snap.Items {
				if !item.IsBuddy {
					continue
				}
				buddy := fmt.Sprintf("%s, level %d (xp %d/%d), hp %s",
					item.ID, item.Level, item.XP, engine.XPToNext(item.Level), ui.HealthText(item.Health))
				fmt.Fprintln(out, ui.LabelValue("Buddy", buddy))
			}
			if len(snap.Achievements) > 0 {
				fmt.Fprintln(out, ui.LabelValue("Achievements", len(snap.Achievements)))
				for _, id := range snap.Achievements {
					fmt.Fprintf(out, "  %s %s\n", ui.IconStar, id)
				}
			}

			hist, err := svc.History(ctx, recent)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.H2.Render("History"))
			fmt.Fprintln(out, ui.LabelValue("Earned", ui.Good.Render(fmt.Sprintf("+%d", hist.Earned))))
			fmt.Fprintln(out, ui.LabelValue("Spent", ui.Bad.Render(fmt.Sprintf("-%d", hist.Spent))))
			fmt.Fprintln(out, ui.LabelValue("Pulls", hist.Pulls))
			for _, e := range hist.Recent {
				delta := ""
				switch {
				case e.PointsDelta > 0:
					delta = ui.Good.Render(fmt.Sprintf(" +%d", e.PointsDelta))
				case e.PointsDelta < 0:
					delta = ui.Bad.Render(fmt.Sprintf(" %d", e.PointsDelta))
				}
				line := fmt.Sprintf("  %s  %s", e.OccurredAt.Local().Format("2006-01-02 15:04"), e.Kind)
				if e.ItemID != "" {
					line += " " + e.ItemID
				}
				fmt.Fprintln(out, ui.Muted.Render(line)+delta)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 10, "how many recent events to list")

	return cmd
}
