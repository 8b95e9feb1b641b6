package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klauscode/anki-gacha/internal/engine"
	"github.com/klauscode/anki-gacha/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	var (
		folder        string
		pullCost      int
		rewardCorrect int
		rewardHard    int
		rewardWrong   int
		showReview    bool
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var upd engine.SettingsUpdate
			flags := cmd.Flags()
			if flags.Changed("folder") {
				upd.Folder = &folder
			}
			if flags.Changed("pull-cost") {
				upd.PullCost = &pullCost
			}
			if flags.Changed("reward-correct") {
				upd.ReviewCorrect = &rewardCorrect
			}
			if flags.Changed("reward-hard") {
				upd.ReviewHard = &rewardHard
			}
			if flags.Changed("reward-wrong") {
				upd.ReviewWrong = &rewardWrong
			}
			if flags.Changed("show-during-review") {
				upd.ShowDuringReview = &showReview
			}

			out := cmd.OutOrStdout()
			changed := upd != (engine.SettingsUpdate{})
			if changed {
				if err := svc.UpdateSettings(upd); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Good.Render("Settings saved."))
			}

			cfg := svc.ConfigDoc()
			fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Settings"))
			fmt.Fprintln(out, ui.LabelValue("Folder", cfg.HusbandoFolder))
			fmt.Fprintln(out, ui.LabelValue("Pull cost", cfg.PullCost))
			fmt.Fprintln(out, ui.LabelValue("Reward correct", cfg.Rewards.ReviewCorrect))
			fmt.Fprintln(out, ui.LabelValue("Reward hard", cfg.Rewards.ReviewHard))
			fmt.Fprintln(out, ui.LabelValue("Reward wrong", cfg.Rewards.ReviewWrong))
			if cfg.ShowDuringReview != nil {
				fmt.Fprintln(out, ui.LabelValue("Show during review", *cfg.ShowDuringReview))
			}
			if cfg.Theme != "" {
				fmt.Fprintln(out, ui.LabelValue("Theme", cfg.Theme))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "", "image folder to pull from")
	cmd.Flags().IntVar(&pullCost, "pull-cost", 0, "points per gacha pull")
	cmd.Flags().IntVar(&rewardCorrect, "reward-correct", 0, "points for a correct review")
	cmd.Flags().IntVar(&rewardHard, "reward-hard", 0, "points for a hard review")
	cmd.Flags().IntVar(&rewardWrong, "reward-wrong", 0, "points for a wrong review")
	cmd.Flags().BoolVar(&showReview, "show-during-review", true, "show the buddy while reviewing")

	return cmd
}
