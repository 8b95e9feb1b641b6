package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/klauscode/anki-gacha/internal/tui"
)

func newCollectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collection",
		Aliases: []string{"col"},
		Short:   "Browse the collection (interactive)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunCollection(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
