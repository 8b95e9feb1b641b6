package root

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klauscode/anki-gacha/internal/config"
	"github.com/klauscode/anki-gacha/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "gacha",
	Short:         "Gacha rewards for your flashcard reviews",
	Long:          "anki-gacha turns answered flashcards into points to spend on card pulls, fusions, and a buddy that levels up (and dies) with your study habits.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	setupLogging()

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAnswerCmd(),
		newPullCmd(),
		newFuseCmd(),
		newRollCmd(),
		newShopCmd(),
		newDailyCmd(),
		newBuddyCmd(),
		newStatsCmd(),
		newCollectionCmd(),
		newSettingsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

// setupLogging configures slog on stderr so stdout stays clean for command
// output. The level comes from GACHA_LOG_LEVEL.
func setupLogging() {
	level := slog.LevelWarn
	if cfg, err := config.Load(); err == nil {
		switch strings.ToLower(cfg.LogLevel) {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
