// pong is a two-player Pong clone.
//
// Usage:
//
//	pong [--variant full|dual|single|blank] [--config DIR] [--debug] [--watch] [--mute]
//
// Player 1 moves with W/S, player 2 with the arrow keys. Escape quits.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/prefabs"
	"github.com/spf13/cobra"
)

var (
	flagVariant  string
	flagConfig   string
	flagDebug    bool
	flagWatch    bool
	flagMute     bool
	flagLogLevel string
)

func main() {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	}))

	if err := rootCmd.Execute(); err != nil {
		log.Fatal("pong exited", "err", err)
	}
}

var rootCmd = &cobra.Command{
	Use:           "pong",
	Short:         "Two-player Pong",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagVariant, "variant", string(VariantFull), "game variant: full, dual, single or blank")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "directory of prefab overrides (default ./prefabs)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "draw collision boxes and frame stats")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload game.yaml when it changes on disk")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "disable sound")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func run() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	variant, err := ParseVariant(flagVariant)
	if err != nil {
		return err
	}
	prefabs.SetDir(flagConfig)

	game, err := NewGame(Options{Variant: variant, Debug: flagDebug, Mute: flagMute})
	if err != nil {
		return err
	}
	defer game.Close()

	if flagWatch {
		if err := game.Watch(prefabs.Dir()); err != nil {
			log.Warn("hot reload disabled", "err", err)
		}
	}

	ebiten.SetWindowSize(game.spec.Window.Width, game.spec.Window.Height)
	ebiten.SetWindowTitle(game.spec.Window.Title)

	return ebiten.RunGame(game)
}
