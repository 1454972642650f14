package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagPreset string
	flagSound  bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round of breakout",
	Long: `Start a breakout session in the terminal.

Without --preset a title menu lets you pick the difficulty and view
high scores. With --preset the round starts right away.

Controls:
  Left/Right, A/D  - Move paddle (hold)
  Mouse            - Paddle follows the pointer, click to launch
  Space/Enter      - Launch ball, restart after the round ends
  P                - Pause
  Esc              - Back to menu
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy   - 5 lives, wider paddle, slower ball
  normal - Configured values
  hard   - 2 lives, narrower paddle, faster ball

Examples:
  breakout play
  breakout play --preset easy --sound
  breakout play --config ./my-breakout.yaml
  breakout play --assets ./sprites --log-file breakout.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with your scores")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(nil, "breakout")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	opts, err := loadGameOptions(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts.Player = flagPlayer

	// Fail before the TUI starts if the preset does not fit the loaded config
	preset := config.Preset(flagPreset)
	if preset != "" {
		trial := opts.Breakout
		if err := config.ApplyPreset(&trial, preset); err != nil {
			if opts.Store != nil {
				opts.Store.Close()
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if flagSound {
		if err := audio.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			opts.Sound = true
			defer audio.Close()
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(opts, cfg, preset)

	// Close store before potential exit
	if opts.Store != nil {
		opts.Store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
