package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/assets"
	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Flags shared by play and serve.
var (
	flagConfig  string
	flagAssets  string
	flagSprites string
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with PNG sprite sheets for colors")
	cmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to sprite atlas YAML (default: built-in)")
}

// loadGameOptions loads the configuration, skin and score store.
// A bad configuration is fatal; a missing store or sprite sheet is not.
func loadGameOptions(logger *log.Logger) (tui.GameOptions, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return tui.GameOptions{}, err
	}

	skin, err := loadSkin(logger)
	if err != nil {
		return tui.GameOptions{}, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	return tui.GameOptions{
		Breakout: cfg,
		Skin:     skin,
		Store:    store,
		Logger:   logger,
	}, nil
}

// loadSkin derives the skin from --assets, or returns the built-in one.
func loadSkin(logger *log.Logger) (breakout.Skin, error) {
	skin := breakout.DefaultSkin()
	if flagAssets == "" {
		return skin, nil
	}

	atlas, err := assets.LoadAtlas(flagSprites)
	if err != nil {
		return skin, fmt.Errorf("cannot load sprite atlas: %w", err)
	}
	provider := assets.NewProvider(flagAssets, atlas, logger.WithPrefix("assets"))
	return assets.BuildSkin(atlas, provider, skin), nil
}
