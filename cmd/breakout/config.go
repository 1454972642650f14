package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	flagCheck        string
	flagConfigPreset string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game configuration",
	Long: `Print the built-in configuration as YAML, ready to be copied to
~/.arcade/configs/breakout.yaml and edited. Keys left out of a custom file
keep their default values.

Examples:
  breakout config > ~/.arcade/configs/breakout.yaml
  breakout config --preset hard
  breakout config --check ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this config file and report every problem")
	configCmd.Flags().StringVar(&flagConfigPreset, "preset", "", "Print the configuration with a difficulty preset applied")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagCheck != "" {
		checkConfig(flagCheck)
		return
	}

	if flagConfigPreset == "" {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg := config.Default()
	if err := config.ApplyPreset(&cfg, config.Preset(flagConfigPreset)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func checkConfig(path string) {
	cfg, err := config.LoadFile(path)
	if err == nil {
		err = cfg.Validate()
	}
	if err == nil {
		fmt.Printf("%s: ok\n", path)
		return
	}

	fmt.Fprintf(os.Stderr, "%s:\n", path)
	// errors.Join keeps one violation per line
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			fmt.Fprintf(os.Stderr, "  - %v\n", e)
		}
	} else {
		fmt.Fprintf(os.Stderr, "  - %v\n", err)
	}
	os.Exit(1)
}
