package main

import (
	"fmt"
	"os"

	"github.com/Conceptual-Machines/magda-harmony/cmd/harmony/commands"
	"github.com/Conceptual-Machines/magda-harmony/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "harmony",
	Short: "Harmony - Roman-numeral chord engine",
	Long: `Harmony - resolve, transform and analyze chords in any of the seven modes.

Available commands:
  chord      - Resolve Roman numerals to chords
  transform  - Extend, re-voice, suspend or transpose a chord
  subs       - List substitutions for a chord
  score      - Score a chord progression from 0 to 100
  presets    - Score well-known progressions in the current key
  layout     - Generate the hexagonal chord map
  scale      - Show a key's scale and diatonic triads
  circle     - Show the circle of fifths
  voice      - Voice chords as MIDI note numbers

Examples:
  harmony chord V7 bVII --key C
  harmony transform ii --op extend --arg 9
  harmony subs I --key A --mode minor --format yaml
  harmony score I IV V I
  harmony layout --key G --format toml
  harmony voice I IV V --octave 3`,
	SilenceUsage: true,
}

func init() {
	// .env supplies DEFAULT_KEY_ROOT / DEFAULT_KEY_MODE the same way it does for the server
	_ = godotenv.Load()
	cfg := config.Load()

	commands.AddGlobalFlags(rootCmd, cfg)

	rootCmd.AddCommand(commands.ChordCmd)
	rootCmd.AddCommand(commands.TransformCmd)
	rootCmd.AddCommand(commands.SubsCmd)
	rootCmd.AddCommand(commands.ScoreCmd)
	rootCmd.AddCommand(commands.PresetsCmd)
	rootCmd.AddCommand(commands.LayoutCmd)
	rootCmd.AddCommand(commands.ScaleCmd)
	rootCmd.AddCommand(commands.CircleCmd)
	rootCmd.AddCommand(commands.VoiceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
