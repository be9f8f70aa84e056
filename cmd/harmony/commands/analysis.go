package commands

import (
	"fmt"

	"github.com/Conceptual-Machines/magda-harmony/internal/models"
	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
	"github.com/spf13/cobra"
)

// SubsCmd lists every substitution for one numeral
var SubsCmd = &cobra.Command{
	Use:   "subs <numeral>",
	Short: "List substitutions for a chord",
	Long: `List common-tone, functional and modal-interchange substitutions
for a chord, each group sorted from strongest to weakest.`,
	Args: cobra.ExactArgs(1),
	RunE: runSubs,
}

// ScoreCmd scores a progression
var ScoreCmd = &cobra.Command{
	Use:   "score <numeral>...",
	Short: "Score a chord progression from 0 to 100",
	Long: `Score a progression by voice-leading overlap and functional motion.
A single chord scores a neutral 50.

Example:
  harmony score ii V I --key Bb`,
	RunE: runScore,
}

// PresetsCmd scores the built-in progression library
var PresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Score well-known progressions in the current key",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runSubs(cmd *cobra.Command, args []string) error {
	key, err := currentKey()
	if err != nil {
		return err
	}

	chord, err := theory.RomanNumeralToChord(args[0], key)
	if err != nil {
		return fmt.Errorf("failed to resolve: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), models.SubstitutionsResponse{
		Key:           key.Name(),
		Chord:         chord,
		Substitutions: theory.GetAllSubstitutions(chord, key),
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	key, err := currentKey()
	if err != nil {
		return err
	}

	chords, err := theory.ResolveProgression(args, key)
	if err != nil {
		return fmt.Errorf("failed to resolve: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), models.ScoreProgressionResponse{
		Key:    key.Name(),
		Score:  theory.AnalyzeProgressionStrength(chords),
		Chords: chords,
	})
}

func runPresets(cmd *cobra.Command, args []string) error {
	key, err := currentKey()
	if err != nil {
		return err
	}

	resp, err := models.NewPresetsResponse(key)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), resp)
}
