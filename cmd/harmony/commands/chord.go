package commands

import (
	"fmt"

	"github.com/Conceptual-Machines/magda-harmony/internal/models"
	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
	"github.com/spf13/cobra"
)

// ChordCmd resolves one or more Roman numerals
var ChordCmd = &cobra.Command{
	Use:   "chord <numeral>...",
	Short: "Resolve Roman numerals to chords",
	Long: `Resolve Roman numerals against the current key.

A leading "b" borrows a major triad a semitone below the scale degree;
a trailing 7, 9, 11 or 13 is kept as an extension.

Examples:
  harmony chord V                # G major in C
  harmony chord ii7 bVII --key D`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChord,
}

// TransformCmd resolves a numeral and applies one transform to it
var TransformCmd = &cobra.Command{
	Use:   "transform <numeral>",
	Short: "Extend, re-voice, suspend or transpose a chord",
	Long: `Resolve a numeral and apply one transform to the resulting chord.

Operations and their arguments:
  extend      7, 9, 11 or 13
  quality     augmented, diminished or dominant
  suspension  sus2 or sus4
  transpose   up, down or a semitone count (e.g. -5)`,
	Args: cobra.ExactArgs(1),
	RunE: runTransform,
}

var (
	transformOp  string
	transformArg string
)

func init() {
	TransformCmd.Flags().StringVar(&transformOp, "op", models.OperationExtend, "Operation: extend, quality, suspension, transpose")
	TransformCmd.Flags().StringVar(&transformArg, "arg", "7", "Operation argument")
}

type chordOutput struct {
	Key    string         `json:"key"`
	Chords []theory.Chord `json:"chords"`
}

func runChord(cmd *cobra.Command, args []string) error {
	key, err := currentKey()
	if err != nil {
		return err
	}

	chords, err := theory.ResolveProgression(args, key)
	if err != nil {
		return fmt.Errorf("failed to resolve: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), chordOutput{Key: key.Name(), Chords: chords})
}

type transformOutput struct {
	Key       string       `json:"key"`
	Operation string       `json:"operation"`
	Argument  string       `json:"argument"`
	Original  theory.Chord `json:"original"`
	Result    theory.Chord `json:"result"`
}

func runTransform(cmd *cobra.Command, args []string) error {
	key, err := currentKey()
	if err != nil {
		return err
	}

	chord, err := theory.RomanNumeralToChord(args[0], key)
	if err != nil {
		return fmt.Errorf("failed to resolve: %w", err)
	}

	result, err := models.TransformChordRequest{
		Chord:     chord,
		Operation: transformOp,
		Argument:  transformArg,
	}.Apply()
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), transformOutput{
		Key:       key.Name(),
		Operation: transformOp,
		Argument:  transformArg,
		Original:  chord,
		Result:    result,
	})
}

// VoiceCmd resolves numerals and prints MIDI note numbers for each chord
var VoiceCmd = &cobra.Command{
	Use:   "voice <numeral>...",
	Short: "Voice chords as MIDI note numbers",
	Long: `Resolve numerals and stack each chord in close position
with its root in the given octave (C4 = 60), or with --from, on the
lowest pitch at or above a note such as A3.

Examples:
  harmony voice I IV V --octave 3
  harmony voice ii V I --from A3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVoice,
}

var (
	voiceOctave int
	voiceFrom   string
)

func init() {
	VoiceCmd.Flags().IntVar(&voiceOctave, "octave", 4, "Octave of each chord root")
	VoiceCmd.Flags().StringVar(&voiceFrom, "from", "", "Lowest root pitch, e.g. A3")
	VoiceCmd.MarkFlagsMutuallyExclusive("octave", "from")
}

type voicedChord struct {
	Name      string   `json:"name"`
	Numeral   string   `json:"numeral"`
	MIDI      []int    `json:"midi"`
	NoteNames []string `json:"noteNames"`
}

type voiceOutput struct {
	Key    string        `json:"key"`
	Octave *int          `json:"octave,omitempty"`
	From   string        `json:"from,omitempty"`
	Chords []voicedChord `json:"chords"`
}

func runVoice(cmd *cobra.Command, args []string) error {
	key, err := currentKey()
	if err != nil {
		return err
	}

	chords, err := theory.ResolveProgression(args, key)
	if err != nil {
		return fmt.Errorf("failed to resolve: %w", err)
	}

	voice := func(c theory.Chord) ([]int, error) { return theory.Voice(c, voiceOctave) }
	out := voiceOutput{Key: key.Name(), Chords: make([]voicedChord, 0, len(chords))}
	if voiceFrom != "" {
		floor, err := theory.ParseMIDINote(voiceFrom)
		if err != nil {
			return err
		}
		voice = func(c theory.Chord) ([]int, error) { return theory.VoiceAbove(c, floor) }
		out.From = voiceFrom
	} else {
		octave := voiceOctave
		out.Octave = &octave
	}

	for _, chord := range chords {
		midi, err := voice(chord)
		if err != nil {
			return err
		}
		names := make([]string, len(midi))
		for i, n := range midi {
			names[i] = theory.MIDINoteName(n, chord.Spelling)
		}
		out.Chords = append(out.Chords, voicedChord{
			Name:      chord.Name,
			Numeral:   chord.RomanNumeral,
			MIDI:      midi,
			NoteNames: names,
		})
	}

	return writeOutput(cmd.OutOrStdout(), out)
}
