package models

import (
	"testing"

	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cMajorChord(t *testing.T, numeral string) theory.Chord {
	t.Helper()
	chord, err := theory.RomanNumeralToChord(numeral, theory.NewKey(0, theory.ModeMajor))
	require.NoError(t, err)
	return chord
}

func TestKeyRequest_Resolve(t *testing.T) {
	key, err := KeyRequest{}.Resolve("G", "mixolydian")
	require.NoError(t, err)
	assert.Equal(t, theory.NewKey(7, theory.ModeMixolydian), key)

	key, err = KeyRequest{Root: "Bb", Mode: "minor"}.Resolve("C", "major")
	require.NoError(t, err)
	assert.Equal(t, "Bb minor", key.Name())

	_, err = KeyRequest{Mode: "bebop"}.Resolve("C", "major")
	assert.ErrorIs(t, err, theory.ErrUnknownMode)
}

func TestTransformChordRequest_Apply(t *testing.T) {
	tests := []struct {
		name         string
		numeral      string
		operation    string
		argument     string
		expectedName string
		expectedErr  error
	}{
		{name: "extend", numeral: "ii", operation: "extend", argument: "7", expectedName: "Dm7"},
		{name: "unsupported extension is a no-op", numeral: "ii", operation: "extend", argument: "8", expectedName: "Dm"},
		{name: "quality", numeral: "I", operation: "Quality", argument: "augmented", expectedName: "C+"},
		{name: "suspension", numeral: "V", operation: "suspension", argument: "SUS4", expectedName: "Gsus4"},
		{name: "transpose up", numeral: "I", operation: "transpose", argument: "up", expectedName: "C#"},
		{name: "transpose by semitones", numeral: "I", operation: "transpose", argument: "-3", expectedName: "A"},
		{name: "bad extension", numeral: "I", operation: "extend", argument: "seventh", expectedErr: ErrInvalidArgument},
		{name: "bad transpose", numeral: "I", operation: "transpose", argument: "left", expectedErr: ErrInvalidArgument},
		{name: "unknown operation", numeral: "I", operation: "invert", expectedErr: ErrUnknownOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := TransformChordRequest{
				Chord:     cMajorChord(t, tt.numeral),
				Operation: tt.operation,
				Argument:  tt.argument,
			}
			chord, err := req.Apply()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, chord.Name)
		})
	}
}

func TestTransformChordRequest_RejectsInvalidChords(t *testing.T) {
	tests := []struct {
		name  string
		chord theory.Chord
	}{
		{name: "empty chord", chord: theory.Chord{}},
		{name: "root out of range", chord: theory.Chord{
			RomanNumeral: "I", Root: 13, Quality: theory.QualityMajor, Notes: []theory.PitchClass{1, 5, 8},
		}},
		{name: "unparseable numeral", chord: theory.Chord{
			RomanNumeral: "X", Root: 0, Quality: theory.QualityMajor, Notes: []theory.PitchClass{0, 4, 7},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TransformChordRequest{Chord: tt.chord, Operation: OperationQuality, Argument: "augmented"}.Apply()
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.ErrorIs(t, err, theory.ErrInvalidChord)
		})
	}
}

func TestNewKeyResponse(t *testing.T) {
	resp := NewKeyResponse(theory.NewKey(2, theory.ModeDorian))

	assert.Equal(t, "D dorian", resp.Name)
	assert.Equal(t, []string{"D", "E", "F", "G", "A", "B", "C"}, resp.NoteNames)
	require.Len(t, resp.Chords, 7)
	assert.Equal(t, "G", resp.Chords[3].Name)
}

func TestNewCircleOfFifthsResponse(t *testing.T) {
	resp := NewCircleOfFifthsResponse()
	assert.Equal(t, []string{"C", "G", "D", "A", "E", "B", "F#", "C#", "G#", "D#", "A#", "F"}, resp.Notes)
	assert.Len(t, resp.PitchClasses, 12)
}

func TestNewLayoutResponse(t *testing.T) {
	resp := NewLayoutResponse(theory.NewKey(0, theory.ModeMajor))
	assert.Equal(t, "C major", resp.Key)
	assert.Equal(t, theory.LayerOrder(), resp.Order)
	assert.Len(t, resp.Layers, 7)
}
