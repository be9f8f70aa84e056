package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoice(t *testing.T) {
	tests := []struct {
		name     string
		numeral  string
		key      Key
		octave   int
		expected []int
	}{
		{name: "C major", numeral: "I", key: cMajor, octave: 4, expected: []int{60, 64, 67}},
		{name: "E minor", numeral: "iii", key: cMajor, octave: 4, expected: []int{64, 67, 71}},
		{name: "A minor wraps past C", numeral: "vi", key: cMajor, octave: 4, expected: []int{69, 72, 76}},
		{name: "G major", numeral: "V", key: cMajor, octave: 3, expected: []int{55, 59, 62}},
		{name: "B diminished", numeral: "vii°", key: cMajor, octave: 2, expected: []int{47, 50, 53}},
		{name: "borrowed Bb", numeral: "bVII", key: cMajor, octave: 4, expected: []int{70, 74, 77}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord := mustChord(t, tt.numeral, tt.key)
			notes, err := Voice(chord, tt.octave)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, notes)
		})
	}
}

func TestVoice_AscendingForEveryKey(t *testing.T) {
	for _, mode := range Modes() {
		for root := PitchClass(0); root < semitonesPerOctave; root++ {
			for _, chord := range DiatonicChords(NewKey(root, mode)) {
				notes, err := Voice(chord, 3)
				require.NoError(t, err)
				require.Len(t, notes, len(chord.Notes))
				for i := 1; i < len(notes); i++ {
					assert.Greater(t, notes[i], notes[i-1])
					assert.Less(t, notes[i]-notes[0], semitonesPerOctave)
				}
				for i, n := range notes {
					assert.Equal(t, chord.Notes[i], PitchClass(n).Normalize())
				}
			}
		}
	}
}

func TestVoice_OutOfRange(t *testing.T) {
	chord := mustChord(t, "V", cMajor)

	_, err := Voice(chord, 10)
	assert.ErrorIs(t, err, ErrOutOfMIDIRange)

	_, err = Voice(chord, -2)
	assert.ErrorIs(t, err, ErrOutOfMIDIRange)

	_, err = Voice(Chord{}, 4)
	assert.ErrorIs(t, err, ErrOutOfMIDIRange)
}

func TestVoice_SuspendedAndTransposed(t *testing.T) {
	sus := AddSuspension(mustChord(t, "I", cMajor), SuspensionSus4)
	notes, err := Voice(sus, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{60, 65, 67}, notes)

	up := TransposeBy(mustChord(t, "I", cMajor), 2)
	notes, err = Voice(up, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{62, 66, 69}, notes)
}

func TestVoiceAbove(t *testing.T) {
	floor, err := ParseMIDINote("A3")
	require.NoError(t, err)

	tests := []struct {
		numeral  string
		expected []int
	}{
		{numeral: "I", expected: []int{60, 64, 67}},
		{numeral: "V", expected: []int{67, 71, 74}},
		{numeral: "vi", expected: []int{57, 60, 64}},
		{numeral: "vii°", expected: []int{59, 62, 65}},
	}

	for _, tt := range tests {
		t.Run(tt.numeral, func(t *testing.T) {
			notes, err := VoiceAbove(mustChord(t, tt.numeral, cMajor), floor)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, notes)
			assert.GreaterOrEqual(t, notes[0], floor)
			assert.Less(t, notes[0]-floor, semitonesPerOctave)
		})
	}

	notes, err := VoiceAbove(mustChord(t, "I", cMajor), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 7}, notes)

	_, err = VoiceAbove(mustChord(t, "V", cMajor), 127)
	assert.ErrorIs(t, err, ErrOutOfMIDIRange)
}

func TestParseMIDINote(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{input: "C4", expected: 60},
		{input: "c4", expected: 60},
		{input: "A4", expected: 69},
		{input: "F#3", expected: 54},
		{input: "Bb2", expected: 46},
		{input: "E1", expected: 28},
		{input: "C-1", expected: 0},
		{input: "G9", expected: 127},
		{input: "Cb4", expected: 59},
		{input: "B#3", expected: 60},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMIDINote(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseMIDINote_Errors(t *testing.T) {
	for _, input := range []string{"", "H4", "C", "F#", "Cx4"} {
		_, err := ParseMIDINote(input)
		assert.ErrorIs(t, err, ErrInvalidNoteName, input)
	}

	_, err := ParseMIDINote("G#9")
	assert.ErrorIs(t, err, ErrOutOfMIDIRange)
}

func TestMIDINoteName(t *testing.T) {
	assert.Equal(t, "C4", MIDINoteName(60, SpellingSharps))
	assert.Equal(t, "Bb2", MIDINoteName(46, SpellingFlats))
	assert.Equal(t, "A#2", MIDINoteName(46, SpellingSharps))
	assert.Equal(t, "C-1", MIDINoteName(0, SpellingSharps))
	assert.Equal(t, "G9", MIDINoteName(127, SpellingSharps))

	for midi := 0; midi <= 127; midi++ {
		got, err := ParseMIDINote(MIDINoteName(midi, SpellingFlats))
		require.NoError(t, err)
		assert.Equal(t, midi, got)
	}
}
