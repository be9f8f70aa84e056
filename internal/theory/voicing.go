package theory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	midiMin = 0
	midiMax = 127
)

var (
	ErrOutOfMIDIRange  = errors.New("voicing outside MIDI range")
	ErrInvalidNoteName = errors.New("invalid note name")
)

// Voice stacks the chord's notes upward in close position with the root in
// the given octave (C4 = 60). Extensions are labels only and add no tones.
func Voice(chord Chord, octave int) ([]int, error) {
	if len(chord.Notes) == 0 {
		return nil, fmt.Errorf("%w: chord has no notes", ErrOutOfMIDIRange)
	}

	notes := make([]int, 0, len(chord.Notes))
	current := (octave+1)*semitonesPerOctave + int(chord.Notes[0].Normalize())
	notes = append(notes, current)
	for _, pc := range chord.Notes[1:] {
		step := PitchClass(current).Normalize().Interval(pc)
		if step == 0 {
			step = semitonesPerOctave
		}
		current += step
		notes = append(notes, current)
	}

	if notes[0] < midiMin || notes[len(notes)-1] > midiMax {
		return nil, fmt.Errorf("%w: %s in octave %d", ErrOutOfMIDIRange, chord.Name, octave)
	}
	return notes, nil
}

// VoiceAbove voices the chord in close position with its root on the lowest
// pitch at or above floor, a MIDI note number.
func VoiceAbove(chord Chord, floor int) ([]int, error) {
	if len(chord.Notes) == 0 {
		return nil, fmt.Errorf("%w: chord has no notes", ErrOutOfMIDIRange)
	}
	lift := floor - int(chord.Notes[0].Normalize())
	octaves := (lift + semitonesPerOctave - 1) / semitonesPerOctave
	return Voice(chord, octaves-1)
}

// ParseMIDINote converts scientific pitch notation such as "C4", "F#3" or
// "Bb-1" to a MIDI note number.
func ParseMIDINote(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidNoteName)
	}

	split := 1
	if len(name) > 1 && (name[1] == '#' || name[1] == 'b') {
		split = 2
	}
	letter := strings.ToUpper(name[:1])
	if letter < "A" || letter > "G" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}

	octave, err := strconv.Atoi(name[split:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q has no octave", ErrInvalidNoteName, name)
	}

	// Cb and B# cross the octave boundary
	semitone := int(NoteIndex(letter))
	switch {
	case split == 2 && name[1] == '#':
		semitone++
	case split == 2:
		semitone--
	}

	midi := (octave+1)*semitonesPerOctave + semitone
	if midi < midiMin || midi > midiMax {
		return 0, fmt.Errorf("%w: %q", ErrOutOfMIDIRange, name)
	}
	return midi, nil
}

// MIDINoteName renders a MIDI note number in scientific pitch notation
func MIDINoteName(midi int, spelling Spelling) string {
	octave := midi/semitonesPerOctave - 1
	if midi < 0 {
		octave = (midi-semitonesPerOctave+1)/semitonesPerOctave - 1
	}
	return NoteName(PitchClass(midi), spelling) + strconv.Itoa(octave)
}
