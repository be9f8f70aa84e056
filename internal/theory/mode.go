package theory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode name cannot be parsed
var ErrUnknownMode = errors.New("unknown mode")

// Mode is one of the seven diatonic modes
type Mode string

const (
	ModeMajor      Mode = "major"
	ModeMinor      Mode = "minor"
	ModeDorian     Mode = "dorian"
	ModePhrygian   Mode = "phrygian"
	ModeLydian     Mode = "lydian"
	ModeMixolydian Mode = "mixolydian"
	ModeLocrian    Mode = "locrian"
)

// Semitone offsets from the tonic for each mode
var modeIntervals = map[Mode][7]int{
	ModeMajor:      {0, 2, 4, 5, 7, 9, 11},
	ModeMinor:      {0, 2, 3, 5, 7, 8, 10},
	ModeDorian:     {0, 2, 3, 5, 7, 9, 10},
	ModePhrygian:   {0, 1, 3, 5, 7, 8, 10},
	ModeLydian:     {0, 2, 4, 6, 7, 9, 11},
	ModeMixolydian: {0, 2, 4, 5, 7, 9, 10},
	ModeLocrian:    {0, 1, 3, 5, 6, 8, 10},
}

// Distance from the relative major tonic up to the mode's tonic
var modeRotation = map[Mode]int{
	ModeMajor:      0,
	ModeDorian:     2,
	ModePhrygian:   4,
	ModeLydian:     5,
	ModeMixolydian: 7,
	ModeMinor:      9,
	ModeLocrian:    11,
}

var modeAliases = map[string]Mode{
	"maj":     ModeMajor,
	"ionian":  ModeMajor,
	"min":     ModeMinor,
	"aeolian": ModeMinor,
}

// Modes lists every supported mode in a stable order
func Modes() []Mode {
	return []Mode{ModeMajor, ModeMinor, ModeDorian, ModePhrygian, ModeLydian, ModeMixolydian, ModeLocrian}
}

// ParseMode parses a mode name case-insensitively
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := modeAliases[name]; ok {
		return alias, nil
	}
	m := Mode(name)
	if _, ok := modeIntervals[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

func (m Mode) intervals() [7]int {
	if iv, ok := modeIntervals[m]; ok {
		return iv
	}
	return modeIntervals[ModeMajor]
}

// IsMajor reports whether the mode has a major third above the tonic
func (m Mode) IsMajor() bool {
	return m.intervals()[2] == 4
}

// Parallel returns the mode with the opposite third on the same tonic.
// Major-flavored modes map to minor, minor-flavored modes map to major.
func (m Mode) Parallel() Mode {
	if m.IsMajor() {
		return ModeMinor
	}
	return ModeMajor
}
