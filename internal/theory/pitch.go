package theory

import (
	"strings"
)

// PitchClass is one of the 12 equal-tempered semitones, C=0 through B=11
type PitchClass int

const semitonesPerOctave = 12

// Normalize wraps any integer (including negatives) into 0..11
func (p PitchClass) Normalize() PitchClass {
	return PitchClass(((int(p) % semitonesPerOctave) + semitonesPerOctave) % semitonesPerOctave)
}

// Add returns the pitch class n semitones away, wrapped into range
func (p PitchClass) Add(n int) PitchClass {
	return PitchClass(int(p) + n).Normalize()
}

// Interval returns the ascending distance in semitones from p to other (0..11)
func (p PitchClass) Interval(other PitchClass) int {
	return int(PitchClass(int(other) - int(p)).Normalize())
}

// Spelling selects sharp or flat note names when rendering a pitch class
type Spelling string

const (
	SpellingSharps Spelling = "sharps"
	SpellingFlats  Spelling = "flats"
)

var sharpNames = [semitonesPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatNames = [semitonesPerOctave]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// circle of fifths traversal starting at C
var fifthsOrder = [semitonesPerOctave]PitchClass{0, 7, 2, 9, 4, 11, 6, 1, 8, 3, 10, 5}

// NoteIndex resolves a note name to its pitch class.
// Sharp and flat spellings map to the same value ("C#" and "Db" are both 1).
// Unrecognized input falls back to C (0) rather than failing.
func NoteIndex(name string) PitchClass {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0
	}
	// Only the letter is case-insensitive; "b" after it stays a flat marker.
	name = strings.ToUpper(name[:1]) + name[1:]

	for i, n := range sharpNames {
		if n == name {
			return PitchClass(i)
		}
	}
	for i, n := range flatNames {
		if n == name {
			return PitchClass(i)
		}
	}
	return 0
}

// NoteName renders a pitch class using the requested spelling
func NoteName(p PitchClass, spelling Spelling) string {
	p = p.Normalize()
	if spelling == SpellingFlats {
		return flatNames[p]
	}
	return sharpNames[p]
}

// NotesEqual compares two note names after spelling normalization
func NotesEqual(a, b string) bool {
	return NoteIndex(a) == NoteIndex(b)
}

// CircleOfFifths returns the fixed C, G, D, ... F traversal. The result is a fresh slice.
func CircleOfFifths() []PitchClass {
	out := make([]PitchClass, len(fifthsOrder))
	copy(out, fifthsOrder[:])
	return out
}

// circlePosition returns the index of p within the circle of fifths
func circlePosition(p PitchClass) int {
	p = p.Normalize()
	for i, f := range fifthsOrder {
		if f == p {
			return i
		}
	}
	return 0
}

// sharedNotes returns the pitch classes of a that also occur in b, in a's order
func sharedNotes(a, b []PitchClass) []PitchClass {
	inB := make(map[PitchClass]bool, len(b))
	for _, n := range b {
		inB[n.Normalize()] = true
	}
	shared := []PitchClass{}
	seen := make(map[PitchClass]bool, len(a))
	for _, n := range a {
		n = n.Normalize()
		if inB[n] && !seen[n] {
			shared = append(shared, n)
			seen[n] = true
		}
	}
	return shared
}
