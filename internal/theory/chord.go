package theory

import (
	"errors"
	"fmt"
)

// ErrInvalidChord is returned by Validate for a chord the resolver could not have built
var ErrInvalidChord = errors.New("invalid chord")

// Quality is the triad quality of a chord
type Quality string

const (
	QualityMajor      Quality = "major"
	QualityMinor      Quality = "minor"
	QualityDiminished Quality = "diminished"
	QualityAugmented  Quality = "augmented"
	QualitySus2       Quality = "sus2"
	QualitySus4       Quality = "sus4"
	QualityDominant   Quality = "dominant"
)

// Extension is the highest added chord tone; 0 means a plain triad
type Extension int

const (
	ExtensionNone       Extension = 0
	ExtensionSeventh    Extension = 7
	ExtensionNinth      Extension = 9
	ExtensionEleventh   Extension = 11
	ExtensionThirteenth Extension = 13
)

// Valid reports whether e is one of the supported extensions
func (e Extension) Valid() bool {
	switch e {
	case ExtensionNone, ExtensionSeventh, ExtensionNinth, ExtensionEleventh, ExtensionThirteenth:
		return true
	}
	return false
}

// Function is the harmonic role of a chord
type Function string

const (
	FunctionTonic       Function = "tonic"
	FunctionSubdominant Function = "subdominant"
	FunctionDominant    Function = "dominant"
)

// index orders functions tonic < subdominant < dominant for motion scoring
func (f Function) index() int {
	switch f {
	case FunctionSubdominant:
		return 1
	case FunctionDominant:
		return 2
	default:
		return 0
	}
}

// Chord is a resolved triad. Notes[0] is always the root.
type Chord struct {
	RomanNumeral string       `json:"romanNumeral"`
	Name         string       `json:"name,omitempty"`
	Root         PitchClass   `json:"root"`
	Quality      Quality      `json:"quality"`
	Extension    Extension    `json:"extension,omitempty"`
	Notes        []PitchClass `json:"notes"`
	Function     Function     `json:"function"`
	Degree       int          `json:"degree"`
	Borrowed     bool         `json:"borrowed,omitempty"`
	Spelling     Spelling     `json:"spelling,omitempty"`

	// Beats is caller metadata carried through untouched
	Beats float64 `json:"beats,omitempty"`
}

func (c Chord) clone() Chord {
	out := c
	out.Notes = make([]PitchClass, len(c.Notes))
	copy(out.Notes, c.Notes)
	return out
}

// Validate checks a chord that arrived from outside the engine: three notes in
// range with the root first, and a numeral that parses.
func (c Chord) Validate() error {
	if len(c.Notes) != 3 {
		return fmt.Errorf("%w: want 3 notes, got %d", ErrInvalidChord, len(c.Notes))
	}
	if c.Root != c.Root.Normalize() {
		return fmt.Errorf("%w: root %d outside 0..11", ErrInvalidChord, c.Root)
	}
	for _, n := range c.Notes {
		if n != n.Normalize() {
			return fmt.Errorf("%w: note %d outside 0..11", ErrInvalidChord, n)
		}
	}
	if c.Notes[0] != c.Root {
		return fmt.Errorf("%w: first note %d is not the root %d", ErrInvalidChord, c.Notes[0], c.Root)
	}
	if _, err := parseNumeral(c.RomanNumeral); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChord, err)
	}
	return nil
}

// relabel re-renders the numeral and name from the chord's enums. A numeral
// already on the chord decides the degree and flat marker.
func (c Chord) relabel() Chord {
	if p, err := parseNumeral(c.RomanNumeral); err == nil {
		c.Degree, c.Borrowed = p.degree, p.flat
	}
	if c.Degree >= 0 && c.Degree < len(romanNumerals) {
		c.RomanNumeral = RenderNumeral(c.Degree, c.Borrowed, c.Quality, c.Extension)
	}
	c.Name = RenderName(c.Root, c.Spelling, c.Quality, c.Extension)
	return c
}

// sameIdentity reports whether two chords are the same numeral+quality or the same sounding triad
func sameIdentity(a, b Chord) bool {
	if a.RomanNumeral == b.RomanNumeral && a.Quality == b.Quality {
		return true
	}
	return a.Root.Normalize() == b.Root.Normalize() && a.Quality == b.Quality
}

// Interval templates, in semitones above the root
var (
	majorTriad      = [2]int{4, 7}
	minorTriad      = [2]int{3, 7}
	diminishedTriad = [2]int{3, 6}
	augmentedTriad  = [2]int{4, 8}
)

func triad(root PitchClass, intervals [2]int) []PitchClass {
	root = root.Normalize()
	return []PitchClass{root, root.Add(intervals[0]), root.Add(intervals[1])}
}

// classifyTriad matches (third, fifth) intervals against the four triad templates
func classifyTriad(third, fifth int) Quality {
	switch [2]int{third, fifth} {
	case majorTriad:
		return QualityMajor
	case minorTriad:
		return QualityMinor
	case diminishedTriad:
		return QualityDiminished
	case augmentedTriad:
		return QualityAugmented
	default:
		return QualityMajor
	}
}
