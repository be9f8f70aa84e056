package theory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidRomanNumeral is returned when a symbol has no recognizable base numeral.
// Callers must not substitute a default chord for it.
var ErrInvalidRomanNumeral = errors.New("invalid roman numeral")

// Harmonic function by 0-based scale degree
var degreeFunctions = [7]Function{
	FunctionTonic,
	FunctionSubdominant,
	FunctionDominant,
	FunctionSubdominant,
	FunctionDominant,
	FunctionDominant,
	FunctionDominant,
}

// parsedNumeral is a Roman-numeral symbol split into its parts
type parsedNumeral struct {
	degree    int
	flat      bool
	extension Extension
}

func parseNumeral(symbol string) (parsedNumeral, error) {
	s := strings.TrimSpace(symbol)
	var p parsedNumeral

	if strings.HasPrefix(s, flatMarker) {
		p.flat = true
		s = s[len(flatMarker):]
	}

	end := strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune("IiVv", r)
	})
	if end < 0 {
		end = len(s)
	}
	base := strings.ToUpper(s[:end])
	suffix := s[end:]

	p.degree = -1
	for i, n := range romanNumerals {
		if n == base {
			p.degree = i
			break
		}
	}
	if p.degree < 0 {
		return parsedNumeral{}, fmt.Errorf("%w: %q", ErrInvalidRomanNumeral, symbol)
	}

	p.extension = parseExtension(suffix)
	return p, nil
}

// parseExtension pulls the first 7/9/11/13 out of a numeral suffix; anything else is ignored
func parseExtension(suffix string) Extension {
	start := strings.IndexFunc(suffix, unicode.IsDigit)
	if start < 0 {
		return ExtensionNone
	}
	end := start
	for end < len(suffix) && suffix[end] >= '0' && suffix[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(suffix[start:end])
	if err != nil {
		return ExtensionNone
	}
	ext := Extension(n)
	if ext == ExtensionNone || !ext.Valid() {
		return ExtensionNone
	}
	return ext
}

// RomanNumeralToChord resolves a Roman-numeral symbol against a key.
//
// A leading "b" marks a borrowed chord: its root is the unflattened scale degree
// lowered a semitone and it is always built as a major triad. Otherwise the triad is
// stacked in thirds from the scale and its quality is read off the resulting intervals.
func RomanNumeralToChord(symbol string, key Key) (Chord, error) {
	p, err := parseNumeral(symbol)
	if err != nil {
		return Chord{}, err
	}
	return buildChord(p, key), nil
}

func buildChord(p parsedNumeral, key Key) Chord {
	scale := ScaleDegrees(key)
	chord := Chord{
		Degree:    p.degree,
		Borrowed:  p.flat,
		Extension: p.extension,
		Function:  degreeFunctions[p.degree],
		Spelling:  key.Spelling(),
	}

	if p.flat {
		chord.Root = scale[p.degree].Add(-1)
		chord.Notes = triad(chord.Root, majorTriad)
		chord.Quality = QualityMajor
		chord.Spelling = SpellingFlats
		return chord.relabel()
	}

	root := scale[p.degree]
	third := scale[(p.degree+2)%len(scale)]
	fifth := scale[(p.degree+4)%len(scale)]
	chord.Root = root
	chord.Notes = []PitchClass{root, third, fifth}
	chord.Quality = classifyTriad(root.Interval(third), root.Interval(fifth))
	return chord.relabel()
}

// chordAtDegree resolves the plain diatonic triad on a 0-based degree
func chordAtDegree(key Key, degree int) Chord {
	return buildChord(parsedNumeral{degree: degree}, key)
}

// DiatonicChords returns the seven diatonic triads of the key in degree order
func DiatonicChords(key Key) []Chord {
	chords := make([]Chord, len(romanNumerals))
	for i := range romanNumerals {
		chords[i] = chordAtDegree(key, i)
	}
	return chords
}

// ResolveProgression resolves every symbol in order, failing on the first invalid one
func ResolveProgression(symbols []string, key Key) ([]Chord, error) {
	chords := make([]Chord, 0, len(symbols))
	for i, s := range symbols {
		c, err := RomanNumeralToChord(s, key)
		if err != nil {
			return nil, fmt.Errorf("chord %d: %w", i+1, err)
		}
		chords = append(chords, c)
	}
	return chords, nil
}
