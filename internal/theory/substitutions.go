package theory

import (
	"fmt"
	"sort"
)

// SubstitutionCategory groups substitution options by how they were derived
type SubstitutionCategory string

const (
	CategoryCommonTone       SubstitutionCategory = "common-tone"
	CategoryFunctional       SubstitutionCategory = "functional"
	CategoryModalInterchange SubstitutionCategory = "modal-interchange"
)

// SubstitutionOption is one candidate replacement for a chord
type SubstitutionOption struct {
	Chord       Chord                `json:"chord"`
	Reason      string               `json:"reason"`
	Strength    float64              `json:"strength"`
	SharedNotes []PitchClass         `json:"sharedNotes"`
	Category    SubstitutionCategory `json:"category"`
}

// Substitutions holds every category of options, each sorted by descending strength
type Substitutions struct {
	CommonTone       []SubstitutionOption `json:"commonTone"`
	Functional       []SubstitutionOption `json:"functional"`
	ModalInterchange []SubstitutionOption `json:"modalInterchange"`
}

const (
	minSharedNotes = 2

	functionalBaseStrength  = 0.7
	functionalMatchStrength = 0.9
	functionalSharedBonus   = 0.1

	interchangeBaseStrength  = 0.8
	interchangeSpicyStrength = 0.5
	interchangeSharedBonus   = 0.2

	maxStrength = 1.0
)

// Same-function candidates for major-flavored and minor-flavored keys
var functionalTable = map[bool]map[Function][]string{
	true: {
		FunctionTonic:       {"I", "iii", "vi"},
		FunctionSubdominant: {"IV", "ii"},
		FunctionDominant:    {"V", "vii°"},
	},
	false: {
		FunctionTonic:       {"i", "III", "VI"},
		FunctionSubdominant: {"iv", "ii°"},
		FunctionDominant:    {"v", "VII"},
	},
}

// Borrowed chords that clash with the home key's flavor, keyed by whether the home key is major
var spicyBorrowings = map[bool]map[string]bool{
	true:  {"ii°": true, "v": true},
	false: {"ii": true, "iii": true, "vi": true, "vii°": true},
}

// GetAllSubstitutions lists common-tone, functional and modal-interchange alternatives.
// The input chord itself never appears, and candidates that fail to resolve are skipped.
func GetAllSubstitutions(chord Chord, key Key) Substitutions {
	return Substitutions{
		CommonTone:       commonToneSubstitutions(chord, key),
		Functional:       functionalSubstitutions(chord, key),
		ModalInterchange: modalInterchangeSubstitutions(chord, key),
	}
}

func commonToneSubstitutions(chord Chord, key Key) []SubstitutionOption {
	options := []SubstitutionOption{}
	for _, candidate := range DiatonicChords(key) {
		if sameIdentity(candidate, chord) {
			continue
		}
		shared := sharedNotes(chord.Notes, candidate.Notes)
		if len(shared) < minSharedNotes {
			continue
		}
		options = append(options, SubstitutionOption{
			Chord:       candidate,
			Reason:      fmt.Sprintf("Shares %d notes with %s", len(shared), chord.RomanNumeral),
			Strength:    float64(len(shared)) / float64(max(len(chord.Notes), len(candidate.Notes))),
			SharedNotes: shared,
			Category:    CategoryCommonTone,
		})
	}
	return sortByStrength(options)
}

func functionalSubstitutions(chord Chord, key Key) []SubstitutionOption {
	options := []SubstitutionOption{}
	for _, symbol := range functionalTable[key.Mode.IsMajor()][chord.Function] {
		candidate, err := RomanNumeralToChord(symbol, key)
		if err != nil {
			continue
		}
		if sameIdentity(candidate, chord) {
			continue
		}
		shared := sharedNotes(chord.Notes, candidate.Notes)

		strength := functionalBaseStrength
		if candidate.Function == chord.Function {
			strength = functionalMatchStrength
		}
		strength = min(strength+functionalSharedBonus*float64(len(shared)), maxStrength)

		options = append(options, SubstitutionOption{
			Chord:       candidate,
			Reason:      fmt.Sprintf("Same %s function as %s", chord.Function, chord.RomanNumeral),
			Strength:    strength,
			SharedNotes: shared,
			Category:    CategoryFunctional,
		})
	}
	return sortByStrength(options)
}

func modalInterchangeSubstitutions(chord Chord, key Key) []SubstitutionOption {
	parallel := key.Parallel()
	spicy := spicyBorrowings[key.Mode.IsMajor()]

	options := []SubstitutionOption{}
	for _, candidate := range DiatonicChords(parallel) {
		if sameIdentity(candidate, chord) {
			continue
		}
		shared := sharedNotes(chord.Notes, candidate.Notes)

		strength := interchangeBaseStrength
		if spicy[candidate.RomanNumeral] {
			strength = interchangeSpicyStrength
		}
		if len(shared) >= minSharedNotes {
			strength = min(strength+interchangeSharedBonus, maxStrength)
		}

		options = append(options, SubstitutionOption{
			Chord:       candidate,
			Reason:      fmt.Sprintf("Borrowed from %s", parallel.Name()),
			Strength:    strength,
			SharedNotes: shared,
			Category:    CategoryModalInterchange,
		})
	}
	return sortByStrength(options)
}

func sortByStrength(options []SubstitutionOption) []SubstitutionOption {
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Strength > options[j].Strength
	})
	return options
}
