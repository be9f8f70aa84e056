// Package presets scores a built-in library of well-known progressions
// against any key.
package presets

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
	"github.com/Conceptual-Machines/magda-harmony/pkg/embedded"
	"gopkg.in/yaml.v3"
)

var ErrInvalidPreset = errors.New("invalid preset")

type Progression struct {
	Name     string   `yaml:"name" json:"name"`
	Style    string   `yaml:"style" json:"style"`
	Numerals []string `yaml:"numerals" json:"numerals"`
}

// Scored is a preset resolved in one key
type Scored struct {
	Progression
	Score  int            `json:"score"`
	Chords []theory.Chord `json:"chords"`
}

var builtin = sync.OnceValues(func() ([]Progression, error) {
	return Parse(embedded.ProgressionsYAML)
})

// Parse decodes a YAML list of progressions. Every entry needs a unique
// name and at least one numeral.
func Parse(data []byte) ([]Progression, error) {
	var out []Progression
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	seen := make(map[string]bool, len(out))
	for i, p := range out {
		switch {
		case p.Name == "":
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidPreset, i+1)
		case len(p.Numerals) == 0:
			return nil, fmt.Errorf("%w: %q has no numerals", ErrInvalidPreset, p.Name)
		case seen[p.Name]:
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidPreset, p.Name)
		}
		seen[p.Name] = true
	}
	return out, nil
}

// All returns the built-in presets in file order
func All() ([]Progression, error) {
	list, err := builtin()
	if err != nil {
		return nil, err
	}
	return slices.Clone(list), nil
}

// Score resolves every preset in key and scores it
func Score(key theory.Key) ([]Scored, error) {
	list, err := All()
	if err != nil {
		return nil, err
	}
	return ScoreEach(list, key)
}

// ScoreEach resolves and scores the given progressions, preserving order
func ScoreEach(list []Progression, key theory.Key) ([]Scored, error) {
	out := make([]Scored, 0, len(list))
	for _, p := range list {
		chords, err := theory.ResolveProgression(p.Numerals, key)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		out = append(out, Scored{
			Progression: p,
			Score:       theory.AnalyzeProgressionStrength(chords),
			Chords:      chords,
		})
	}
	return out, nil
}
