package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDissonance(t *testing.T) {
	tests := []struct {
		name     string
		node     HexPosition
		expected float64
	}{
		{name: "root is neutral", node: HexPosition{Layer: LayerRoot, ChordType: ChordTypeMajor}, expected: 0},
		{name: "chromatic is neutral", node: HexPosition{Layer: LayerChromatic, ChordType: ChordTypeSemitonePair}, expected: 0},
		{name: "circle of fifths is fixed", node: HexPosition{Layer: LayerCircleFifths, ChordType: ChordTypeKey}, expected: 0.15},
		{name: "diatonic major", node: HexPosition{Layer: LayerDiatonic, ChordType: ChordTypeMajor}, expected: 0.1},
		{name: "diatonic minor", node: HexPosition{Layer: LayerDiatonic, ChordType: ChordTypeMinor}, expected: 0.2},
		{name: "diminished", node: HexPosition{Layer: LayerDiatonic, ChordType: ChordTypeDiminished}, expected: 0.8},
		{name: "augmented", node: HexPosition{Layer: LayerDiatonic, ChordType: ChordTypeAugmented}, expected: 0.75},
		{name: "major seventh", node: HexPosition{Layer: LayerExtensions, ChordType: ChordTypeMajor7}, expected: 0.2},
		{name: "minor seventh", node: HexPosition{Layer: LayerExtensions, ChordType: ChordTypeMinor7}, expected: 0.3},
		{name: "dominant seventh", node: HexPosition{Layer: LayerExtensions, ChordType: ChordTypeDominant7}, expected: 0.5},
		{name: "half-diminished seventh", node: HexPosition{Layer: LayerExtensions, ChordType: ChordTypeHalfDiminished7}, expected: 0.8},
		{name: "borrowed floor lifts a major chord", node: HexPosition{Layer: LayerBorrowed, ChordType: ChordTypeMajor}, expected: 0.4},
		{name: "borrowed floor does not lower a diminished chord", node: HexPosition{Layer: LayerBorrowed, ChordType: ChordTypeDiminished}, expected: 0.8},
		{name: "substitution floor", node: HexPosition{Layer: LayerSubstitutions, ChordType: ChordTypeMinor}, expected: 0.35},
		{name: "unknown chord type", node: HexPosition{Layer: LayerDiatonic, ChordType: ChordType("cluster")}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateDissonance(tt.node))
		})
	}
}

func TestCalculateDissonance_LayoutValues(t *testing.T) {
	layers := GenerateAllLayers(0, ModeMajor)

	dissonance := func(layer Layer) []float64 {
		out := []float64{}
		for _, n := range layers[layer].Chords {
			out = append(out, n.Dissonance)
		}
		return out
	}

	assert.Equal(t, []float64{0.2, 0.2, 0.1, 0.1, 0.2, 0.8}, dissonance(LayerDiatonic))
	assert.Equal(t, []float64{0.3, 0.3, 0.2, 0.5, 0.3, 0.8}, dissonance(LayerExtensions))
	assert.Equal(t, []float64{0.4, 0.4, 0.4, 0.4, 0.4, 0.8}, dissonance(LayerBorrowed))
	assert.Equal(t, []float64{0.35, 0.35, 0.35, 0.8, 0.35, 0.35}, dissonance(LayerSubstitutions))
}
