package theory

import "gonum.org/v1/gonum/floats"

// Tension values per rule. Rules combine with max, so a later rule can only raise a score.
const (
	circleFifthsTension = 0.15

	majorTension             = 0.1
	minorTension             = 0.2
	major7Tension            = 0.2
	minor7Tension            = 0.3
	dominant7Tension         = 0.5
	augmentedTension         = 0.75
	diminishedTension        = 0.8
	borrowedTensionFloor     = 0.4
	substitutionTensionFloor = 0.35
)

var chordTypeTension = map[ChordType]float64{
	ChordTypeMajor:           majorTension,
	ChordTypeMinor:           minorTension,
	ChordTypeMajor7:          major7Tension,
	ChordTypeMinor7:          minor7Tension,
	ChordTypeDominant7:       dominant7Tension,
	ChordTypeAugmented:       augmentedTension,
	ChordTypeDiminished:      diminishedTension,
	ChordTypeHalfDiminished7: diminishedTension,
	ChordTypeDiminished7:     diminishedTension,
}

// CalculateDissonance estimates a node's tension in [0, 1] for visual emphasis.
// The root and chromatic pairs are neutral and circle-of-fifths keys are fixed;
// every other node takes the highest of its chord-type and layer-floor rules.
func CalculateDissonance(node HexPosition) float64 {
	switch node.Layer {
	case LayerRoot, LayerChromatic:
		return 0
	case LayerCircleFifths:
		return circleFifthsTension
	}

	scores := []float64{0}
	if t, ok := chordTypeTension[node.ChordType]; ok {
		scores = append(scores, t)
	}

	switch node.Layer {
	case LayerBorrowed:
		scores = append(scores, borrowedTensionFloor)
	case LayerSubstitutions:
		scores = append(scores, substitutionTensionFloor)
	}

	return floats.Max(scores)
}
