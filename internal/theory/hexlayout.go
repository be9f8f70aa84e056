package theory

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Layer names one ring of the hexagonal chord map
type Layer string

const (
	LayerRoot          Layer = "root"
	LayerDiatonic      Layer = "diatonic"
	LayerExtensions    Layer = "extensions"
	LayerBorrowed      Layer = "borrowed"
	LayerSubstitutions Layer = "substitutions"
	LayerCircleFifths  Layer = "circle-fifths"
	LayerChromatic     Layer = "chromatic"
)

// ChordType classifies a layout node for coloring and tension
type ChordType string

const (
	ChordTypeMajor           ChordType = "major"
	ChordTypeMinor           ChordType = "minor"
	ChordTypeDiminished      ChordType = "diminished"
	ChordTypeAugmented       ChordType = "augmented"
	ChordTypeDominant7       ChordType = "dominant7"
	ChordTypeMajor7          ChordType = "major7"
	ChordTypeMinor7          ChordType = "minor7"
	ChordTypeHalfDiminished7 ChordType = "half-diminished7"
	ChordTypeDiminished7     ChordType = "diminished7"
	ChordTypeKey             ChordType = "key"
	ChordTypeSemitonePair    ChordType = "semitone-pair"
)

// HexPosition is one node of the layout
type HexPosition struct {
	Layer          Layer        `json:"layer"`
	Position       int          `json:"position"`
	PitchClass     PitchClass   `json:"pitchClass"`
	DisplayChord   string       `json:"displayChord"`
	RomanNumeral   string       `json:"romanNumeral,omitempty"`
	Notes          []PitchClass `json:"notes"`
	ChordType      ChordType    `json:"chordType"`
	AngleDegrees   float64      `json:"angleDegrees"`
	X              float64      `json:"x"`
	Y              float64      `json:"y"`
	Color          string       `json:"color"`
	SourceMode     Mode         `json:"sourceMode,omitempty"`
	SubstitutedFor string       `json:"substitutedFor,omitempty"`
	Dissonance     float64      `json:"dissonance"`
}

// HexLayer is a ring of nodes at a fixed radius
type HexLayer struct {
	Layer  Layer         `json:"layer"`
	Radius float64       `json:"radius"`
	Chords []HexPosition `json:"chords"`
}

const (
	nodesPerRing   = 6
	ringAngleStep  = 360.0 / nodesPerRing
	hexSize        = 50.0
	coordPrecision = 4
)

// Outer rings in order from the center
var ringOrder = []Layer{
	LayerDiatonic,
	LayerExtensions,
	LayerBorrowed,
	LayerSubstitutions,
	LayerCircleFifths,
	LayerChromatic,
}

var layerColors = map[Layer]string{
	LayerRoot:          "#F59E0B",
	LayerDiatonic:      "#3B82F6",
	LayerExtensions:    "#8B5CF6",
	LayerBorrowed:      "#EC4899",
	LayerSubstitutions: "#10B981",
	LayerCircleFifths:  "#F97316",
	LayerChromatic:     "#6B7280",
}

// Parallel-mode degrees borrowed by major-flavored keys: i, bIII, iv, bVI, bVII
var commonMajorKeyBorrowings = []int{0, 2, 3, 5, 6}

// Minor-flavored keys borrow the whole major set
var commonMinorKeyBorrowings = []int{0, 1, 2, 3, 4, 5, 6}

// Substitution ring: replacement degree -> degree it stands in for.
// Major: iii and vi for I, ii for IV, vii° for V. Minor mirrors with III, VI, ii°, VII.
var substitutionSlots = []struct {
	degree int
	target int
}{
	{degree: 2, target: 0},
	{degree: 5, target: 0},
	{degree: 1, target: 3},
	{degree: 6, target: 4},
}

// LayerOrder returns every layer from the center outward
func LayerOrder() []Layer {
	return append([]Layer{LayerRoot}, ringOrder...)
}

// ringRadius packs hexagons so consecutive rings touch flat side to flat side
func ringRadius(ring int) float64 {
	return float64(ring) * hexSize * math.Sqrt(3)
}

// GenerateAllLayers builds the root node and the six outer rings for a key.
// Angles start at the top (0°) and run clockwise in 60° steps.
func GenerateAllLayers(root PitchClass, mode Mode) map[Layer]HexLayer {
	key := NewKey(root, mode)
	diatonic := DiatonicChords(key)

	tonic := diatonic[0]
	layers := map[Layer]HexLayer{
		LayerRoot: {
			Layer:  LayerRoot,
			Radius: 0,
			Chords: []HexPosition{finishNode(rootNode(tonic), 0)},
		},
	}

	builders := map[Layer]func(Key, []Chord) []HexPosition{
		LayerDiatonic:      diatonicNodes,
		LayerExtensions:    extensionNodes,
		LayerBorrowed:      borrowedNodes,
		LayerSubstitutions: substitutionNodes,
		LayerCircleFifths:  circleOfFifthsNodes,
		LayerChromatic:     chromaticNodes,
	}

	for i, layer := range ringOrder {
		radius := ringRadius(i + 1)
		nodes := builders[layer](key, diatonic)
		for pos := range nodes {
			nodes[pos].Layer = layer
			nodes[pos].Position = pos
			nodes[pos] = finishNode(nodes[pos], radius)
		}
		layers[layer] = HexLayer{Layer: layer, Radius: radius, Chords: nodes}
	}

	return layers
}

// finishNode places a node on its ring and fills color and dissonance
func finishNode(node HexPosition, radius float64) HexPosition {
	node.AngleDegrees = float64(node.Position) * ringAngleStep
	theta := node.AngleDegrees * math.Pi / 180
	node.X = roundCoord(radius * math.Sin(theta))
	node.Y = roundCoord(-radius * math.Cos(theta))
	node.Color = layerColors[node.Layer]
	node.Dissonance = CalculateDissonance(node)
	return node
}

func roundCoord(v float64) float64 {
	r := floats.Round(v, coordPrecision)
	if r == 0 {
		return 0
	}
	return r
}

func triadChordType(q Quality) ChordType {
	switch q {
	case QualityMinor:
		return ChordTypeMinor
	case QualityDiminished:
		return ChordTypeDiminished
	case QualityAugmented:
		return ChordTypeAugmented
	case QualityDominant:
		return ChordTypeDominant7
	default:
		return ChordTypeMajor
	}
}

func chordNode(c Chord) HexPosition {
	return HexPosition{
		PitchClass:   c.Root,
		DisplayChord: c.Name,
		RomanNumeral: c.RomanNumeral,
		Notes:        c.clone().Notes,
		ChordType:    triadChordType(c.Quality),
	}
}

func rootNode(tonic Chord) HexPosition {
	node := chordNode(tonic)
	node.Layer = LayerRoot
	return node
}

func diatonicNodes(_ Key, diatonic []Chord) []HexPosition {
	nodes := make([]HexPosition, 0, nodesPerRing)
	for _, c := range diatonic[1:] {
		nodes = append(nodes, chordNode(c))
	}
	return nodes
}

// extensionNodes labels the non-root diatonic chords with their diatonic seventh
func extensionNodes(key Key, diatonic []Chord) []HexPosition {
	scale := ScaleDegrees(key)
	nodes := make([]HexPosition, 0, nodesPerRing)
	for _, c := range diatonic[1:] {
		seventh := scale[(c.Degree+6)%len(scale)]
		chordType, nameSuffix, numeralSuffix := seventhChord(c.Quality, c.Root.Interval(seventh))

		numeral := RenderNumeral(c.Degree, false, c.Quality, ExtensionNone)
		if c.Quality == QualityDiminished {
			// the degree marker is replaced by the seventh's own symbol
			numeral = numeral[:len(numeral)-len(diminishedMarker)]
		}

		node := chordNode(c)
		node.DisplayChord = NoteName(c.Root, c.Spelling) + nameSuffix
		node.RomanNumeral = numeral + numeralSuffix
		node.ChordType = chordType
		nodes = append(nodes, node)
	}
	return nodes
}

// seventhChord names a triad + seventh combination from the seventh's interval.
// It returns the chord-name suffix and the numeral suffix; the numeral drops markers its case or glyph already carries.
func seventhChord(q Quality, seventh int) (ChordType, string, string) {
	switch q {
	case QualityMajor:
		if seventh == 11 {
			return ChordTypeMajor7, "maj7", "maj7"
		}
		return ChordTypeDominant7, "7", "7"
	case QualityMinor:
		return ChordTypeMinor7, "m7", "7"
	case QualityDiminished:
		if seventh == 9 {
			return ChordTypeDiminished7, diminishedMarker + "7", diminishedMarker + "7"
		}
		return ChordTypeHalfDiminished7, halfDimMarker + "7", halfDimMarker + "7"
	case QualityAugmented:
		return ChordTypeAugmented, augmentedMarker + "7", "7"
	default:
		return ChordTypeDominant7, "7", "7"
	}
}

func borrowedNodes(key Key, _ []Chord) []HexPosition {
	parallel := key.Parallel()
	homeScale := ScaleDegrees(key)
	parallelScale := ScaleDegrees(parallel)
	parallelChords := DiatonicChords(parallel)

	degrees := commonMinorKeyBorrowings
	if key.Mode.IsMajor() {
		degrees = commonMajorKeyBorrowings
	}
	degrees = padDegrees(degrees, []int{0, 1, 2, 3, 4, 5, 6})

	nodes := make([]HexPosition, 0, nodesPerRing)
	for _, d := range degrees {
		c := parallelChords[d]
		lowered := parallelScale[d] == homeScale[d].Add(-1)

		node := chordNode(c)
		node.RomanNumeral = RenderNumeral(d, lowered, c.Quality, ExtensionNone)
		node.SourceMode = parallel.Mode
		nodes = append(nodes, node)
	}
	return nodes
}

func substitutionNodes(_ Key, diatonic []Chord) []HexPosition {
	nodes := make([]HexPosition, 0, nodesPerRing)
	used := make([]int, 0, nodesPerRing)
	for _, slot := range substitutionSlots {
		node := chordNode(diatonic[slot.degree])
		node.SubstitutedFor = diatonic[slot.target].RomanNumeral
		nodes = append(nodes, node)
		used = append(used, slot.degree)
	}

	for _, d := range padDegrees(used, []int{1, 2, 3, 4, 5, 6})[len(used):] {
		nodes = append(nodes, chordNode(diatonic[d]))
	}
	return nodes
}

// circleOfFifthsNodes shows the six keys around the root: two before, three after
func circleOfFifthsNodes(key Key, _ []Chord) []HexPosition {
	displayMode, quality, intervals := ModeMajor, QualityMajor, majorTriad
	if !key.Mode.IsMajor() {
		displayMode, quality, intervals = ModeMinor, QualityMinor, minorTriad
	}

	center := circlePosition(key.Root)
	nodes := make([]HexPosition, 0, nodesPerRing)
	for offset := -2; offset <= 3; offset++ {
		pc := fifthsOrder[(center+offset+semitonesPerOctave)%semitonesPerOctave]
		neighbor := NewKey(pc, displayMode)
		nodes = append(nodes, HexPosition{
			PitchClass:   pc,
			DisplayChord: RenderName(pc, neighbor.Spelling(), quality, ExtensionNone),
			Notes:        triad(pc, intervals),
			ChordType:    ChordTypeKey,
		})
	}
	return nodes
}

// chromaticNodes pairs adjacent semitones upward from the root
func chromaticNodes(key Key, _ []Chord) []HexPosition {
	spelling := key.Spelling()
	nodes := make([]HexPosition, 0, nodesPerRing)
	for i := 0; i < nodesPerRing; i++ {
		low := key.Root.Add(2 * i)
		high := low.Add(1)
		nodes = append(nodes, HexPosition{
			PitchClass:   low,
			DisplayChord: NoteName(low, spelling) + "/" + NoteName(high, spelling),
			Notes:        []PitchClass{low, high},
			ChordType:    ChordTypeSemitonePair,
		})
	}
	return nodes
}

// padDegrees appends unused fallback degrees until a ring is full, then truncates
func padDegrees(degrees, fallback []int) []int {
	out := make([]int, 0, nodesPerRing)
	seen := make(map[int]bool, nodesPerRing)
	for _, d := range degrees {
		if len(out) == nodesPerRing {
			return out
		}
		out = append(out, d)
		seen[d] = true
	}
	for _, d := range fallback {
		if len(out) == nodesPerRing {
			break
		}
		if !seen[d] {
			out = append(out, d)
			seen[d] = true
		}
	}
	return out
}
