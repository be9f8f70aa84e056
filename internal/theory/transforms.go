package theory

// Direction is the way Transpose moves a chord
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Suspension replaces a chord's third
type Suspension string

const (
	SuspensionSus2 Suspension = "sus2"
	SuspensionSus4 Suspension = "sus4"
)

var suspensionIntervals = map[Suspension][2]int{
	SuspensionSus2: {2, 7},
	SuspensionSus4: {5, 7},
}

var qualityIntervals = map[Quality][2]int{
	QualityAugmented:  augmentedTriad,
	QualityDiminished: diminishedTriad,
	QualityDominant:   majorTriad,
}

// Extend adds a 7th, 9th, 11th or 13th to the chord's label. Notes are unchanged.
// Any other degree returns an unchanged copy.
func Extend(chord Chord, ext Extension) Chord {
	out := chord.clone()
	if ext == ExtensionNone || !ext.Valid() {
		return out
	}
	out.Extension = ext
	return out.relabel()
}

// ModifyQuality rebuilds the third and fifth from the existing root.
// Supported targets are augmented, diminished and dominant.
func ModifyQuality(chord Chord, target Quality) Chord {
	out := chord.clone()
	intervals, ok := qualityIntervals[target]
	if !ok {
		return out
	}
	out.Root = out.Root.Normalize()
	out.Notes = triad(out.Root, intervals)
	out.Quality = target
	if target == QualityDominant && out.Extension == ExtensionNone {
		out.Extension = ExtensionSeventh
	}
	return out.relabel()
}

// AddSuspension swaps the third for a major second (sus2) or perfect fourth (sus4)
func AddSuspension(chord Chord, kind Suspension) Chord {
	out := chord.clone()
	intervals, ok := suspensionIntervals[kind]
	if !ok {
		return out
	}
	out.Root = out.Root.Normalize()
	out.Notes = triad(out.Root, intervals)
	out.Quality = Quality(kind)
	return out.relabel()
}

// Transpose shifts the root and every note a semitone up or down
func Transpose(chord Chord, direction Direction) Chord {
	switch direction {
	case DirectionUp:
		return TransposeBy(chord, 1)
	case DirectionDown:
		return TransposeBy(chord, -1)
	default:
		return chord.clone()
	}
}

// TransposeBy shifts the chord by any number of semitones, wrapping mod 12.
// The Roman numeral is kept as entered; only the name follows the new root.
func TransposeBy(chord Chord, semitones int) Chord {
	out := chord.clone()
	out.Root = out.Root.Add(semitones)
	for i, n := range out.Notes {
		out.Notes[i] = n.Add(semitones)
	}
	out.Name = RenderName(out.Root, out.Spelling, out.Quality, out.Extension)
	return out
}
