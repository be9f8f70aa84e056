package theory

// Key is an immutable tonic + mode pair
type Key struct {
	Root PitchClass `json:"root"`
	Mode Mode       `json:"mode"`
}

// Relative-major tonics whose key signatures use flats
var flatMajorTonics = map[PitchClass]bool{
	5: true, 10: true, 3: true, 8: true, 1: true, 6: true,
}

// NewKey builds a key with its root wrapped into 0..11
func NewKey(root PitchClass, mode Mode) Key {
	return Key{Root: root.Normalize(), Mode: mode}
}

// ParseKey builds a key from a note name and a mode name.
// Unknown note names resolve to C; unknown modes are an error.
func ParseKey(root, mode string) (Key, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return Key{}, err
	}
	return NewKey(NoteIndex(root), m), nil
}

// Parallel returns the key on the same tonic with the opposite third
func (k Key) Parallel() Key {
	return NewKey(k.Root, k.Mode.Parallel())
}

// Spelling picks flats for keys whose signature is flat, sharps otherwise
func (k Key) Spelling() Spelling {
	relativeMajor := k.Root.Add(-modeRotation[k.Mode])
	if flatMajorTonics[relativeMajor] {
		return SpellingFlats
	}
	return SpellingSharps
}

// Name renders the key as e.g. "C major" or "Bb dorian"
func (k Key) Name() string {
	return NoteName(k.Root, k.Spelling()) + " " + string(k.Mode)
}

// ScaleDegrees returns the 7 pitch classes of the key's scale starting at the root
func ScaleDegrees(k Key) []PitchClass {
	iv := k.Mode.intervals()
	degrees := make([]PitchClass, len(iv))
	for i, offset := range iv {
		degrees[i] = k.Root.Add(offset)
	}
	return degrees
}

// ScaleNoteNames returns the scale degrees spelled for the key
func ScaleNoteNames(k Key) []string {
	spelling := k.Spelling()
	degrees := ScaleDegrees(k)
	names := make([]string, len(degrees))
	for i, d := range degrees {
		names[i] = NoteName(d, spelling)
	}
	return names
}
