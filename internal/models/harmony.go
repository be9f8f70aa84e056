package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/magda-harmony/internal/presets"
	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
)

var (
	// ErrUnknownOperation is returned for a transform operation outside extend|quality|suspension|transpose
	ErrUnknownOperation = errors.New("unknown transform operation")
	// ErrInvalidArgument is returned when a transform argument cannot be parsed for its operation
	ErrInvalidArgument = errors.New("invalid transform argument")
)

// Transform operations accepted by TransformChordRequest
const (
	OperationExtend     = "extend"
	OperationQuality    = "quality"
	OperationSuspension = "suspension"
	OperationTranspose  = "transpose"
)

// KeyRequest names a key by note and mode; empty fields fall back to configured defaults
type KeyRequest struct {
	Root string `json:"root"`
	Mode string `json:"mode"`
}

// Resolve parses the request into a key, filling blanks from the defaults
func (k KeyRequest) Resolve(defaultRoot, defaultMode string) (theory.Key, error) {
	root, mode := k.Root, k.Mode
	if strings.TrimSpace(root) == "" {
		root = defaultRoot
	}
	if strings.TrimSpace(mode) == "" {
		mode = defaultMode
	}
	return theory.ParseKey(root, mode)
}

// ResolveChordRequest resolves one Roman numeral in a key
type ResolveChordRequest struct {
	Key     KeyRequest `json:"key"`
	Numeral string     `json:"numeral" binding:"required"`
}

// TransformChordRequest applies one transform to an already resolved chord
type TransformChordRequest struct {
	Chord     theory.Chord `json:"chord"`
	Operation string       `json:"operation" binding:"required"`
	Argument  string       `json:"argument"`
}

// Apply runs the requested transform. Arguments the engine does not support
// (e.g. an 8th extension) return the chord unchanged, as the engine does.
func (r TransformChordRequest) Apply() (theory.Chord, error) {
	if err := r.Chord.Validate(); err != nil {
		return theory.Chord{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	arg := strings.TrimSpace(r.Argument)

	switch strings.ToLower(strings.TrimSpace(r.Operation)) {
	case OperationExtend:
		n, err := strconv.Atoi(arg)
		if err != nil {
			return theory.Chord{}, fmt.Errorf("%w: extension %q", ErrInvalidArgument, r.Argument)
		}
		return theory.Extend(r.Chord, theory.Extension(n)), nil

	case OperationQuality:
		return theory.ModifyQuality(r.Chord, theory.Quality(strings.ToLower(arg))), nil

	case OperationSuspension:
		return theory.AddSuspension(r.Chord, theory.Suspension(strings.ToLower(arg))), nil

	case OperationTranspose:
		switch dir := theory.Direction(strings.ToLower(arg)); dir {
		case theory.DirectionUp, theory.DirectionDown:
			return theory.Transpose(r.Chord, dir), nil
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return theory.Chord{}, fmt.Errorf("%w: transpose %q", ErrInvalidArgument, r.Argument)
		}
		return theory.TransposeBy(r.Chord, n), nil

	default:
		return theory.Chord{}, fmt.Errorf("%w: %q", ErrUnknownOperation, r.Operation)
	}
}

// SubstitutionsRequest asks for every substitution of one numeral in a key
type SubstitutionsRequest struct {
	Key     KeyRequest `json:"key"`
	Numeral string     `json:"numeral" binding:"required"`
}

// SubstitutionsResponse wraps the engine's substitution lists with the resolved chord
type SubstitutionsResponse struct {
	Key           string               `json:"key"`
	Chord         theory.Chord         `json:"chord"`
	Substitutions theory.Substitutions `json:"substitutions"`
}

// ScoreProgressionRequest scores a sequence of numerals in a key
type ScoreProgressionRequest struct {
	Key      KeyRequest `json:"key"`
	Numerals []string   `json:"numerals" binding:"required"`
}

// ScoreProgressionResponse carries the score and the chords it was computed from
type ScoreProgressionResponse struct {
	Key    string         `json:"key"`
	Score  int            `json:"score"`
	Chords []theory.Chord `json:"chords"`
}

// KeyResponse describes a key's scale and diatonic triads
type KeyResponse struct {
	Key          theory.Key          `json:"key"`
	Name         string              `json:"name"`
	ScaleDegrees []theory.PitchClass `json:"scaleDegrees"`
	NoteNames    []string            `json:"noteNames"`
	Chords       []theory.Chord      `json:"chords"`
}

// NewKeyResponse gathers everything the engine knows about a key
func NewKeyResponse(key theory.Key) KeyResponse {
	return KeyResponse{
		Key:          key,
		Name:         key.Name(),
		ScaleDegrees: theory.ScaleDegrees(key),
		NoteNames:    theory.ScaleNoteNames(key),
		Chords:       theory.DiatonicChords(key),
	}
}

// CircleOfFifthsResponse lists the circle as pitch classes and sharp-spelled names
type CircleOfFifthsResponse struct {
	PitchClasses []theory.PitchClass `json:"pitchClasses"`
	Notes        []string            `json:"notes"`
}

// NewCircleOfFifthsResponse renders the fixed circle starting at C
func NewCircleOfFifthsResponse() CircleOfFifthsResponse {
	circle := theory.CircleOfFifths()
	notes := make([]string, len(circle))
	for i, pc := range circle {
		notes[i] = theory.NoteName(pc, theory.SpellingSharps)
	}
	return CircleOfFifthsResponse{PitchClasses: circle, Notes: notes}
}

// LayoutResponse is the hexagonal layout plus the ring order to draw it in
type LayoutResponse struct {
	Key    string                           `json:"key"`
	Order  []theory.Layer                   `json:"order"`
	Layers map[theory.Layer]theory.HexLayer `json:"layers"`
}

// NewLayoutResponse generates every ring for the key
func NewLayoutResponse(key theory.Key) LayoutResponse {
	return LayoutResponse{
		Key:    key.Name(),
		Order:  theory.LayerOrder(),
		Layers: theory.GenerateAllLayers(key.Root, key.Mode),
	}
}

// ErrorResponse is the body of every 4xx/5xx reply
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// PresetsResponse scores the built-in progression library in one key
type PresetsResponse struct {
	Key          string           `json:"key"`
	Progressions []presets.Scored `json:"progressions"`
}

// NewPresetsResponse resolves and scores every preset in key
func NewPresetsResponse(key theory.Key) (PresetsResponse, error) {
	scored, err := presets.Score(key)
	if err != nil {
		return PresetsResponse{}, err
	}
	return PresetsResponse{Key: key.Name(), Progressions: scored}, nil
}
