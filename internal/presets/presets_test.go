package presets

import (
	"testing"

	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	list, err := All()
	require.NoError(t, err)
	require.NotEmpty(t, list)

	assert.Equal(t, "Authentic cadence", list[0].Name)
	assert.Equal(t, []string{"I", "IV", "V", "I"}, list[0].Numerals)

	// callers get their own copy
	list[0].Name = "changed"
	again, err := All()
	require.NoError(t, err)
	assert.Equal(t, "Authentic cadence", again[0].Name)
}

func TestScore_CMajor(t *testing.T) {
	scored, err := Score(theory.NewKey(0, theory.ModeMajor))
	require.NoError(t, err)

	list, err := All()
	require.NoError(t, err)
	require.Len(t, scored, len(list))

	assert.Equal(t, "Authentic cadence", scored[0].Name)
	assert.Equal(t, 78, scored[0].Score)
	require.Len(t, scored[0].Chords, 4)
	assert.Equal(t, "G", scored[0].Chords[2].Name)
}

func TestScore_EveryKey(t *testing.T) {
	for _, mode := range theory.Modes() {
		for root := theory.PitchClass(0); root < 12; root++ {
			scored, err := Score(theory.NewKey(root, mode))
			require.NoError(t, err)
			for _, s := range scored {
				assert.GreaterOrEqual(t, s.Score, 0, s.Name)
				assert.LessOrEqual(t, s.Score, 100, s.Name)
				assert.Len(t, s.Chords, len(s.Numerals), s.Name)
			}
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing name", data: "- numerals: [I]"},
		{name: "missing numerals", data: "- name: Empty"},
		{name: "duplicate", data: "- {name: A, numerals: [I]}\n- {name: A, numerals: [V]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidPreset)
		})
	}

	_, err := Parse([]byte("name: [unclosed"))
	assert.Error(t, err)
}

func TestScoreEach_InvalidNumeral(t *testing.T) {
	_, err := ScoreEach([]Progression{{Name: "Bad", Numerals: []string{"I", "Q"}}}, theory.NewKey(0, theory.ModeMajor))
	assert.ErrorIs(t, err, theory.ErrInvalidRomanNumeral)
	assert.Contains(t, err.Error(), `preset "Bad"`)
}
