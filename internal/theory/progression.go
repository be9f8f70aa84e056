package theory

import "math"

// Scoring coefficients. These are the heuristic's contract, not tunables.
const (
	neutralScore = 50.0
	minScore     = 0.0
	maxScore     = 100.0

	voiceLeadingWeight      = 30.0
	dominantToTonicBonus    = 20.0
	subdominantToDominant   = 15.0
	subdominantToTonicBonus = 10.0
	forwardMotionBonus      = 10.0
	backwardMotionPenalty   = -5.0
)

// AnalyzeProgressionStrength scores a chord sequence from 0 to 100.
// A single chord (or none) is neutral at 50. Each adjacent pair carries an equal
// weight of voice-leading overlap, resolution and functional-direction bonuses.
func AnalyzeProgressionStrength(chords []Chord) int {
	if len(chords) < 2 {
		return int(neutralScore)
	}

	weight := 1.0 / float64(len(chords)-1)
	score := neutralScore

	for i := 0; i < len(chords)-1; i++ {
		prev, next := chords[i], chords[i+1]

		if size := max(len(prev.Notes), len(next.Notes)); size > 0 {
			shared := sharedNotes(prev.Notes, next.Notes)
			score += float64(len(shared)) / float64(size) * voiceLeadingWeight * weight
		}

		switch {
		case prev.Function == FunctionDominant && next.Function == FunctionTonic:
			score += dominantToTonicBonus * weight
		case prev.Function == FunctionSubdominant && next.Function == FunctionDominant:
			score += subdominantToDominant * weight
		case prev.Function == FunctionSubdominant && next.Function == FunctionTonic:
			score += subdominantToTonicBonus * weight
		}

		from, to := prev.Function.index(), next.Function.index()
		switch {
		case to > from || next.Function == FunctionTonic:
			score += forwardMotionBonus * weight
		case to < from:
			score += backwardMotionPenalty * weight
		}
	}

	score = math.Max(minScore, math.Min(maxScore, score))
	return int(math.Round(score))
}
