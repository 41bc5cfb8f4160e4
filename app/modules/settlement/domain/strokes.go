package settlement

import "math"

// StrokesOnHole returns the handicap strokes a player receives on a hole with
// the given stroke index. The allocation follows hole difficulty rank: a
// player with handicap H gets floor(H/18) strokes everywhere plus one extra
// stroke on the remainder's hardest holes (stroke index 1 first).
//
// Plus players (negative handicap) mirror the allocation: strokes come off
// on the hardest holes, so the result goes negative there and net score can
// exceed gross. The value is never clamped to zero.
func StrokesOnHole(handicap float64, strokeIndex int) int {
	if handicap < 0 {
		return -StrokesOnHole(-handicap, strokeIndex)
	}

	base := math.Floor(handicap / 18)
	extra := handicap - 18*base

	strokes := int(base)
	if float64(strokeIndex) <= extra {
		strokes++
	}
	return strokes
}

// PlayerGetsStrokeOnHole reports whether the player receives at least one
// handicap stroke on the hole.
func PlayerGetsStrokeOnHole(handicap float64, strokeIndex int) bool {
	return StrokesOnHole(handicap, strokeIndex) >= 1
}

// NetScore adjusts a gross score by the handicap strokes allocated to the
// hole. Callers must only invoke it with a recorded gross; missing grosses
// are handled upstream as absent values.
func NetScore(gross int, handicap float64, strokeIndex int) int {
	return gross - StrokesOnHole(handicap, strokeIndex)
}
