package coursetypes

import (
	"fmt"

	"github.com/google/uuid"
)

// HoleCount is fixed for a full course; segment math elsewhere assumes it.
const HoleCount = 18

// Hole describes one hole of a course. StrokeIndex is the difficulty rank
// used for handicap stroke allocation: 1 is the hardest hole and receives
// strokes first. Yardages are informational only and never affect scoring.
type Hole struct {
	Number      int            `json:"number"`
	Par         int            `json:"par"`
	StrokeIndex int            `json:"stroke_index"`
	Yardages    map[string]int `json:"yardages,omitempty"`
}

// Course is a full 18-hole course record.
type Course struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Holes []Hole    `json:"holes"`
}

// Hole returns the hole with the given number.
func (c Course) Hole(number int) (Hole, bool) {
	for _, h := range c.Holes {
		if h.Number == number {
			return h, true
		}
	}
	return Hole{}, false
}

// TotalPar sums par over all holes.
func (c Course) TotalPar() int {
	total := 0
	for _, h := range c.Holes {
		total += h.Par
	}
	return total
}

// Validate enforces the invariants the settlement engine assumes: hole
// numbers 1..18 each present exactly once, par within 3..6, and stroke
// indexes forming a permutation of 1..18. Course import is the only place
// these are checked; downstream code trusts them.
func (c Course) Validate() error {
	if len(c.Holes) != HoleCount {
		return fmt.Errorf("course must have %d holes, got %d", HoleCount, len(c.Holes))
	}

	seenNumbers := make(map[int]bool, HoleCount)
	seenIndexes := make(map[int]bool, HoleCount)

	for _, h := range c.Holes {
		if h.Number < 1 || h.Number > HoleCount {
			return fmt.Errorf("hole number %d out of range", h.Number)
		}
		if seenNumbers[h.Number] {
			return fmt.Errorf("duplicate hole number %d", h.Number)
		}
		seenNumbers[h.Number] = true

		if h.Par < 3 || h.Par > 6 {
			return fmt.Errorf("hole %d: par %d out of range", h.Number, h.Par)
		}

		if h.StrokeIndex < 1 || h.StrokeIndex > HoleCount {
			return fmt.Errorf("hole %d: stroke index %d out of range", h.Number, h.StrokeIndex)
		}
		if seenIndexes[h.StrokeIndex] {
			return fmt.Errorf("hole %d: duplicate stroke index %d", h.Number, h.StrokeIndex)
		}
		seenIndexes[h.StrokeIndex] = true
	}

	return nil
}
