package settlement

import (
	"fmt"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

// StablefordTable maps a hole's net score relative to par to points. The six
// bands cover the whole integer line: the outer bands are open-ended.
type StablefordTable struct {
	AlbatrossOrBetter  int `json:"albatross_or_better" yaml:"albatross_or_better"`      // net <= par-3
	Eagle              int `json:"eagle" yaml:"eagle"`                                  // par-2
	Birdie             int `json:"birdie" yaml:"birdie"`                                // par-1
	Par                int `json:"par" yaml:"par"`                                      // par
	Bogey              int `json:"bogey" yaml:"bogey"`                                  // par+1
	DoubleBogeyOrWorse int `json:"double_bogey_or_worse" yaml:"double_bogey_or_worse"`  // net >= par+2
}

// DefaultStablefordTable is the standard allocation the reset operation
// restores exactly.
func DefaultStablefordTable() StablefordTable {
	return StablefordTable{
		AlbatrossOrBetter:  5,
		Eagle:              4,
		Birdie:             3,
		Par:                2,
		Bogey:              1,
		DoubleBogeyOrWorse: 0,
	}
}

// Validate enforces the configurable range of 0-20 points per band.
func (t StablefordTable) Validate() error {
	for _, band := range []struct {
		name   string
		points int
	}{
		{"albatross_or_better", t.AlbatrossOrBetter},
		{"eagle", t.Eagle},
		{"birdie", t.Birdie},
		{"par", t.Par},
		{"bogey", t.Bogey},
		{"double_bogey_or_worse", t.DoubleBogeyOrWorse},
	} {
		if band.points < 0 || band.points > 20 {
			return fmt.Errorf("stableford band %s: %d points out of range 0-20", band.name, band.points)
		}
	}
	return nil
}

// Points maps a net score relative to par through the table.
func (t StablefordTable) Points(relativeToPar int) int {
	switch {
	case relativeToPar <= -3:
		return t.AlbatrossOrBetter
	case relativeToPar == -2:
		return t.Eagle
	case relativeToPar == -1:
		return t.Birdie
	case relativeToPar == 0:
		return t.Par
	case relativeToPar == 1:
		return t.Bogey
	default:
		return t.DoubleBogeyOrWorse
	}
}

// StablefordPoints totals a player's points over every scored hole. Unscored
// holes contribute nothing, so a partial round shows a partial total. The
// table is passed explicitly: the scorer stays a pure function of scores and
// configuration.
func (s Session) StablefordPoints(id roundtypes.PlayerID, table StablefordTable) int {
	total := 0
	for _, h := range s.Course.Holes {
		net, ok := s.NetScoreForHole(id, h.Number)
		if !ok {
			continue
		}
		total += table.Points(net - h.Par)
	}
	return total
}

// StablefordStandings totals points for every participant.
func (s Session) StablefordStandings(table StablefordTable) map[roundtypes.PlayerID]int {
	standings := make(map[roundtypes.PlayerID]int, len(s.Round.Participants))
	for _, p := range s.Round.Participants {
		standings[p.PlayerID] = s.StablefordPoints(p.PlayerID, table)
	}
	return standings
}
