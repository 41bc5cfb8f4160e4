package settlement

import roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"

// BestBallScoreForTeam returns the team's best (lowest) gross on a hole, or
// false when no team member has a recorded gross there.
func (s Session) BestBallScoreForTeam(team string, hole int) (int, bool) {
	best := 0
	found := false
	for _, p := range s.Round.Teams()[team] {
		gross, ok := s.Round.GrossScore(p.PlayerID, hole)
		if !ok {
			continue
		}
		if !found || gross < best {
			best = gross
			found = true
		}
	}
	return best, found
}

// BestBallNetScoreForTeam returns the team's best (lowest) net on a hole.
// Best gross and best net are independent: the player supplying the best net
// need not be the one with the best gross.
func (s Session) BestBallNetScoreForTeam(team string, hole int) (int, bool) {
	best := 0
	found := false
	for _, p := range s.Round.Teams()[team] {
		net, ok := s.NetScoreForHole(p.PlayerID, hole)
		if !ok {
			continue
		}
		if !found || net < best {
			best = net
			found = true
		}
	}
	return best, found
}

// BestBallContributors lists the team members whose individual score equals
// the team's best value on a hole, for scorecard highlighting. Ties produce
// multiple flags. Net selects net-vs-gross comparison.
func (s Session) BestBallContributors(team string, hole int, net bool) []roundtypes.PlayerID {
	var best int
	var found bool
	if net {
		best, found = s.BestBallNetScoreForTeam(team, hole)
	} else {
		best, found = s.BestBallScoreForTeam(team, hole)
	}
	if !found {
		return nil
	}

	var out []roundtypes.PlayerID
	for _, p := range s.Round.Teams()[team] {
		var value int
		var ok bool
		if net {
			value, ok = s.NetScoreForHole(p.PlayerID, hole)
		} else {
			value, ok = s.Round.GrossScore(p.PlayerID, hole)
		}
		if ok && value == best {
			out = append(out, p.PlayerID)
		}
	}
	return out
}
