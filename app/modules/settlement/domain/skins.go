package settlement

import roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"

// SkinsResult is the hole-by-hole resolution of a skins game. Skins are an
// individual game: every participant competes regardless of team structure.
type SkinsResult struct {
	// WinnerByHole holds the outright winner of each resolved hole.
	WinnerByHole map[int]roundtypes.PlayerID `json:"winner_by_hole"`
	// SkinsByHole holds the skins captured on each winning hole, including
	// any carried value from prior unresolved holes.
	SkinsByHole map[int]int `json:"skins_by_hole"`
	// PerPlayer totals each player's skins across the round.
	PerPlayer map[roundtypes.PlayerID]int `json:"per_player"`
}

// TotalAwarded sums the skins captured across all players.
func (r SkinsResult) TotalAwarded() int {
	total := 0
	for _, skins := range r.PerPlayer {
		total += skins
	}
	return total
}

// skinsHoleOutcome classifies one hole of a skins game.
type skinsHoleOutcome int

const (
	skinsHoleUnplayed skinsHoleOutcome = iota // fewer than two players scored; nothing to resolve
	skinsHoleTied                             // lowest net shared, skin unresolved
	skinsHoleWon                              // outright lowest net
)

// skinsHoleWinner finds the outright lowest net on a hole among all scored
// players. Two scored players are the minimum for a comparison; a hole with
// fewer stays unresolved without carrying.
func (s Session) skinsHoleWinner(hole int) (roundtypes.PlayerID, skinsHoleOutcome) {
	var winner roundtypes.PlayerID
	best := 0
	scored := 0
	tied := false

	for _, p := range s.Round.Participants {
		net, ok := s.NetScoreForHole(p.PlayerID, hole)
		if !ok {
			continue
		}
		scored++
		switch {
		case scored == 1 || net < best:
			best = net
			winner = p.PlayerID
			tied = false
		case net == best:
			tied = true
		}
	}

	if scored < 2 {
		return "", skinsHoleUnplayed
	}
	if tied {
		return "", skinsHoleTied
	}
	return winner, skinsHoleWon
}

// Skins resolves the round's skins with the configured carryover rule. With
// carryover on, a tied hole's skin rolls onto the next hole with an outright
// winner; off, it is forfeited.
func (s Session) Skins() SkinsResult {
	result := SkinsResult{
		WinnerByHole: make(map[int]roundtypes.PlayerID),
		SkinsByHole:  make(map[int]int),
		PerPlayer:    make(map[roundtypes.PlayerID]int),
	}
	for _, p := range s.Round.Participants {
		result.PerPlayer[p.PlayerID] = 0
	}

	carried := 0
	for _, h := range sortedHoleNumbers(s.Course) {
		winner, outcome := s.skinsHoleWinner(h)
		switch outcome {
		case skinsHoleWon:
			skins := 1 + carried
			carried = 0
			result.WinnerByHole[h] = winner
			result.SkinsByHole[h] = skins
			result.PerPlayer[winner] += skins
		case skinsHoleTied:
			if s.Round.Settings.SkinsCarryover {
				carried++
			}
		}
	}

	return result
}

// SkinsWinnerForHole returns the outright winner of a hole's skin, or false
// when the hole is tied or not yet comparable.
func (s Session) SkinsWinnerForHole(hole int) (roundtypes.PlayerID, bool) {
	winner, outcome := s.skinsHoleWinner(hole)
	return winner, outcome == skinsHoleWon
}

// SkinsPerPlayer totals each player's skins, carried multiples included.
func (s Session) SkinsPerPlayer() map[roundtypes.PlayerID]int {
	return s.Skins().PerPlayer
}

// SkinsPayouts converts skin counts to money under the round's payout
// policy. The pot policy divides a shared pot by skins awarded and nets out
// each player's buy-in; the legacy policy settles a fixed value per skin
// pairwise against every other player. Both policies are zero-sum, and both
// yield all-zero payouts when nothing can be divided.
func (s Session) SkinsPayouts() map[roundtypes.PlayerID]float64 {
	result := s.Skins()
	payouts := make(map[roundtypes.PlayerID]float64, len(s.Round.Participants))
	for _, p := range s.Round.Participants {
		payouts[p.PlayerID] = 0
	}

	playerCount := len(s.Round.Participants)
	totalSkins := result.TotalAwarded()
	if playerCount < 2 || totalSkins == 0 {
		return payouts
	}

	settings := s.Round.Settings
	switch {
	case settings.SkinsPotPerPlayer > 0:
		totalPot := settings.SkinsPotPerPlayer * float64(playerCount)
		valuePerSkin := totalPot / float64(totalSkins)
		for id := range payouts {
			payouts[id] = float64(result.PerPlayer[id])*valuePerSkin - settings.SkinsPotPerPlayer
		}
	case settings.SkinsValuePerSkin > 0:
		for _, p := range s.Round.Participants {
			diff := 0
			for _, other := range s.Round.Participants {
				if other.PlayerID == p.PlayerID {
					continue
				}
				diff += result.PerPlayer[p.PlayerID] - result.PerPlayer[other.PlayerID]
			}
			payouts[p.PlayerID] = settings.SkinsValuePerSkin * float64(diff)
		}
	}

	return payouts
}
