package settlement

import "fmt"

// MatchStatus is the resolved state of a head-to-head contest over a hole
// range. HolesUp counts are zero-or-positive and at most one side's is
// non-zero. Closed means the lead has reached the holes remaining, so the
// trailing side can no longer win; once closed the status is frozen and
// later hole results cannot reopen it.
type MatchStatus struct {
	Status       string `json:"status"`
	SideA        string `json:"side_a"`
	SideB        string `json:"side_b"`
	SideAHolesUp int    `json:"side_a_holes_up"`
	SideBHolesUp int    `json:"side_b_holes_up"`
	HolesDecided int    `json:"holes_decided"`
	Closed       bool   `json:"closed"`
}

// Leader returns the name of the side currently ahead, or "" at parity.
func (m MatchStatus) Leader() string {
	if m.SideAHolesUp > 0 {
		return m.SideA
	}
	if m.SideBHolesUp > 0 {
		return m.SideB
	}
	return ""
}

// Trailer returns the name of the side currently behind, or "" at parity.
func (m MatchStatus) Trailer() string {
	if m.SideAHolesUp > 0 {
		return m.SideB
	}
	if m.SideBHolesUp > 0 {
		return m.SideA
	}
	return ""
}

// AllSquare reports parity on decided holes.
func (m MatchStatus) AllSquare() bool {
	return m.SideAHolesUp == 0 && m.SideBHolesUp == 0
}

// MatchHoleWinner resolves a single hole of the contest. A hole is decided
// only once both sides have a net score for it; the lower net wins and equal
// nets halve the hole. The returned name is empty for a halved hole.
func (s Session) MatchHoleWinner(sideA, sideB Side, hole int) (winner string, decided bool) {
	netA, okA := s.sideNet(sideA, hole)
	netB, okB := s.sideNet(sideB, hole)
	if !okA || !okB {
		return "", false
	}
	switch {
	case netA < netB:
		return sideA.Name, true
	case netB < netA:
		return sideB.Name, true
	default:
		return "", true
	}
}

// MatchStatusForRange computes the running status of a contest over the
// inclusive hole range [start, end]. Holes are scanned in playing order and
// an undecided hole is skipped, never defaulted. Undecided holes anywhere in
// the range still count as winnable, so scores entered out of order cannot
// close a match early. The moment a side's lead reaches the undecided holes
// left, the match is closed and the scan stops: no assignment of the
// remaining holes can put the trailer ahead, and later results (still live
// for skins or Stableford) cannot alter a settled match.
func (s Session) MatchStatusForRange(sideA, sideB Side, start, end int) MatchStatus {
	status := MatchStatus{
		SideA: sideA.Name,
		SideB: sideB.Name,
	}

	wonA, wonB := 0, 0
	remaining := end - start + 1

	for hole := start; hole <= end; hole++ {
		winner, ok := s.MatchHoleWinner(sideA, sideB, hole)
		if !ok {
			continue
		}
		status.HolesDecided++
		remaining--
		switch winner {
		case sideA.Name:
			wonA++
		case sideB.Name:
			wonB++
		}

		lead := wonA - wonB
		if lead < 0 {
			lead = -lead
		}
		if lead > 0 && lead >= remaining {
			status.Closed = true
			break
		}
	}

	if wonA > wonB {
		status.SideAHolesUp = wonA - wonB
	} else if wonB > wonA {
		status.SideBHolesUp = wonB - wonA
	}

	holesUp := status.SideAHolesUp + status.SideBHolesUp
	switch {
	case status.Closed && remaining > 0:
		status.Status = fmt.Sprintf("%s wins %d & %d", status.Leader(), holesUp, remaining)
	case status.Closed:
		status.Status = fmt.Sprintf("%s wins %d Up", status.Leader(), holesUp)
	case holesUp > 0:
		status.Status = fmt.Sprintf("%s %d Up", status.Leader(), holesUp)
	default:
		status.Status = "All Square"
	}

	return status
}

// LosingTeamForRange returns the side currently behind in the contest, or
// false when the match is all square or already closed. A closed match has
// no losing side left to press.
func (s Session) LosingTeamForRange(sideA, sideB Side, start, end int) (string, bool) {
	status := s.MatchStatusForRange(sideA, sideB, start, end)
	if status.Closed || status.AllSquare() {
		return "", false
	}
	return status.Trailer(), true
}

// NextHoleForRange returns the lowest hole number in the range still missing
// at least one side's score, or false when the range is fully scored or the
// match is already closed.
func (s Session) NextHoleForRange(sideA, sideB Side, start, end int) (int, bool) {
	status := s.MatchStatusForRange(sideA, sideB, start, end)
	if status.Closed {
		return 0, false
	}
	for hole := start; hole <= end; hole++ {
		if _, ok := s.MatchHoleWinner(sideA, sideB, hole); !ok {
			return hole, true
		}
	}
	return 0, false
}
