package settlement

import (
	"fmt"
	"sort"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

// PlayerTotals is a player's running stroke-play line: sums over scored
// holes only, with the count of holes scored so far.
type PlayerTotals struct {
	PlayerID    roundtypes.PlayerID `json:"player_id"`
	HolesScored int                 `json:"holes_scored"`
	GrossTotal  int                 `json:"gross_total"`
	NetTotal    int                 `json:"net_total"`
}

// TeamTotals is a team's running best-ball stroke-play line.
type TeamTotals struct {
	Team        string `json:"team"`
	HolesScored int    `json:"holes_scored"`
	GrossTotal  int    `json:"gross_total"`
	NetTotal    int    `json:"net_total"`
}

// StrokePlayTotals computes every participant's gross and net totals.
func (s Session) StrokePlayTotals() []PlayerTotals {
	out := make([]PlayerTotals, 0, len(s.Round.Participants))
	for _, p := range s.Round.Participants {
		totals := PlayerTotals{PlayerID: p.PlayerID}
		for _, h := range s.Course.Holes {
			gross, ok := s.Round.GrossScore(p.PlayerID, h.Number)
			if !ok {
				continue
			}
			totals.HolesScored++
			totals.GrossTotal += gross
			totals.NetTotal += NetScore(gross, p.PlayingHandicap, h.StrokeIndex)
		}
		out = append(out, totals)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

// BestBallStrokeTotals computes each team's best-ball totals. Any team count
// is allowed for stroke play; only the match formats require two.
func (s Session) BestBallStrokeTotals() []TeamTotals {
	teams := s.Round.Teams()
	names := make([]string, 0, len(teams))
	for name := range teams {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]TeamTotals, 0, len(names))
	for _, name := range names {
		totals := TeamTotals{Team: name}
		for _, h := range s.Course.Holes {
			gross, grossOK := s.BestBallScoreForTeam(name, h.Number)
			net, netOK := s.BestBallNetScoreForTeam(name, h.Number)
			if !grossOK && !netOK {
				continue
			}
			totals.HolesScored++
			if grossOK {
				totals.GrossTotal += gross
			}
			if netOK {
				totals.NetTotal += net
			}
		}
		out = append(out, totals)
	}
	return out
}

// Settlement is the per-format result the presentation layer renders. Only
// the section for the round's format is populated.
type Settlement struct {
	Format roundtypes.GameFormat `json:"format"`

	StrokePlay []PlayerTotals `json:"stroke_play,omitempty"`
	BestBall   []TeamTotals   `json:"best_ball,omitempty"`

	Match   *MatchStatus  `json:"match,omitempty"`
	Presses []MatchStatus `json:"presses,omitempty"`

	NassauPoints map[string]float64 `json:"nassau_points,omitempty"`

	Skins        *SkinsResult                    `json:"skins,omitempty"`
	SkinsPayouts map[roundtypes.PlayerID]float64 `json:"skins_payouts,omitempty"`

	Stableford map[roundtypes.PlayerID]int `json:"stableford,omitempty"`
}

// Settle runs the settlement for the round's configured format. The format
// is a closed enum; an unknown tag is a configuration error, not a panic.
func (s Session) Settle(table StablefordTable) (Settlement, error) {
	result := Settlement{Format: s.Round.Settings.Format}

	switch s.Round.Settings.Format {
	case roundtypes.FormatStrokePlay:
		result.StrokePlay = s.StrokePlayTotals()

	case roundtypes.FormatBestBallStroke:
		result.BestBall = s.BestBallStrokeTotals()

	case roundtypes.FormatBestBallMatch:
		status, err := s.MatchStatusForSegment(roundtypes.SegmentOverall)
		if err != nil {
			return Settlement{}, err
		}
		result.Match = &status

	case roundtypes.FormatNassau:
		points, err := s.NassauPoints()
		if err != nil {
			return Settlement{}, err
		}
		result.NassauPoints = points
		for _, press := range s.Round.Presses {
			status, err := s.PressMatchStatus(press)
			if err != nil {
				return Settlement{}, err
			}
			result.Presses = append(result.Presses, status)
		}

	case roundtypes.FormatSkins:
		skins := s.Skins()
		result.Skins = &skins
		result.SkinsPayouts = s.SkinsPayouts()

	case roundtypes.FormatStableford:
		result.Stableford = s.StablefordStandings(table)

	default:
		return Settlement{}, fmt.Errorf("unknown game format %q", s.Round.Settings.Format)
	}

	return result, nil
}
