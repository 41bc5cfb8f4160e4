package settlementservice

import (
	"context"
	"sort"

	"github.com/google/uuid"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	settlement "github.com/fairway-collective/scorecard/app/modules/settlement/domain"
)

// HoleScore is one player's line on one hole.
type HoleScore struct {
	Gross   int `json:"gross"`
	Strokes int `json:"strokes"`
	Net     int `json:"net"`
}

// PlayerLine is one player's full scorecard row. Holes only contains entries
// for holes that have a recorded score.
type PlayerLine struct {
	PlayerID        roundtypes.PlayerID `json:"player_id"`
	Name            string              `json:"name"`
	Team            string              `json:"team,omitempty"`
	PlayingHandicap float64             `json:"playing_handicap"`
	Holes           map[int]HoleScore   `json:"holes"`
	HolesScored     int                 `json:"holes_scored"`
	GrossTotal      int                 `json:"gross_total"`
	NetTotal        int                 `json:"net_total"`
}

// Scorecard is the full per-hole view of a round.
type Scorecard struct {
	RoundID       uuid.UUID             `json:"round_id"`
	Title         string                `json:"title"`
	CourseName    string                `json:"course_name"`
	Format        roundtypes.GameFormat `json:"format"`
	Pars          map[int]int           `json:"pars"`
	StrokeIndexes map[int]int           `json:"stroke_indexes"`
	Players       []PlayerLine          `json:"players"`
}

// Scorecard assembles the per-hole gross, allocated strokes, and net for
// every participant.
func (s *SettlementService) Scorecard(ctx context.Context, roundID uuid.UUID) (Scorecard, error) {
	session, err := s.session(ctx, roundID)
	if err != nil {
		return Scorecard{}, err
	}
	return buildScorecard(session), nil
}

func buildScorecard(session settlement.Session) Scorecard {
	card := Scorecard{
		RoundID:       session.Round.ID,
		Title:         session.Round.Title,
		CourseName:    session.Course.Name,
		Format:        session.Round.Settings.Format,
		Pars:          make(map[int]int, len(session.Course.Holes)),
		StrokeIndexes: make(map[int]int, len(session.Course.Holes)),
	}
	for _, h := range session.Course.Holes {
		card.Pars[h.Number] = h.Par
		card.StrokeIndexes[h.Number] = h.StrokeIndex
	}

	for _, p := range session.Round.Participants {
		line := PlayerLine{
			PlayerID:        p.PlayerID,
			Name:            p.Name,
			Team:            p.Team,
			PlayingHandicap: p.PlayingHandicap,
			Holes:           make(map[int]HoleScore),
		}
		for _, h := range session.Course.Holes {
			gross, ok := session.Round.GrossScore(p.PlayerID, h.Number)
			if !ok {
				continue
			}
			strokes := settlement.StrokesOnHole(p.PlayingHandicap, h.StrokeIndex)
			net := settlement.NetScore(gross, p.PlayingHandicap, h.StrokeIndex)
			line.Holes[h.Number] = HoleScore{Gross: gross, Strokes: strokes, Net: net}
			line.HolesScored++
			line.GrossTotal += gross
			line.NetTotal += net
		}
		card.Players = append(card.Players, line)
	}

	sort.Slice(card.Players, func(i, j int) bool { return card.Players[i].PlayerID < card.Players[j].PlayerID })
	return card
}
