package settlementservice

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	settlement "github.com/fairway-collective/scorecard/app/modules/settlement/domain"
)

// PayoutChartPNG renders the round's standings as a PNG bar chart. What a
// bar means depends on the format: dollars for skins, points for Nassau and
// Stableford, net strokes for the stroke-play formats.
func (s *SettlementService) PayoutChartPNG(ctx context.Context, roundID uuid.UUID) ([]byte, error) {
	session, err := s.session(ctx, roundID)
	if err != nil {
		return nil, err
	}
	table, err := s.settings.LoadStablefordTable(ctx)
	if err != nil {
		return nil, err
	}
	result, err := session.Settle(table)
	if err != nil {
		return nil, fmt.Errorf("failed to settle round: %w", err)
	}

	bars := chartBars(result)
	if len(bars) == 0 {
		return nil, fmt.Errorf("no settled results to chart for round %s", roundID)
	}

	graph := chart.BarChart{
		Title:    session.Round.Title,
		Width:    800,
		Height:   400,
		BarWidth: 60,
		Bars:     bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func chartBars(result settlement.Settlement) []chart.Value {
	var bars []chart.Value

	switch result.Format {
	case roundtypes.FormatStrokePlay:
		for _, line := range result.StrokePlay {
			bars = append(bars, chart.Value{Label: string(line.PlayerID), Value: float64(line.NetTotal)})
		}
	case roundtypes.FormatBestBallStroke:
		for _, line := range result.BestBall {
			bars = append(bars, chart.Value{Label: line.Team, Value: float64(line.NetTotal)})
		}
	case roundtypes.FormatBestBallMatch:
		if result.Match != nil {
			bars = append(bars,
				chart.Value{Label: result.Match.SideA, Value: float64(result.Match.SideAHolesUp)},
				chart.Value{Label: result.Match.SideB, Value: float64(result.Match.SideBHolesUp)},
			)
		}
	case roundtypes.FormatNassau:
		bars = sortedBars(result.NassauPoints)
	case roundtypes.FormatSkins:
		payouts := make(map[string]float64, len(result.SkinsPayouts))
		for player, amount := range result.SkinsPayouts {
			payouts[string(player)] = amount
		}
		bars = sortedBars(payouts)
	case roundtypes.FormatStableford:
		points := make(map[string]float64, len(result.Stableford))
		for player, p := range result.Stableford {
			points[string(player)] = float64(p)
		}
		bars = sortedBars(points)
	}

	return bars
}

func sortedBars(values map[string]float64) []chart.Value {
	labels := make([]string, 0, len(values))
	for label := range values {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	bars := make([]chart.Value, 0, len(labels))
	for _, label := range labels {
		bars = append(bars, chart.Value{Label: label, Value: values[label]})
	}
	return bars
}
