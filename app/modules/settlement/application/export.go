package settlementservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
	"github.com/fairway-collective/scorecard/internal/attr"
)

const scorecardSheet = "Scorecard"

// ExportScorecardXLSX renders the round's scorecard as an xlsx workbook.
func (s *SettlementService) ExportScorecardXLSX(ctx context.Context, roundID uuid.UUID) ([]byte, error) {
	session, err := s.session(ctx, roundID)
	if err != nil {
		return nil, err
	}
	card := buildScorecard(session)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WarnContext(ctx, "Failed to close workbook", attr.Error(err))
		}
	}()

	index, err := f.NewSheet(scorecardSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	setCell := func(col, row int, value any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(scorecardSheet, cell, value)
	}

	// Header, par, and stroke-index rows.
	headers := []any{card.Title, "HCP"}
	parRow := []any{"Par", ""}
	siRow := []any{"SI", ""}
	for hole := 1; hole <= coursetypes.HoleCount; hole++ {
		headers = append(headers, hole)
		parRow = append(parRow, card.Pars[hole])
		siRow = append(siRow, card.StrokeIndexes[hole])
	}
	headers = append(headers, "Gross", "Net")

	for col, v := range headers {
		if err := setCell(col+1, 1, v); err != nil {
			return nil, err
		}
	}
	for col, v := range parRow {
		if err := setCell(col+1, 2, v); err != nil {
			return nil, err
		}
	}
	for col, v := range siRow {
		if err := setCell(col+1, 3, v); err != nil {
			return nil, err
		}
	}

	// One row per player: gross with allocated strokes beside it.
	for i, line := range card.Players {
		row := 4 + i
		if err := setCell(1, row, line.Name); err != nil {
			return nil, err
		}
		if err := setCell(2, row, line.PlayingHandicap); err != nil {
			return nil, err
		}
		for hole := 1; hole <= coursetypes.HoleCount; hole++ {
			score, ok := line.Holes[hole]
			if !ok {
				continue
			}
			if err := setCell(2+hole, row, score.Gross); err != nil {
				return nil, err
			}
		}
		if err := setCell(3+coursetypes.HoleCount, row, line.GrossTotal); err != nil {
			return nil, err
		}
		if err := setCell(4+coursetypes.HoleCount, row, line.NetTotal); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
