package engine

import (
	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// PromotionKind is the piece a pawn becomes on reaching the last rank.
const PromotionKind = chess.Queen

// pawnMoveResult applies the pawn rules: single and double advances,
// diagonal captures, en-passant and promotion.
func (s *BoardState) pawnMoveResult(m chess.Move, pawn chess.Piece) (chess.MoveRecord, error) {
	by := pawn.Colour
	dRow, dColumn := m.Delta()
	forward := dRow * by.RowIncrement()
	promotes := m.To.Row == by.Opposite().HomeRow()
	target, occupied := s.board.Get(m.To)

	switch chess.Abs(dColumn) {
	case 0:
		if occupied {
			return chess.MoveRecord{}, errors.NewMoveError(m, "cannot take with pawn unless diagonally")
		}
		switch {
		case forward == 1:
			if promotes {
				return chess.NewPromotionRecord(m, PromotionKind, nil, !pawn.HasMoved), nil
			}
			return chess.NewQuietRecord(m, !pawn.HasMoved), nil
		case forward == 2:
			if pawn.HasMoved {
				return chess.MoveRecord{}, errors.NewMoveError(m, "cannot double move pawn after it has moved")
			}
			if !s.board.IsEmpty(m.From.Offset(by.RowIncrement(), 0)) {
				return chess.MoveRecord{}, errors.NewMoveError(m, "cannot jump with pawn")
			}
			return chess.NewQuietRecord(m, true), nil
		case forward > 2:
			return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move pawn more than two squares")
		default:
			return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move pawn backwards")
		}

	case 1:
		switch {
		case forward == 1:
			if occupied {
				if promotes {
					return chess.NewPromotionRecord(m, PromotionKind, &target, !pawn.HasMoved), nil
				}
				return chess.NewCaptureRecord(m, target, m.To, !pawn.HasMoved), nil
			}
			if ep, ok := s.EnPassantTarget(); ok && ep == m.To {
				capturedFrom := m.To.Offset(-by.RowIncrement(), 0)
				captured, ok := s.board.Get(capturedFrom)
				if !ok || captured.Colour == by {
					return chess.MoveRecord{}, errors.NewMoveError(m, "no pawn to take en passant")
				}
				return chess.NewCaptureRecord(m, captured, capturedFrom, !pawn.HasMoved), nil
			}
			return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move pawn diagonally unless taking")
		case forward == 0:
			return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move pawn horizontally")
		case forward > 1:
			return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move pawn here: too far")
		default:
			return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move pawn here: must move forwards")
		}
	}

	return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move pawn more than one column")
}
