package engine

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// castleMoveResult handles a king moving two columns along its rank. The
// rook comes from column H when castling towards H and from column A
// otherwise, and lands on F or D respectively. Whether the king passes
// through check is left to WouldBeCheck.
func (s *BoardState) castleMoveResult(m chess.Move, king chess.Piece) (chess.MoveRecord, error) {
	if king.HasMoved {
		return chess.MoveRecord{}, errors.NewMoveError(m, "cannot castle: king has moved")
	}

	_, dColumn := m.Delta()
	rookColumn, rookTarget := chess.ColA, chess.ColD
	if dColumn > 0 {
		rookColumn, rookTarget = chess.ColH, chess.ColF
	}
	rookFrom := chess.Coord(rookColumn, m.From.Row)

	rook, ok := s.board.Get(rookFrom)
	if !ok || rook.Kind != chess.Rook || rook.Colour != king.Colour {
		return chess.MoveRecord{}, errors.NewMoveError(m, fmt.Sprintf("cannot castle: no rook on %v", rookFrom))
	}
	if rook.HasMoved {
		return chess.MoveRecord{}, errors.NewMoveError(m, "cannot castle: rook has moved")
	}

	if blocker, piece, clear := s.board.HasNoPiecesBetween(chess.Move{From: m.From, To: rookFrom}); !clear {
		return chess.MoveRecord{}, errors.NewMoveError(m,
			fmt.Sprintf("cannot castle: blocked at %v by %v", blocker, piece))
	}
	if !s.board.IsEmpty(m.To) {
		return chess.MoveRecord{}, errors.NewMoveError(m, "cannot castle: destination occupied")
	}

	rookMove := chess.Move{From: rookFrom, To: chess.Coord(rookTarget, m.From.Row)}
	return chess.NewCastleRecord(m, rookMove), nil
}
