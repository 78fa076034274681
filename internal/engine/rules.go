package engine

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// GetMoveResult checks m against the movement rules for a piece of colour
// by and returns the record that committing it would produce. It does not
// consider whether the move leaves by's king in check; see WouldBeCheck.
// A rejected move returns an *errors.MoveError describing the violation.
func (s *BoardState) GetMoveResult(m chess.Move, by chess.Colour) (chess.MoveRecord, error) {
	piece, ok := s.board.Get(m.From)
	if !ok {
		return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move empty square")
	}
	if piece.Colour != by {
		return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move opponent's piece")
	}
	if m.From == m.To {
		return chess.MoveRecord{}, errors.NewMoveError(m, "must move piece")
	}
	target, occupied := s.board.Get(m.To)
	if occupied && target.Colour == by {
		return chess.MoveRecord{}, errors.NewMoveError(m, "cannot take own piece")
	}

	dRow, dColumn := m.Delta()
	absRow, absColumn := chess.Abs(dRow), chess.Abs(dColumn)

	switch piece.Kind {
	case chess.Pawn:
		return s.pawnMoveResult(m, piece)

	case chess.Rook:
		if (dRow == 0) != (dColumn == 0) {
			return s.slidingMoveResult(m, piece)
		}
		return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move rook here: not a straight line")

	case chess.Knight:
		if (absRow == 1 && absColumn == 2) || (absRow == 2 && absColumn == 1) {
			return s.simpleMoveResult(m, piece), nil
		}
		return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move knight here: not in L pattern")

	case chess.Bishop:
		if absRow == absColumn {
			return s.slidingMoveResult(m, piece)
		}
		return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move bishop here: not a diagonal line")

	case chess.Queen:
		if dRow == 0 || dColumn == 0 || absRow == absColumn {
			return s.slidingMoveResult(m, piece)
		}
		return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move queen here: not in a line")

	case chess.King:
		if absRow <= 1 && absColumn <= 1 {
			return s.simpleMoveResult(m, piece), nil
		}
		if dRow == 0 && absColumn == 2 {
			return s.castleMoveResult(m, piece)
		}
		return chess.MoveRecord{}, errors.NewMoveError(m, "cannot move king more than one square")
	}

	return chess.MoveRecord{}, errors.NewMoveError(m, fmt.Sprintf("unknown piece kind %d", piece.Kind))
}

// simpleMoveResult returns a quiet move or a capture depending on the
// destination square.
func (s *BoardState) simpleMoveResult(m chess.Move, piece chess.Piece) chess.MoveRecord {
	if target, ok := s.board.Get(m.To); ok {
		return chess.NewCaptureRecord(m, target, m.To, !piece.HasMoved)
	}
	return chess.NewQuietRecord(m, !piece.HasMoved)
}

// slidingMoveResult is simpleMoveResult after checking the path is clear.
func (s *BoardState) slidingMoveResult(m chess.Move, piece chess.Piece) (chess.MoveRecord, error) {
	if blocker, occupant, clear := s.board.HasNoPiecesBetween(m); !clear {
		return chess.MoveRecord{}, errors.NewMoveError(m,
			fmt.Sprintf("cannot move here: blocked at %v by %v", blocker, occupant))
	}
	return s.simpleMoveResult(m, piece), nil
}
