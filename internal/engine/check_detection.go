package engine

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// IsInCheck reports whether colour's king is attacked, that is whether the
// opponent has any move under the movement rules that lands on the king's
// square. It panics if colour has no king on the board.
func (s *BoardState) IsInCheck(colour chess.Colour) bool {
	king, ok := s.board.Find(chess.King, colour)
	if !ok {
		panic(fmt.Sprintf("%v king not found", colour))
	}
	return s.isAttacked(king, colour.Opposite())
}

// isAttacked reports whether any piece of colour by can move to target.
func (s *BoardState) isAttacked(target chess.Coordinate, by chess.Colour) bool {
	for _, from := range chess.AllCoordinates() {
		p, ok := s.board.Get(from)
		if !ok || p.Colour != by {
			continue
		}
		if _, err := s.GetMoveResult(chess.Move{From: from, To: target}, by); err == nil {
			return true
		}
	}
	return false
}

// WouldBeCheck reports whether committing record leaves by's king in check.
// A castle is also rejected when by is in check before moving, or when the
// king would be in check on any square it passes over.
func (s *BoardState) WouldBeCheck(record chess.MoveRecord, by chess.Colour) bool {
	return s.checkReason(record, by) != ""
}

// checkReason returns why record would leave by in check, or "" if it would not.
func (s *BoardState) checkReason(record chess.MoveRecord, by chess.Colour) string {
	if record.Kind == chess.CastleMove {
		if s.IsInCheck(by) {
			return "cannot castle out of check"
		}
		for _, c := range chess.SquaresBetween(record.Move) {
			step := chess.NewQuietRecord(chess.Move{From: record.Move.From, To: c}, true)
			if s.inCheckAfter(step, by) {
				return "cannot castle through check"
			}
		}
	}
	if s.inCheckAfter(record, by) {
		return "cannot move here: check"
	}
	return ""
}

// inCheckAfter commits record, tests by's king and reverts.
func (s *BoardState) inCheckAfter(record chess.MoveRecord, by chess.Colour) bool {
	s.DoMove(record)
	inCheck := s.IsInCheck(by)
	s.UndoMove()
	return inCheck
}

// IsCheckmate reports whether the side to move is in check with no legal move.
func (s *BoardState) IsCheckmate() bool {
	return s.IsInCheck(s.currentPlayer) && !s.HasLegalMoves(s.currentPlayer)
}

// IsStalemate reports whether the side to move is not in check and has no
// legal move.
func (s *BoardState) IsStalemate() bool {
	return !s.IsInCheck(s.currentPlayer) && !s.HasLegalMoves(s.currentPlayer)
}
