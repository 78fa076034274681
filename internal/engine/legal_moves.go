package engine

import (
	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// ValidateMove returns the record m would produce for the side to move, or
// an *errors.MoveError if m breaks the movement rules or leaves the mover in
// check. The state is left unchanged.
func (s *BoardState) ValidateMove(m chess.Move) (chess.MoveRecord, error) {
	by := s.currentPlayer
	record, err := s.GetMoveResult(m, by)
	if err != nil {
		return chess.MoveRecord{}, err
	}
	if reason := s.checkReason(record, by); reason != "" {
		return chess.MoveRecord{}, errors.NewMoveError(m, reason)
	}
	return record, nil
}

// IsLegalMove reports whether the side to move may play m.
func (s *BoardState) IsLegalMove(m chess.Move) bool {
	_, err := s.ValidateMove(m)
	return err == nil
}

// TryMove commits m for the side to move if it is legal. On error the state
// is untouched.
func (s *BoardState) TryMove(m chess.Move) (chess.MoveRecord, error) {
	record, err := s.ValidateMove(m)
	if err != nil {
		return chess.MoveRecord{}, err
	}
	s.DoMove(record)
	return record, nil
}

// isLegalFor reports whether by may play m in the current position.
func (s *BoardState) isLegalFor(m chess.Move, by chess.Colour) bool {
	record, err := s.GetMoveResult(m, by)
	return err == nil && !s.WouldBeCheck(record, by)
}

// GetLegalMovesFrom returns every legal move for by starting at from, in
// board order of the destination.
func (s *BoardState) GetLegalMovesFrom(from chess.Coordinate, by chess.Colour) []chess.Move {
	if p, ok := s.board.Get(from); !ok || p.Colour != by {
		return nil
	}
	var moves []chess.Move
	for _, to := range chess.AllCoordinates() {
		m := chess.Move{From: from, To: to}
		if s.isLegalFor(m, by) {
			moves = append(moves, m)
		}
	}
	return moves
}

// GetLegalMoves returns every legal move for by, origins and destinations
// both in board order.
func (s *BoardState) GetLegalMoves(by chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range chess.AllCoordinates() {
		moves = append(moves, s.GetLegalMovesFrom(from, by)...)
	}
	return moves
}

// HasLegalMoves reports whether by has at least one legal move.
func (s *BoardState) HasLegalMoves(by chess.Colour) bool {
	for _, from := range chess.AllCoordinates() {
		if p, ok := s.board.Get(from); !ok || p.Colour != by {
			continue
		}
		for _, to := range chess.AllCoordinates() {
			if s.isLegalFor(chess.Move{From: from, To: to}, by) {
				return true
			}
		}
	}
	return false
}
