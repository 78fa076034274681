package player

import (
	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Termination says why a game ended.
type Termination int

const (
	Checkmate Termination = iota
	Stalemate
	PlyLimit
)

func (t Termination) String() string {
	switch t {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case PlyLimit:
		return "ply limit"
	}
	return "unknown"
}

// Outcome is the result of Play.
type Outcome struct {
	Termination Termination
	// Winner is set only when HasWinner is true.
	Winner    chess.Colour
	HasWinner bool
	// Plies is the number of moves played by the loop.
	Plies int
}

// Result returns the PGN result token: "1-0", "0-1", "1/2-1/2" or "*".
func (o Outcome) Result() string {
	switch {
	case o.HasWinner && o.Winner == chess.White:
		return "1-0"
	case o.HasWinner:
		return "0-1"
	case o.Termination == Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

// Play runs a game from s until checkmate, stalemate or, when maxPlies is
// positive, maxPlies moves. Before each move the board is shown on every
// distinct display of the two players. Moves are applied with TryMove; a
// player error or an illegal move stops the game with a *errors.GameError.
func Play(s *engine.BoardState, white, black Player, maxPlies int) (Outcome, error) {
	displays := NewDisplays(white.GetDisplay(), black.GetDisplay())
	start := s.Ply()

	for {
		displays.DisplayBoard(s)
		played := s.Ply() - start
		side := s.Player()

		if !s.HasLegalMoves(side) {
			if s.IsInCheck(side) {
				winner := side.Opposite()
				displays.DisplayCheckmate(winner)
				return Outcome{Termination: Checkmate, Winner: winner, HasWinner: true, Plies: played}, nil
			}
			return Outcome{Termination: Stalemate, Plies: played}, nil
		}
		if maxPlies > 0 && played >= maxPlies {
			return Outcome{Termination: PlyLimit, Plies: played}, nil
		}

		current := white
		if side == chess.Black {
			current = black
		}
		m, err := current.GetMove(s)
		if err != nil {
			return Outcome{Plies: played}, &errors.GameError{
				Err:    err,
				PlyNum: s.Ply() + 1,
				Player: side.String(),
			}
		}
		if _, err := s.TryMove(m); err != nil {
			return Outcome{Plies: played}, &errors.GameError{
				Err:      err,
				PlyNum:   s.Ply() + 1,
				Player:   side.String(),
				MoveText: m.String(),
			}
		}
	}
}
