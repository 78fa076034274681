package search

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
)

// Result is the outcome of a search from the root position.
type Result struct {
	Move chess.Move
	// HasMove is false when the side to move has no legal move.
	HasMove bool
	// Value is the minimax value of the root from White's point of view.
	Value   float64
	Nodes   int
	Cutoffs int
}

// Plies converts a search depth into plies: a depth of d searches 2d-1
// plies, so depth 1 considers only the mover's own moves. Depths below 1
// are treated as 1.
func Plies(depth int) int {
	if depth < 1 {
		depth = 1
	}
	return depth*2 - 1
}

type searcher struct {
	state   *engine.BoardState
	nodes   int
	cutoffs int
}

// Search runs an alpha-beta search of Plies(depth) plies from s. Every
// candidate is committed with DoMove and reverted with UndoMove, so s is
// returned to its original state.
func Search(s *engine.BoardState, depth int) Result {
	sr := &searcher{state: s}
	move, ok, value := sr.search(Plies(depth), -WinScore, WinScore)
	return Result{
		Move:    move,
		HasMove: ok,
		Value:   value,
		Nodes:   sr.nodes,
		Cutoffs: sr.cutoffs,
	}
}

// BestMove returns the move Search chooses. It panics if the side to move
// has no legal move.
func BestMove(s *engine.BoardState, depth int) chess.Move {
	result := Search(s, depth)
	if !result.HasMove {
		panic(fmt.Sprintf("no legal move for %v", s.Player()))
	}
	return result.Move
}

func (sr *searcher) search(plies int, alpha, beta float64) (chess.Move, bool, float64) {
	sr.nodes++
	if plies == 0 {
		return chess.Move{}, false, Heuristic(sr.state)
	}

	side := sr.state.Player()
	moves := sr.state.GetLegalMoves(side)
	if len(moves) == 0 {
		return chess.Move{}, false, terminalValue(sr.state, side)
	}

	// White maximises and Black minimises. Ties go to the later move.
	best := -WinScore
	if side == chess.Black {
		best = WinScore
	}
	var bestMove chess.Move
	found := false

	for _, m := range moves {
		record, err := sr.state.GetMoveResult(m, side)
		if err != nil {
			panic(fmt.Sprintf("generated move %v rejected: %v", m, err))
		}
		sr.state.DoMove(record)
		_, _, value := sr.search(plies-1, alpha, beta)
		sr.state.UndoMove()

		if side == chess.White {
			if value >= best {
				best, bestMove, found = value, m, true
			}
			if value >= beta {
				sr.cutoffs++
				break
			}
			alpha = max(alpha, value)
		} else {
			if value <= best {
				best, bestMove, found = value, m, true
			}
			if value <= alpha {
				sr.cutoffs++
				break
			}
			beta = min(beta, value)
		}
	}
	return bestMove, found, best
}

// terminalValue scores a position where side has no legal move.
func terminalValue(s *engine.BoardState, side chess.Colour) float64 {
	if !s.IsInCheck(side) {
		return DrawScore
	}
	if side == chess.White {
		return -WinScore
	}
	return WinScore
}
